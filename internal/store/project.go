package store

import (
	"context"
	"fmt"

	"freelance-hub/internal/database"
	"freelance-hub/internal/model"

	"github.com/jackc/pgx/v5"
)

// projectColumns 的順序需與 scanProject 一致；最後一欄是即時參與人數
const projectColumns = `p.id, p.user_id, p.description, p.budget, p.deadline, p.status,
	p.created_at, p.is_public, p.max_participants, p.has_vacancies,
	(SELECT COUNT(*) FROM project_participations pp WHERE pp.project_id = p.id)`

func scanProject(row pgx.Row) (*model.Project, error) {
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Description,
		&p.Budget,
		&p.Deadline,
		&p.Status,
		&p.CreatedAt,
		&p.IsPublic,
		&p.MaxParticipants,
		&p.HasVacancies,
		&p.CurrentParticipants,
	); err != nil {
		return nil, err
	}
	p.Deadline = p.Deadline.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func collectProjects(rows pgx.Rows) ([]model.Project, error) {
	defer rows.Close()
	list := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateProject 新增案件，has_vacancies 先寫 false，由 RecomputeVacancies 決定實際值
func CreateProject(ctx context.Context, q database.Querier, p *model.Project) error {
	row := q.QueryRow(ctx,
		`INSERT INTO projects (user_id, description, budget, deadline, status, is_public, max_participants, has_vacancies)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		 RETURNING id, created_at`,
		p.UserID,
		p.Description,
		p.Budget,
		p.Deadline.UTC(),
		p.Status,
		p.IsPublic,
		p.MaxParticipants,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("CreateProject: %w", err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return nil
}

func GetProjectByID(ctx context.Context, q database.Querier, projectID int) (*model.Project, error) {
	p, err := scanProject(q.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects p WHERE p.id = $1`,
		projectID,
	))
	if err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", err)
	}
	return p, nil
}

// LockProjectByID 以 FOR UPDATE 鎖住案件列直到 transaction 結束，
// 參與人數需在取得鎖之後另外查詢
func LockProjectByID(ctx context.Context, q database.Querier, projectID int) (*model.Project, error) {
	row := q.QueryRow(ctx,
		`SELECT id, user_id, description, budget, deadline, status,
		        created_at, is_public, max_participants, has_vacancies
		 FROM projects WHERE id = $1
		 FOR UPDATE`,
		projectID,
	)
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Description,
		&p.Budget,
		&p.Deadline,
		&p.Status,
		&p.CreatedAt,
		&p.IsPublic,
		&p.MaxParticipants,
		&p.HasVacancies,
	); err != nil {
		return nil, fmt.Errorf("LockProjectByID: %w", err)
	}
	p.Deadline = p.Deadline.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func UpdateProject(ctx context.Context, q database.Querier, p *model.Project) error {
	_, err := q.Exec(ctx,
		`UPDATE projects
		 SET description = $1, budget = $2, deadline = $3, status = $4,
		     is_public = $5, max_participants = $6
		 WHERE id = $7`,
		p.Description,
		p.Budget,
		p.Deadline.UTC(),
		p.Status,
		p.IsPublic,
		p.MaxParticipants,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	return nil
}

// DeleteProjectByOwner 只刪除屬於 ownerID 的案件；參與紀錄由 FK cascade 一併刪除
func DeleteProjectByOwner(ctx context.Context, q database.Querier, projectID, ownerID int) (bool, error) {
	tag, err := q.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`,
		projectID,
		ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteProjectByOwner: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// VacancyState 是 RecomputeVacancies 重算後的結果
type VacancyState struct {
	HasVacancies bool
	Count        int
	// Changed 表示旗標與重算前不同
	Changed bool
}

// RecomputeVacancies 以單一敘述重算 has_vacancies = count < max_participants
func RecomputeVacancies(ctx context.Context, q database.Querier, projectID int) (VacancyState, error) {
	var (
		st     VacancyState
		before bool
	)
	err := q.QueryRow(ctx,
		`UPDATE projects p
		 SET has_vacancies = c.cnt < p.max_participants
		 FROM (SELECT COUNT(*) AS cnt FROM project_participations WHERE project_id = $1) c,
		      projects old
		 WHERE p.id = $1 AND old.id = p.id
		 RETURNING p.has_vacancies, c.cnt, old.has_vacancies`,
		projectID,
	).Scan(&st.HasVacancies, &st.Count, &before)
	if err != nil {
		return VacancyState{}, fmt.Errorf("RecomputeVacancies: %w", err)
	}
	st.Changed = st.HasVacancies != before
	return st, nil
}

func ListPublicWithVacancies(ctx context.Context, q database.Querier) ([]model.Project, error) {
	rows, err := q.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p
		 WHERE p.is_public AND p.has_vacancies
		 ORDER BY p.created_at DESC, p.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPublicWithVacancies: %w", err)
	}
	list, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("ListPublicWithVacancies: %w", err)
	}
	return list, nil
}

func ListProjectsByOwner(ctx context.Context, q database.Querier, userID int) ([]model.Project, error) {
	rows, err := q.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p
		 WHERE p.user_id = $1
		 ORDER BY p.created_at DESC, p.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjectsByOwner: %w", err)
	}
	list, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProjectsByOwner: %w", err)
	}
	return list, nil
}

// ListParticipatedProjects 列出 userID 參與但非擁有的案件
func ListParticipatedProjects(ctx context.Context, q database.Querier, userID int) ([]model.Project, error) {
	rows, err := q.Query(ctx,
		`SELECT `+projectColumns+`
		 FROM projects p
		 JOIN project_participations me ON me.project_id = p.id AND me.user_id = $1
		 WHERE p.user_id <> $1
		 ORDER BY p.created_at DESC, p.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListParticipatedProjects: %w", err)
	}
	list, err := collectProjects(rows)
	if err != nil {
		return nil, fmt.Errorf("ListParticipatedProjects: %w", err)
	}
	return list, nil
}

func ListProjectIDs(ctx context.Context, q database.Querier) ([]int, error) {
	rows, err := q.Query(ctx, `SELECT id FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListProjectIDs: %w", err)
	}
	defer rows.Close()
	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListProjectIDs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjectIDs: %w", err)
	}
	return ids, nil
}
