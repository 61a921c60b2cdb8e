package store

import (
	"context"
	"fmt"

	"freelance-hub/internal/database"
	"freelance-hub/internal/model"
)

func CreateParticipation(ctx context.Context, q database.Querier, pp *model.Participation) error {
	row := q.QueryRow(ctx,
		`INSERT INTO project_participations (project_id, user_id, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, joined_at`,
		pp.ProjectID,
		pp.UserID,
		pp.Role,
	)
	if err := row.Scan(&pp.ID, &pp.JoinedAt); err != nil {
		return fmt.Errorf("CreateParticipation: %w", err)
	}
	pp.JoinedAt = pp.JoinedAt.UTC()
	return nil
}

func CountParticipants(ctx context.Context, q database.Querier, projectID int) (int, error) {
	var n int
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM project_participations WHERE project_id = $1`,
		projectID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountParticipants: %w", err)
	}
	return n, nil
}

func ParticipationExists(ctx context.Context, q database.Querier, projectID, userID int) (bool, error) {
	var ok bool
	if err := q.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM project_participations WHERE project_id = $1 AND user_id = $2
		 )`,
		projectID,
		userID,
	).Scan(&ok); err != nil {
		return false, fmt.Errorf("ParticipationExists: %w", err)
	}
	return ok, nil
}

// DeleteParticipation 刪除一般參與者；owner 列永遠不會被刪
func DeleteParticipation(ctx context.Context, q database.Querier, projectID, userID int) (bool, error) {
	tag, err := q.Exec(ctx,
		`DELETE FROM project_participations
		 WHERE project_id = $1 AND user_id = $2 AND role <> 'owner'`,
		projectID,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteParticipation: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListParticipantsByProject 依角色（owner 優先）再依加入時間排序
func ListParticipantsByProject(ctx context.Context, q database.Querier, projectID int) ([]model.Participation, error) {
	rows, err := q.Query(ctx,
		`SELECT pp.id, pp.project_id, pp.user_id, pp.role, pp.joined_at, u.username, p.description
		 FROM project_participations pp
		 JOIN users u ON u.id = pp.user_id
		 JOIN projects p ON p.id = pp.project_id
		 WHERE pp.project_id = $1
		 ORDER BY CASE pp.role WHEN 'owner' THEN 0 ELSE 1 END, pp.joined_at, pp.id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListParticipantsByProject: %w", err)
	}
	defer rows.Close()

	list := []model.Participation{}
	for rows.Next() {
		var pp model.Participation
		if err := rows.Scan(
			&pp.ID,
			&pp.ProjectID,
			&pp.UserID,
			&pp.Role,
			&pp.JoinedAt,
			&pp.Username,
			&pp.ProjectDescription,
		); err != nil {
			return nil, fmt.Errorf("ListParticipantsByProject: %w", err)
		}
		pp.JoinedAt = pp.JoinedAt.UTC()
		list = append(list, pp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListParticipantsByProject: %w", err)
	}
	return list, nil
}

// ListParticipationsByUser 由新到舊列出 userID 的所有參與紀錄
func ListParticipationsByUser(ctx context.Context, q database.Querier, userID int) ([]model.Participation, error) {
	rows, err := q.Query(ctx,
		`SELECT pp.id, pp.project_id, pp.user_id, pp.role, pp.joined_at, u.username, p.description
		 FROM project_participations pp
		 JOIN users u ON u.id = pp.user_id
		 JOIN projects p ON p.id = pp.project_id
		 WHERE pp.user_id = $1
		 ORDER BY pp.joined_at DESC, pp.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListParticipationsByUser: %w", err)
	}
	defer rows.Close()

	list := []model.Participation{}
	for rows.Next() {
		var pp model.Participation
		if err := rows.Scan(
			&pp.ID,
			&pp.ProjectID,
			&pp.UserID,
			&pp.Role,
			&pp.JoinedAt,
			&pp.Username,
			&pp.ProjectDescription,
		); err != nil {
			return nil, fmt.Errorf("ListParticipationsByUser: %w", err)
		}
		pp.JoinedAt = pp.JoinedAt.UTC()
		list = append(list, pp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListParticipationsByUser: %w", err)
	}
	return list, nil
}
