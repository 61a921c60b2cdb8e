package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"freelance-hub/internal/cache"
	"freelance-hub/internal/database"
	"freelance-hub/internal/model"
	"freelance-hub/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MinBudget 是案件預算下限
var MinBudget = decimal.NewFromInt(100)

const maxStatusLength = 50

type CreateProjectInput struct {
	OwnerID         int
	Description     string
	Budget          decimal.Decimal
	Deadline        time.Time
	Status          string
	IsPublic        bool
	MaxParticipants int
}

func validateDescription(d string) error {
	if strings.TrimSpace(d) == "" {
		return newError(ErrValidation, "description is required")
	}
	return nil
}

func validateBudget(b decimal.Decimal) error {
	if b.LessThan(MinBudget) {
		return newError(ErrValidation, "budget must be at least %s", MinBudget)
	}
	return nil
}

func validateStatus(st string) error {
	if strings.TrimSpace(st) == "" {
		return newError(ErrValidation, "status is required")
	}
	if utf8.RuneCountInString(st) > maxStatusLength {
		return newError(ErrValidation, "status must be at most %d characters", maxStatusLength)
	}
	return nil
}

func validateDeadline(d time.Time) error {
	if d.IsZero() {
		return newError(ErrValidation, "deadline is required")
	}
	return nil
}

func validateMaxParticipants(n int) error {
	if n < 1 {
		return newError(ErrValidation, "maxParticipants must be at least 1")
	}
	return nil
}

func (in *CreateProjectInput) validate() error {
	if in.OwnerID <= 0 {
		return newError(ErrAuth, "missing user id")
	}
	if in.MaxParticipants == 0 {
		in.MaxParticipants = 1
	}
	for _, err := range []error{
		validateDescription(in.Description),
		validateBudget(in.Budget),
		validateDeadline(in.Deadline),
		validateStatus(in.Status),
		validateMaxParticipants(in.MaxParticipants),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateProject 在同一個 transaction 內建立案件、owner 參與列並重算空位
func (s *Service) CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var p *model.Project
	err := withTx(ctx, s.db, func(q database.Querier) error {
		p = &model.Project{
			UserID:          in.OwnerID,
			Description:     in.Description,
			Budget:          in.Budget,
			Deadline:        in.Deadline.UTC(),
			Status:          in.Status,
			IsPublic:        in.IsPublic,
			MaxParticipants: in.MaxParticipants,
		}
		if err := createProject(ctx, q, p); err != nil {
			return err
		}
		owner := &model.Participation{ProjectID: p.ID, UserID: in.OwnerID, Role: model.RoleOwner}
		if err := createParticipation(ctx, q, owner); err != nil {
			return err
		}
		st, err := recomputeVacancies(ctx, q, p.ID)
		if err != nil {
			return err
		}
		p.HasVacancies = st.HasVacancies
		p.CurrentParticipants = st.Count
		return nil
	})
	if err != nil {
		s.logFailure("create project", err, zap.Int("owner_id", in.OwnerID))
		return nil, err
	}

	s.metrics.ProjectCreated()
	s.invalidateOpportunities(ctx)
	return p, nil
}

// UpdateProject 只允許 owner 修改，並以目前人數對新的上限重算空位
func (s *Service) UpdateProject(ctx context.Context, projectID int, patch model.ProjectPatch, requesterID int) (*model.Project, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var p *model.Project
	err := withTx(ctx, s.db, func(q database.Querier) error {
		var err error
		p, err = lockProjectByID(ctx, q, projectID)
		if isNoRows(err) {
			return ErrProjectNotFound
		}
		if err != nil {
			return err
		}
		if p.UserID != requesterID {
			return ErrNotProjectOwner
		}
		patch.Apply(p)
		if err := updateProject(ctx, q, p); err != nil {
			return err
		}
		st, err := recomputeVacancies(ctx, q, p.ID)
		if err != nil {
			return err
		}
		p.HasVacancies = st.HasVacancies
		p.CurrentParticipants = st.Count
		return nil
	})
	if err != nil {
		s.logFailure("update project", err, zap.Int("project_id", projectID), zap.Int("user_id", requesterID))
		return nil, err
	}

	s.invalidateOpportunities(ctx)
	return p, nil
}

func validatePatch(patch model.ProjectPatch) error {
	if patch.Description != nil {
		if err := validateDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Budget != nil {
		if err := validateBudget(*patch.Budget); err != nil {
			return err
		}
	}
	if patch.Deadline != nil {
		if err := validateDeadline(*patch.Deadline); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return err
		}
	}
	if patch.MaxParticipants != nil {
		if err := validateMaxParticipants(*patch.MaxParticipants); err != nil {
			return err
		}
	}
	return nil
}

// DeleteProject 找不到與非 owner 都回報同一個 NotFound
func (s *Service) DeleteProject(ctx context.Context, projectID, requesterID int) error {
	err := withTx(ctx, s.db, func(q database.Querier) error {
		ok, err := deleteProjectByOwner(ctx, q, projectID, requesterID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProjectNotFoundOrDenied
		}
		return nil
	})
	if err != nil {
		s.logFailure("delete project", err, zap.Int("project_id", projectID), zap.Int("user_id", requesterID))
		return err
	}

	s.metrics.ProjectDeleted()
	s.invalidateOpportunities(ctx)
	return nil
}

// RecomputeVacancies 重新計算單一案件的 has_vacancies；可重複執行
func (s *Service) RecomputeVacancies(ctx context.Context, projectID int) (store.VacancyState, error) {
	var st store.VacancyState
	err := withTx(ctx, s.db, func(q database.Querier) error {
		// 先鎖列，計數才會在鎖之後的新 snapshot 執行
		if _, err := lockProjectByID(ctx, q, projectID); err != nil {
			if isNoRows(err) {
				return ErrProjectNotFound
			}
			return err
		}
		var err error
		st, err = recomputeVacancies(ctx, q, projectID)
		if isNoRows(err) {
			return ErrProjectNotFound
		}
		return err
	})
	if err != nil {
		return store.VacancyState{}, err
	}
	if st.Changed {
		s.invalidateOpportunities(ctx)
	}
	return st, nil
}

// ListProjectIDs 供背景重算使用
func (s *Service) ListProjectIDs(ctx context.Context) ([]int, error) {
	var ids []int
	err := retryRead(ctx, func() error {
		var err error
		ids, err = listProjectIDs(ctx, s.db)
		return err
	})
	return ids, err
}

// ListPublicWithVacancies 回傳公開且有空位的案件，新的在前
func (s *Service) ListPublicWithVacancies(ctx context.Context) ([]model.Project, error) {
	// 版本在讀資料庫前取得；期間若有寫入，回填只會落在已淘汰的舊版本 key
	var key string
	if s.cache != nil {
		ver, err := cache.Version(ctx, s.cache, opportunitiesVersionKey)
		if err != nil {
			s.log.Warn("read opportunities cache version", zap.Error(err))
			s.metrics.CacheLookup(false)
		} else {
			key = cache.VersionedKey(OpportunitiesCacheKey, ver)
			var cached []model.Project
			hit, err := cache.GetJSON(ctx, s.cache, key, &cached)
			if err != nil {
				s.log.Warn("read opportunities cache", zap.Error(err))
			}
			s.metrics.CacheLookup(hit)
			if hit {
				return cached, nil
			}
		}
	}

	var list []model.Project
	err := retryRead(ctx, func() error {
		var err error
		list, err = listPublicWithVacancies(ctx, s.db)
		return err
	})
	if err != nil {
		s.log.Error("list public projects", zap.Error(err))
		return nil, err
	}

	if key != "" {
		if err := cache.SetJSON(ctx, s.cache, key, list, s.cacheTTL); err != nil {
			s.log.Warn("write opportunities cache", zap.Error(err))
		}
	}
	return list, nil
}

// ListUserProjects 先列自己擁有的，再列參與但非擁有的
func (s *Service) ListUserProjects(ctx context.Context, userID int) ([]model.Project, error) {
	var owned, joined []model.Project
	err := retryRead(ctx, func() error {
		var err error
		if owned, err = listProjectsByOwner(ctx, s.db, userID); err != nil {
			return err
		}
		joined, err = listParticipatedProjects(ctx, s.db, userID)
		return err
	})
	if err != nil {
		s.log.Error("list user projects", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return append(owned, joined...), nil
}

// GetProjectDetails 含參與者；私人案件只有 owner 與參與者看得到
func (s *Service) GetProjectDetails(ctx context.Context, projectID, requesterID int) (*model.Project, error) {
	var (
		p            *model.Project
		participants []model.Participation
	)
	err := retryRead(ctx, func() error {
		var err error
		p, err = getProjectByID(ctx, s.db, projectID)
		if isNoRows(err) {
			return ErrProjectNotFound
		}
		if err != nil {
			return err
		}
		participants, err = listParticipantsByProject(ctx, s.db, projectID)
		return err
	})
	if err != nil {
		s.logFailure("get project details", err, zap.Int("project_id", projectID))
		return nil, err
	}

	if !p.IsPublic && !canSeePrivate(p, participants, requesterID) {
		s.log.Info("private project denied", zap.Int("project_id", projectID), zap.Int("user_id", requesterID))
		return nil, ErrProjectPrivate
	}
	p.Participants = participants
	return p, nil
}

func canSeePrivate(p *model.Project, participants []model.Participation, userID int) bool {
	if p.UserID == userID {
		return true
	}
	for _, pp := range participants {
		if pp.UserID == userID {
			return true
		}
	}
	return false
}

// logFailure 將業務拒絕記在 Info，其餘記在 Error
func (s *Service) logFailure(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	var e *Error
	if errors.As(err, &e) {
		s.log.Info(op+" rejected", fields...)
		return
	}
	s.log.Error(op, fields...)
}
