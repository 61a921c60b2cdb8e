package service

import (
	"context"
	"errors"

	"freelance-hub/internal/database"
	"freelance-hub/internal/model"

	"go.uber.org/zap"
)

// Join 依序檢查：案件存在、公開、仍有空位、尚未加入。
// 案件列在整個 transaction 期間被鎖住，計數、寫入與重算不會和其他 Join 交錯
func (s *Service) Join(ctx context.Context, projectID, userID int) (*model.Participation, error) {
	if userID <= 0 {
		return nil, newError(ErrAuth, "missing user id")
	}

	var pp *model.Participation
	err := withTx(ctx, s.db, func(q database.Querier) error {
		p, err := lockProjectByID(ctx, q, projectID)
		if isNoRows(err) {
			return ErrProjectNotFound
		}
		if err != nil {
			return err
		}
		if !p.IsPublic {
			return ErrProjectPrivate
		}

		count, err := countParticipants(ctx, q, projectID)
		if err != nil {
			return err
		}
		if count >= p.MaxParticipants {
			return ErrNoVacancies
		}

		exists, err := participationExists(ctx, q, projectID, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyParticipant
		}

		pp = &model.Participation{ProjectID: projectID, UserID: userID, Role: model.RoleParticipant}
		if err := createParticipation(ctx, q, pp); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadyParticipant
			}
			// token 仍有效但使用者列已刪除
			if database.IsForeignKeyViolation(err) {
				return ErrUserNotFound
			}
			return err
		}
		if _, err := recomputeVacancies(ctx, q, projectID); err != nil {
			return err
		}

		u, err := getUserByID(ctx, q, userID)
		if isNoRows(err) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		pp.Username = u.Username
		pp.ProjectDescription = p.Description
		return nil
	})
	s.metrics.JoinOutcome(joinOutcome(err))
	if err != nil {
		s.logFailure("join project", err, zap.Int("project_id", projectID), zap.Int("user_id", userID))
		return nil, err
	}

	s.invalidateOpportunities(ctx)
	return pp, nil
}

func joinOutcome(err error) string {
	switch {
	case err == nil:
		return "joined"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUserNotFound):
		return "unknown_user"
	case errors.Is(err, ErrProjectPrivate):
		return "private"
	case errors.Is(err, ErrNoVacancies):
		return "full"
	case errors.Is(err, ErrAlreadyParticipant):
		return "duplicate"
	default:
		return "error"
	}
}

// Leave 讓使用者離開案件；沒有參與紀錄時回傳 false
func (s *Service) Leave(ctx context.Context, projectID, userID int) (bool, error) {
	return s.RemoveParticipant(ctx, projectID, userID, userID)
}

// RemoveParticipant 由 owner 或參與者本人移除參與紀錄，owner 列不可移除。
// 案件不存在或沒有參與紀錄時回傳 false
func (s *Service) RemoveParticipant(ctx context.Context, projectID, targetUserID, requesterID int) (bool, error) {
	var removed bool
	err := withTx(ctx, s.db, func(q database.Querier) error {
		p, err := lockProjectByID(ctx, q, projectID)
		if isNoRows(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if requesterID != targetUserID && requesterID != p.UserID {
			return ErrRemoveForbidden
		}
		if p.UserID == targetUserID {
			return ErrOwnerCannotLeave
		}

		removed, err = deleteParticipation(ctx, q, projectID, targetUserID)
		if err != nil || !removed {
			return err
		}
		_, err = recomputeVacancies(ctx, q, projectID)
		return err
	})
	if err != nil {
		s.logFailure("remove participant", err,
			zap.Int("project_id", projectID),
			zap.Int("user_id", targetUserID),
			zap.Int("requester_id", requesterID))
		return false, err
	}

	if removed {
		s.metrics.ParticipantLeft()
		s.invalidateOpportunities(ctx)
	}
	return removed, nil
}

// ListProjectParticipants owner 在前，其餘依加入時間
func (s *Service) ListProjectParticipants(ctx context.Context, projectID int) ([]model.Participation, error) {
	var list []model.Participation
	err := retryRead(ctx, func() error {
		var err error
		list, err = listParticipantsByProject(ctx, s.db, projectID)
		return err
	})
	if err != nil {
		s.log.Error("list project participants", zap.Int("project_id", projectID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// ListPublicProjectParticipants 給未登入者看的參與者清單；私人案件一律拒絕
func (s *Service) ListPublicProjectParticipants(ctx context.Context, projectID int) ([]model.Participation, error) {
	var list []model.Participation
	err := retryRead(ctx, func() error {
		p, err := getProjectByID(ctx, s.db, projectID)
		if isNoRows(err) {
			return ErrProjectNotFound
		}
		if err != nil {
			return err
		}
		if !p.IsPublic {
			return ErrProjectPrivate
		}
		list, err = listParticipantsByProject(ctx, s.db, projectID)
		return err
	})
	if err != nil {
		s.logFailure("list public project participants", err, zap.Int("project_id", projectID))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListUserParticipations(ctx context.Context, userID int) ([]model.Participation, error) {
	var list []model.Participation
	err := retryRead(ctx, func() error {
		var err error
		list, err = listParticipationsByUser(ctx, s.db, userID)
		return err
	})
	if err != nil {
		s.log.Error("list user participations", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// IsParticipant 回報 userID 是否已參與 projectID
func (s *Service) IsParticipant(ctx context.Context, projectID, userID int) (bool, error) {
	var ok bool
	err := retryRead(ctx, func() error {
		var err error
		ok, err = participationExists(ctx, s.db, projectID, userID)
		return err
	})
	return ok, err
}
