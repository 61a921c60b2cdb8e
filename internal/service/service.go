package service

import (
	"context"
	"errors"
	"time"

	"freelance-hub/internal/cache"
	"freelance-hub/internal/database"
	"freelance-hub/internal/metrics"
	"freelance-hub/internal/store"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// store 層函式，測試時替換成記憶體實作
var (
	withTx    = database.WithTx
	retryRead = func(ctx context.Context, op func() error) error {
		return database.Retry(ctx, database.DefaultRetry, op)
	}

	createUser        = store.CreateUser
	getUserByID       = store.GetUserByID
	getUserByUsername = store.GetUserByUsername
	userExists        = store.UserExists

	createProject            = store.CreateProject
	getProjectByID           = store.GetProjectByID
	lockProjectByID          = store.LockProjectByID
	updateProject            = store.UpdateProject
	deleteProjectByOwner     = store.DeleteProjectByOwner
	recomputeVacancies       = store.RecomputeVacancies
	listPublicWithVacancies  = store.ListPublicWithVacancies
	listProjectsByOwner      = store.ListProjectsByOwner
	listParticipatedProjects = store.ListParticipatedProjects
	listProjectIDs           = store.ListProjectIDs

	createParticipation       = store.CreateParticipation
	countParticipants         = store.CountParticipants
	participationExists       = store.ParticipationExists
	deleteParticipation       = store.DeleteParticipation
	listParticipantsByProject = store.ListParticipantsByProject
	listParticipationsByUser  = store.ListParticipationsByUser
)

// OpportunitiesCacheKey 存放公開且有空位的案件列表
const OpportunitiesCacheKey = "projects:opportunities"

// opportunitiesVersionKey 寫入時遞增；列表實際存在 OpportunitiesCacheKey:v<版本>
const opportunitiesVersionKey = OpportunitiesCacheKey + ":version"

// Service 是專案、參與與帳號的業務邏輯
type Service struct {
	db       database.DB
	cache    cache.Cache
	cacheTTL time.Duration
	auth     *Authenticator
	metrics  *metrics.Metrics
	log      *zap.Logger
}

type Option func(*Service)

// WithCache 啟用 opportunities 快取；c 為 nil 時不快取
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithAuthenticator(a *Authenticator) Option {
	return func(s *Service) { s.auth = a }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func New(db database.DB, opts ...Option) *Service {
	s := &Service{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// invalidateOpportunities 在任何寫入 commit 後遞增列表版本；快取失敗只記錄
func (s *Service) invalidateOpportunities(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := cache.Bump(ctx, s.cache, opportunitiesVersionKey); err != nil {
		s.log.Warn("invalidate opportunities cache", zap.Error(err))
	}
}
