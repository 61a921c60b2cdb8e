package service

import (
	"context"
	"testing"
	"time"

	"freelance-hub/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *memStore) {
	t.Helper()
	m := newMemStore()
	m.install(t)
	opts = append([]Option{WithAuthenticator(NewAuthenticator("test-secret", time.Hour))}, opts...)
	return New(nil, opts...), m
}

func projectInput(owner, max int, public bool) CreateProjectInput {
	return CreateProjectInput{
		OwnerID:         owner,
		Description:     "landing page",
		Budget:          decimal.NewFromInt(500),
		Deadline:        time.Date(2030, 6, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
		Status:          "open",
		IsPublic:        public,
		MaxParticipants: max,
	}
}

func mustCreate(t *testing.T, s *Service, in CreateProjectInput) *model.Project {
	t.Helper()
	p, err := s.CreateProject(context.Background(), in)
	require.NoError(t, err)
	return p
}

// requireVacancyInvariant 檢查 has_vacancies == count < max
func requireVacancyInvariant(t *testing.T, m *memStore, projectID int) {
	t.Helper()
	p, ok := m.project(projectID)
	require.True(t, ok)
	require.Equal(t, p.CurrentParticipants < p.MaxParticipants, p.HasVacancies,
		"project %d: count=%d max=%d", projectID, p.CurrentParticipants, p.MaxParticipants)
}
