package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"freelance-hub/internal/database"
	"freelance-hub/internal/model"
	"freelance-hub/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore 以記憶體模擬 users / projects / project_participations。
// txMu 讓 transaction 彼此序列化，效果等同 FOR UPDATE 鎖住案件列
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	users    map[int]model.User
	projects map[int]model.Project
	parts    []model.Participation
	nextID   int
	clock    time.Time

	// fail 讓指定操作回傳錯誤
	fail map[string]error
	txs  int
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int]model.User{},
		projects: map[int]model.Project{},
		clock:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		fail:     map[string]error{},
	}
}

type memSnapshot struct {
	users    map[int]model.User
	projects map[int]model.Project
	parts    []model.Participation
}

func (m *memStore) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := memSnapshot{users: map[int]model.User{}, projects: map[int]model.Project{}}
	for k, v := range m.users {
		s.users[k] = v
	}
	for k, v := range m.projects {
		s.projects[k] = v
	}
	s.parts = append([]model.Participation(nil), m.parts...)
	return s
}

func (m *memStore) restoreSnapshot(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users, m.projects, m.parts = s.users, s.projects, s.parts
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	m.nextID++
	return m.clock
}

func (m *memStore) failure(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail[op]
}

func (m *memStore) addUser(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	m.users[m.nextID] = model.User{ID: m.nextID, Username: name, Email: name + "@example.com", CreatedAt: now}
	return m.nextID
}

func (m *memStore) countLocked(projectID int) int {
	n := 0
	for _, pp := range m.parts {
		if pp.ProjectID == projectID {
			n++
		}
	}
	return n
}

func (m *memStore) project(id int) (model.Project, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if ok {
		p.CurrentParticipants = m.countLocked(id)
	}
	return p, ok
}

func (m *memStore) participants(projectID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countLocked(projectID)
}

// install 將 service 的 store 函式換成 memStore，測試結束自動還原
func (m *memStore) install(t testing.TB) {
	var (
		origWithTx                    = withTx
		origRetryRead                 = retryRead
		origCreateUser                = createUser
		origGetUserByID               = getUserByID
		origGetUserByUsername         = getUserByUsername
		origUserExists                = userExists
		origCreateProject             = createProject
		origGetProjectByID            = getProjectByID
		origLockProjectByID           = lockProjectByID
		origUpdateProject             = updateProject
		origDeleteProjectByOwner      = deleteProjectByOwner
		origRecomputeVacancies        = recomputeVacancies
		origListPublicWithVacancies   = listPublicWithVacancies
		origListProjectsByOwner       = listProjectsByOwner
		origListParticipatedProjects  = listParticipatedProjects
		origListProjectIDs            = listProjectIDs
		origCreateParticipation       = createParticipation
		origCountParticipants         = countParticipants
		origParticipationExists       = participationExists
		origDeleteParticipation       = deleteParticipation
		origListParticipantsByProject = listParticipantsByProject
		origListParticipationsByUser  = listParticipationsByUser
	)
	t.Cleanup(func() {
		withTx = origWithTx
		retryRead = origRetryRead
		createUser = origCreateUser
		getUserByID = origGetUserByID
		getUserByUsername = origGetUserByUsername
		userExists = origUserExists
		createProject = origCreateProject
		getProjectByID = origGetProjectByID
		lockProjectByID = origLockProjectByID
		updateProject = origUpdateProject
		deleteProjectByOwner = origDeleteProjectByOwner
		recomputeVacancies = origRecomputeVacancies
		listPublicWithVacancies = origListPublicWithVacancies
		listProjectsByOwner = origListProjectsByOwner
		listParticipatedProjects = origListParticipatedProjects
		listProjectIDs = origListProjectIDs
		createParticipation = origCreateParticipation
		countParticipants = origCountParticipants
		participationExists = origParticipationExists
		deleteParticipation = origDeleteParticipation
		listParticipantsByProject = origListParticipantsByProject
		listParticipationsByUser = origListParticipationsByUser
	})

	withTx = func(ctx context.Context, _ database.DB, fn func(database.Querier) error) error {
		m.txMu.Lock()
		defer m.txMu.Unlock()
		m.mu.Lock()
		m.txs++
		m.mu.Unlock()
		if err := m.failure("begin"); err != nil {
			return err
		}
		snap := m.snapshot()
		if err := fn(nil); err != nil {
			m.restoreSnapshot(snap)
			return err
		}
		return nil
	}
	retryRead = func(_ context.Context, op func() error) error { return op() }

	createUser = func(_ context.Context, _ database.Querier, u *model.User) (*model.User, error) {
		if err := m.failure("createUser"); err != nil {
			return nil, err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, existing := range m.users {
			if existing.Username == u.Username || existing.Email == u.Email {
				return nil, &pgconn.PgError{Code: "23505"}
			}
		}
		u.CreatedAt = m.tick()
		u.ID = m.nextID
		m.users[u.ID] = *u
		return u, nil
	}
	getUserByID = func(_ context.Context, _ database.Querier, id int) (*model.User, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		u, ok := m.users[id]
		if !ok {
			return nil, pgx.ErrNoRows
		}
		return &u, nil
	}
	getUserByUsername = func(_ context.Context, _ database.Querier, name string) (*model.User, error) {
		if err := m.failure("getUserByUsername"); err != nil {
			return nil, err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, u := range m.users {
			if u.Username == name {
				u := u
				return &u, nil
			}
		}
		return nil, pgx.ErrNoRows
	}
	userExists = func(_ context.Context, _ database.Querier, name, email string) (bool, bool, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		var n, e bool
		for _, u := range m.users {
			n = n || u.Username == name
			e = e || u.Email == email
		}
		return n, e, nil
	}

	createProject = func(_ context.Context, _ database.Querier, p *model.Project) error {
		if err := m.failure("createProject"); err != nil {
			return err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		p.CreatedAt = m.tick()
		p.ID = m.nextID
		p.HasVacancies = false
		m.projects[p.ID] = *p
		return nil
	}
	getProjectByID = func(_ context.Context, _ database.Querier, id int) (*model.Project, error) {
		if err := m.failure("getProjectByID"); err != nil {
			return nil, err
		}
		p, ok := m.project(id)
		if !ok {
			return nil, pgx.ErrNoRows
		}
		return &p, nil
	}
	lockProjectByID = func(_ context.Context, _ database.Querier, id int) (*model.Project, error) {
		if err := m.failure("lockProjectByID"); err != nil {
			return nil, err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		p, ok := m.projects[id]
		if !ok {
			return nil, pgx.ErrNoRows
		}
		return &p, nil
	}
	updateProject = func(_ context.Context, _ database.Querier, p *model.Project) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		cur := m.projects[p.ID]
		cur.Description, cur.Budget, cur.Deadline = p.Description, p.Budget, p.Deadline
		cur.Status, cur.IsPublic, cur.MaxParticipants = p.Status, p.IsPublic, p.MaxParticipants
		m.projects[p.ID] = cur
		return nil
	}
	deleteProjectByOwner = func(_ context.Context, _ database.Querier, id, owner int) (bool, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		p, ok := m.projects[id]
		if !ok || p.UserID != owner {
			return false, nil
		}
		delete(m.projects, id)
		kept := m.parts[:0:0]
		for _, pp := range m.parts {
			if pp.ProjectID != id {
				kept = append(kept, pp)
			}
		}
		m.parts = kept
		return true, nil
	}
	recomputeVacancies = func(_ context.Context, _ database.Querier, id int) (store.VacancyState, error) {
		if err := m.failure("recomputeVacancies"); err != nil {
			return store.VacancyState{}, err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		p, ok := m.projects[id]
		if !ok {
			return store.VacancyState{}, pgx.ErrNoRows
		}
		count := m.countLocked(id)
		before := p.HasVacancies
		p.HasVacancies = count < p.MaxParticipants
		m.projects[id] = p
		return store.VacancyState{HasVacancies: p.HasVacancies, Count: count, Changed: before != p.HasVacancies}, nil
	}
	listWhere := func(keep func(model.Project) bool) []model.Project {
		m.mu.Lock()
		defer m.mu.Unlock()
		list := []model.Project{}
		for _, p := range m.projects {
			if keep(p) {
				p.CurrentParticipants = m.countLocked(p.ID)
				list = append(list, p)
			}
		}
		sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
		return list
	}
	listPublicWithVacancies = func(context.Context, database.Querier) ([]model.Project, error) {
		if err := m.failure("listPublicWithVacancies"); err != nil {
			return nil, err
		}
		return listWhere(func(p model.Project) bool { return p.IsPublic && p.HasVacancies }), nil
	}
	listProjectsByOwner = func(_ context.Context, _ database.Querier, uid int) ([]model.Project, error) {
		return listWhere(func(p model.Project) bool { return p.UserID == uid }), nil
	}
	listParticipatedProjects = func(_ context.Context, _ database.Querier, uid int) ([]model.Project, error) {
		m.mu.Lock()
		joined := map[int]bool{}
		for _, pp := range m.parts {
			if pp.UserID == uid {
				joined[pp.ProjectID] = true
			}
		}
		m.mu.Unlock()
		return listWhere(func(p model.Project) bool { return joined[p.ID] && p.UserID != uid }), nil
	}
	listProjectIDs = func(context.Context, database.Querier) ([]int, error) {
		if err := m.failure("listProjectIDs"); err != nil {
			return nil, err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		ids := []int{}
		for id := range m.projects {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		return ids, nil
	}

	createParticipation = func(_ context.Context, _ database.Querier, pp *model.Participation) error {
		if err := m.failure("createParticipation"); err != nil {
			return err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.users[pp.UserID]; !ok {
			return &pgconn.PgError{Code: "23503"}
		}
		for _, existing := range m.parts {
			if existing.ProjectID == pp.ProjectID && existing.UserID == pp.UserID {
				return &pgconn.PgError{Code: "23505"}
			}
		}
		pp.JoinedAt = m.tick()
		pp.ID = m.nextID
		m.parts = append(m.parts, *pp)
		return nil
	}
	countParticipants = func(_ context.Context, _ database.Querier, id int) (int, error) {
		return m.participants(id), nil
	}
	participationExists = func(_ context.Context, _ database.Querier, pid, uid int) (bool, error) {
		if err := m.failure("participationExists"); err != nil {
			return false, err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, pp := range m.parts {
			if pp.ProjectID == pid && pp.UserID == uid {
				return true, nil
			}
		}
		return false, nil
	}
	deleteParticipation = func(_ context.Context, _ database.Querier, pid, uid int) (bool, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, pp := range m.parts {
			if pp.ProjectID == pid && pp.UserID == uid && pp.Role != model.RoleOwner {
				m.parts = append(m.parts[:i:i], m.parts[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	}
	listParticipantsByProject = func(_ context.Context, _ database.Querier, pid int) ([]model.Participation, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		list := []model.Participation{}
		for _, pp := range m.parts {
			if pp.ProjectID == pid {
				pp.Username = m.users[pp.UserID].Username
				pp.ProjectDescription = m.projects[pid].Description
				list = append(list, pp)
			}
		}
		sort.SliceStable(list, func(i, j int) bool {
			if (list[i].Role == model.RoleOwner) != (list[j].Role == model.RoleOwner) {
				return list[i].Role == model.RoleOwner
			}
			return list[i].JoinedAt.Before(list[j].JoinedAt)
		})
		return list, nil
	}
	listParticipationsByUser = func(_ context.Context, _ database.Querier, uid int) ([]model.Participation, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		list := []model.Participation{}
		for _, pp := range m.parts {
			if pp.UserID == uid {
				pp.Username = m.users[uid].Username
				pp.ProjectDescription = m.projects[pp.ProjectID].Description
				list = append(list, pp)
			}
		}
		sort.Slice(list, func(i, j int) bool { return list[i].JoinedAt.After(list[j].JoinedAt) })
		return list, nil
	}
}
