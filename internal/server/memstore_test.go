package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// memStore is an in-memory Store used by handler tests.
type memStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*db.User
	profiles     map[uuid.UUID]*types.Profile
	applications map[uuid.UUID]*types.Application
	interviews   map[uuid.UUID]*types.Interview
	contacts     map[uuid.UUID]*types.Contact
	tasks        map[uuid.UUID]*types.Task
	experiences  map[uuid.UUID]*types.Experience
	skills       map[uuid.UUID]*types.Skill
	links        map[uuid.UUID]*types.SocialLink
	documents    map[uuid.UUID]*types.Document
	contents     map[uuid.UUID][]byte

	pingErr         error
	listAppsErr     error
	listAppsCalls   int
	createDocCalled bool
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[uuid.UUID]*db.User),
		profiles:     make(map[uuid.UUID]*types.Profile),
		applications: make(map[uuid.UUID]*types.Application),
		interviews:   make(map[uuid.UUID]*types.Interview),
		contacts:     make(map[uuid.UUID]*types.Contact),
		tasks:        make(map[uuid.UUID]*types.Task),
		experiences:  make(map[uuid.UUID]*types.Experience),
		skills:       make(map[uuid.UUID]*types.Skill),
		links:        make(map[uuid.UUID]*types.SocialLink),
		documents:    make(map[uuid.UUID]*types.Document),
		contents:     make(map[uuid.UUID][]byte),
	}
}

func notFound(kind string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", kind, id, db.ErrNotFound)
}

// owned returns the record stored under id when it belongs to userID.
func owned[T any](m map[uuid.UUID]*T, id, userID uuid.UUID, owner func(*T) uuid.UUID) (*T, bool) {
	v, ok := m[id]
	if !ok || owner(v) != userID {
		return nil, false
	}
	return v, true
}

func listOwned[T any](m map[uuid.UUID]*T, userID uuid.UUID, owner func(*T) uuid.UUID) []T {
	out := []T{}
	for _, v := range m {
		if owner(v) == userID {
			out = append(out, *v)
		}
	}
	return out
}

func (m *memStore) Ping(context.Context) error {
	return m.pingErr
}

func (m *memStore) CreateUser(_ context.Context, firstName, lastName, email string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{ID: id, FirstName: firstName, LastName: lastName, Email: email, CreatedAt: now, UpdatedAt: now}
	m.profiles[id] = &types.Profile{UserID: id, FirstName: firstName, LastName: lastName, Email: email, UpdatedAt: now}
	return id, nil
}

func (m *memStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (m *memStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return notFound("user", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (m *memStore) DeleteUser(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
	delete(m.profiles, userID)
	for id, a := range m.applications {
		if a.UserID == userID {
			delete(m.applications, id)
		}
	}
	return nil
}

func (m *memStore) GetProfile(_ context.Context, userID uuid.UUID) (*types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) UpdateProfile(_ context.Context, p *types.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[p.UserID]; !ok {
		return notFound("profile", p.UserID)
	}
	cp := *p
	m.profiles[p.UserID] = &cp
	return nil
}

func appOwner(a *types.Application) uuid.UUID { return a.UserID }
func ivOwner(i *types.Interview) uuid.UUID    { return i.UserID }
func ctOwner(c *types.Contact) uuid.UUID      { return c.UserID }
func taskOwner(t *types.Task) uuid.UUID       { return t.UserID }
func expOwner(e *types.Experience) uuid.UUID  { return e.UserID }
func skillOwner(s *types.Skill) uuid.UUID     { return s.UserID }
func linkOwner(l *types.SocialLink) uuid.UUID { return l.UserID }
func docOwner(d *types.Document) uuid.UUID    { return d.UserID }

func (m *memStore) CreateApplication(_ context.Context, a *types.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.applications[a.ID] = &cp
	return nil
}

func (m *memStore) GetApplication(_ context.Context, userID, id uuid.UUID) (*types.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := owned(m.applications, id, userID, appOwner)
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) ListApplications(_ context.Context, userID uuid.UUID) ([]types.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listAppsCalls++
	if m.listAppsErr != nil {
		err := m.listAppsErr
		m.listAppsErr = nil
		return nil, err
	}
	return listOwned(m.applications, userID, appOwner), nil
}

func (m *memStore) UpdateApplication(_ context.Context, a *types.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := owned(m.applications, a.ID, a.UserID, appOwner)
	if !ok {
		return notFound("application", a.ID)
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now()
	cp := *a
	m.applications[a.ID] = &cp
	return nil
}

func (m *memStore) UpdateApplicationStatus(_ context.Context, userID, id uuid.UUID, status types.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := owned(m.applications, id, userID, appOwner)
	if !ok {
		return notFound("application", id)
	}
	a.Status = status
	return nil
}

func (m *memStore) DeleteApplication(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.applications, id, userID, appOwner); !ok {
		return notFound("application", id)
	}
	delete(m.applications, id)
	for ivID, iv := range m.interviews {
		if iv.ApplicationID == id {
			delete(m.interviews, ivID)
		}
	}
	return nil
}

func (m *memStore) CreateInterview(_ context.Context, iv *types.Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.applications, iv.ApplicationID, iv.UserID, appOwner); !ok {
		return notFound("application", iv.ApplicationID)
	}
	iv.ID = uuid.New()
	iv.CreatedAt = time.Now()
	cp := *iv
	m.interviews[iv.ID] = &cp
	return nil
}

func (m *memStore) GetInterview(_ context.Context, userID, id uuid.UUID) (*types.Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	iv, ok := owned(m.interviews, id, userID, ivOwner)
	if !ok {
		return nil, nil
	}
	cp := *iv
	return &cp, nil
}

func (m *memStore) ListInterviews(_ context.Context, userID uuid.UUID) ([]types.Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listOwned(m.interviews, userID, ivOwner), nil
}

func (m *memStore) UpdateInterview(_ context.Context, iv *types.Interview) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.interviews, iv.ID, iv.UserID, ivOwner); !ok {
		return notFound("interview", iv.ID)
	}
	if _, ok := owned(m.applications, iv.ApplicationID, iv.UserID, appOwner); !ok {
		return notFound("application", iv.ApplicationID)
	}
	cp := *iv
	m.interviews[iv.ID] = &cp
	return nil
}

func (m *memStore) DeleteInterview(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.interviews, id, userID, ivOwner); !ok {
		return notFound("interview", id)
	}
	delete(m.interviews, id)
	return nil
}

func (m *memStore) CreateContact(_ context.Context, c *types.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	cp := *c
	m.contacts[c.ID] = &cp
	return nil
}

func (m *memStore) GetContact(_ context.Context, userID, id uuid.UUID) (*types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := owned(m.contacts, id, userID, ctOwner)
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memStore) ListContacts(_ context.Context, userID uuid.UUID) ([]types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listOwned(m.contacts, userID, ctOwner), nil
}

func (m *memStore) UpdateContact(_ context.Context, c *types.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.contacts, c.ID, c.UserID, ctOwner); !ok {
		return notFound("contact", c.ID)
	}
	cp := *c
	m.contacts[c.ID] = &cp
	return nil
}

func (m *memStore) DeleteContact(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.contacts, id, userID, ctOwner); !ok {
		return notFound("contact", id)
	}
	delete(m.contacts, id)
	return nil
}

// taskApplicationOwned mirrors the store's guard on linked applications. Callers hold m.mu.
func (m *memStore) taskApplicationOwned(t *types.Task) bool {
	if t.ApplicationID == nil {
		return true
	}
	_, ok := owned(m.applications, *t.ApplicationID, t.UserID, appOwner)
	return ok
}

func (m *memStore) CreateTask(_ context.Context, t *types.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.taskApplicationOwned(t) {
		return notFound("application", *t.ApplicationID)
	}
	if !t.Consistent() {
		return errors.New("inconsistent task completion")
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *memStore) GetTask(_ context.Context, userID, id uuid.UUID) (*types.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := owned(m.tasks, id, userID, taskOwner)
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memStore) ListTasks(_ context.Context, userID uuid.UUID) ([]types.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listOwned(m.tasks, userID, taskOwner), nil
}

func (m *memStore) UpdateTask(_ context.Context, t *types.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.tasks, t.ID, t.UserID, taskOwner); !ok {
		return notFound("task", t.ID)
	}
	if !m.taskApplicationOwned(t) {
		return notFound("application", *t.ApplicationID)
	}
	if !t.Consistent() {
		return errors.New("inconsistent task completion")
	}
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *memStore) DeleteTask(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.tasks, id, userID, taskOwner); !ok {
		return notFound("task", id)
	}
	delete(m.tasks, id)
	return nil
}

func (m *memStore) CreateExperience(_ context.Context, e *types.Experience) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	cp := *e
	m.experiences[e.ID] = &cp
	return nil
}

func (m *memStore) ListExperiences(_ context.Context, userID uuid.UUID) ([]types.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listOwned(m.experiences, userID, expOwner), nil
}

func (m *memStore) UpdateExperience(_ context.Context, e *types.Experience) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.experiences, e.ID, e.UserID, expOwner); !ok {
		return notFound("experience", e.ID)
	}
	cp := *e
	m.experiences[e.ID] = &cp
	return nil
}

func (m *memStore) DeleteExperience(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.experiences, id, userID, expOwner); !ok {
		return notFound("experience", id)
	}
	delete(m.experiences, id)
	return nil
}

func (m *memStore) CreateSkill(_ context.Context, s *types.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	cp := *s
	m.skills[s.ID] = &cp
	return nil
}

func (m *memStore) ListSkills(_ context.Context, userID uuid.UUID) ([]types.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listOwned(m.skills, userID, skillOwner), nil
}

func (m *memStore) UpdateSkill(_ context.Context, s *types.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.skills, s.ID, s.UserID, skillOwner); !ok {
		return notFound("skill", s.ID)
	}
	cp := *s
	m.skills[s.ID] = &cp
	return nil
}

func (m *memStore) DeleteSkill(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.skills, id, userID, skillOwner); !ok {
		return notFound("skill", id)
	}
	delete(m.skills, id)
	return nil
}

func (m *memStore) CreateSocialLink(_ context.Context, l *types.SocialLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	cp := *l
	m.links[l.ID] = &cp
	return nil
}

func (m *memStore) ListSocialLinks(_ context.Context, userID uuid.UUID) ([]types.SocialLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listOwned(m.links, userID, linkOwner), nil
}

func (m *memStore) DeleteSocialLink(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.links, id, userID, linkOwner); !ok {
		return notFound("social link", id)
	}
	delete(m.links, id)
	return nil
}

func (m *memStore) CreateDocument(_ context.Context, d *types.Document, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createDocCalled = true
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	cp := *d
	m.documents[d.ID] = &cp
	m.contents[d.ID] = append([]byte(nil), content...)
	return nil
}

func (m *memStore) ListDocuments(_ context.Context, userID uuid.UUID) ([]types.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listOwned(m.documents, userID, docOwner), nil
}

func (m *memStore) GetDocumentContent(_ context.Context, userID, id uuid.UUID) (*types.Document, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := owned(m.documents, id, userID, docOwner)
	if !ok {
		return nil, nil, nil
	}
	cp := *d
	return &cp, m.contents[id], nil
}

func (m *memStore) DeleteDocument(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := owned(m.documents, id, userID, docOwner); !ok {
		return notFound("document", id)
	}
	delete(m.documents, id)
	delete(m.contents, id)
	return nil
}
