package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/dashboard"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/db"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

// DBClient is the account storage used by UserService.
type DBClient interface {
	CreateUser(ctx context.Context, firstName, lastName, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// Store is every storage operation the API needs. *db.DB implements it.
// Get methods return nil, nil when the record does not exist or belongs to another user.
type Store interface {
	DBClient
	dashboard.Source

	Ping(ctx context.Context) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	UpdateProfile(ctx context.Context, p *types.Profile) error

	CreateApplication(ctx context.Context, a *types.Application) error
	GetApplication(ctx context.Context, userID, id uuid.UUID) (*types.Application, error)
	UpdateApplication(ctx context.Context, a *types.Application) error
	UpdateApplicationStatus(ctx context.Context, userID, id uuid.UUID, status types.ApplicationStatus) error
	DeleteApplication(ctx context.Context, userID, id uuid.UUID) error

	CreateInterview(ctx context.Context, iv *types.Interview) error
	GetInterview(ctx context.Context, userID, id uuid.UUID) (*types.Interview, error)
	UpdateInterview(ctx context.Context, iv *types.Interview) error
	DeleteInterview(ctx context.Context, userID, id uuid.UUID) error

	CreateContact(ctx context.Context, c *types.Contact) error
	GetContact(ctx context.Context, userID, id uuid.UUID) (*types.Contact, error)
	UpdateContact(ctx context.Context, c *types.Contact) error
	DeleteContact(ctx context.Context, userID, id uuid.UUID) error

	CreateTask(ctx context.Context, t *types.Task) error
	GetTask(ctx context.Context, userID, id uuid.UUID) (*types.Task, error)
	UpdateTask(ctx context.Context, t *types.Task) error
	DeleteTask(ctx context.Context, userID, id uuid.UUID) error

	CreateExperience(ctx context.Context, e *types.Experience) error
	ListExperiences(ctx context.Context, userID uuid.UUID) ([]types.Experience, error)
	UpdateExperience(ctx context.Context, e *types.Experience) error
	DeleteExperience(ctx context.Context, userID, id uuid.UUID) error

	CreateSkill(ctx context.Context, s *types.Skill) error
	ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error)
	UpdateSkill(ctx context.Context, s *types.Skill) error
	DeleteSkill(ctx context.Context, userID, id uuid.UUID) error

	CreateSocialLink(ctx context.Context, l *types.SocialLink) error
	ListSocialLinks(ctx context.Context, userID uuid.UUID) ([]types.SocialLink, error)
	DeleteSocialLink(ctx context.Context, userID, id uuid.UUID) error

	CreateDocument(ctx context.Context, d *types.Document, content []byte) error
	ListDocuments(ctx context.Context, userID uuid.UUID) ([]types.Document, error)
	GetDocumentContent(ctx context.Context, userID, id uuid.UUID) (*types.Document, []byte, error)
	DeleteDocument(ctx context.Context, userID, id uuid.UUID) error
}

var _ Store = (*db.DB)(nil)
