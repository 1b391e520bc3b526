package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/pillgood/backend/internal/db"
)

// Store is the persistence surface the handlers depend on. *db.DB satisfies
// it; tests substitute a fake.
type Store interface {
	// catalog
	ListPills(ctx context.Context, filter db.PillFilter) ([]db.PillSummary, int, error)
	GetPill(ctx context.Context, pillID int64) (*db.Pill, error)
	ListCategories(ctx context.Context) ([]db.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*db.Category, error)
	GetSubstance(ctx context.Context, substanceID int64) (*db.Substance, error)
	ListPillsBySubstance(ctx context.Context, substanceID int64, page, pageSize int) ([]db.PillSummary, int, error)
	CatalogSnapshot(ctx context.Context) ([]db.CatalogEntry, error)

	// cabinet
	ToggleUserPill(ctx context.Context, userID uuid.UUID, pillID int64) (bool, error)
	IsEnrolled(ctx context.Context, userID uuid.UUID, pillID int64) (bool, error)
	ListUserPills(ctx context.Context, userID uuid.UUID) ([]db.CabinetEntry, error)
	CreateCustomPill(ctx context.Context, userID uuid.UUID, name, brand, memo, ingredients string) (int64, error)
	GetCustomPill(ctx context.Context, userID uuid.UUID, customPillID int64) (*db.CustomPill, error)
	ListCustomPills(ctx context.Context, userID uuid.UUID) ([]db.CustomPill, error)
	UpdateCustomPill(ctx context.Context, userID uuid.UUID, customPillID int64, name, brand, memo, ingredients string) (bool, error)
	DeleteCustomPill(ctx context.Context, userID uuid.UUID, customPillID int64) (bool, error)

	// community
	ListThreads(ctx context.Context, pillID int64, page, pageSize int) ([]db.ThreadSummary, int, error)
	CreateThread(ctx context.Context, authorID uuid.UUID, pillID int64, title, body string) (int64, error)
	GetThread(ctx context.Context, threadID int64) (*db.Thread, error)
	UpdateThread(ctx context.Context, authorID uuid.UUID, threadID int64, title, body string) (bool, error)
	DeleteThread(ctx context.Context, authorID uuid.UUID, threadID int64) (bool, error)
	ToggleThreadLike(ctx context.Context, userID uuid.UUID, threadID int64) (bool, int, error)
	ListComments(ctx context.Context, threadID int64) ([]db.Comment, error)
	CreateComment(ctx context.Context, authorID uuid.UUID, threadID int64, body string) (int64, error)
	GetComment(ctx context.Context, commentID int64) (*db.Comment, error)
	DeleteComment(ctx context.Context, authorID uuid.UUID, commentID int64) (bool, error)

	// social
	GetProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, int, int, error)
}

// DBClient is the account persistence surface used by UserService.
type DBClient interface {
	CreateUser(ctx context.Context, nickname, email, passwordHash, gender string, age int) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
