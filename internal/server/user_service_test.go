package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pillgood/backend/internal/config"
	"github.com/pillgood/backend/internal/db"
	"github.com/pillgood/backend/internal/types"
)

// fakeUserDB is an in-memory DBClient.
type fakeUserDB struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserDB() *fakeUserDB {
	return &fakeUserDB{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserDB) CreateUser(_ context.Context, nickname, email, passwordHash, gender string, age int) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID: id, Nickname: nickname, Email: email, PasswordHash: passwordHash,
		Gender: gender, Age: age,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeUserDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeUserDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	f.users[userID].PasswordHash = passwordHash
	return nil
}

func testPasswordConfig(t *testing.T) *config.PasswordConfig {
	t.Helper()
	t.Setenv("BCRYPT_COST", "10") // fastest allowed cost to keep tests quick
	cfg, err := config.NewPasswordConfig()
	require.NoError(t, err)
	return cfg
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := NewUserService(newFakeUserDB(), testPasswordConfig(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Nickname: "건강지킴이",
		Email:    "user@example.com",
		Password: "password123",
		Gender:   "F",
		Age:      29,
	})
	require.NoError(t, err)
	assert.Equal(t, "건강지킴이", user.Nickname)
	assert.Equal(t, "F", user.Gender)
	assert.Equal(t, 29, user.Age)

	loggedIn, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserDB(), testPasswordConfig(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Nickname: "first", Email: "dup@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &types.CreateUserRequest{
		Nickname: "second", Email: "dup@example.com", Password: "password456",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_LoginFailures(t *testing.T) {
	svc := NewUserService(newFakeUserDB(), testPasswordConfig(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Nickname: "user", Email: "user@example.com", Password: "password123",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "user@example.com", Password: "wrong-password"})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		assert.IsType(t, &ErrInvalidCredentials{}, err)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc := NewUserService(newFakeUserDB(), testPasswordConfig(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Nickname: "user", Email: "user@example.com", Password: "password123",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, user.ID, "not-the-password", "newpassword")
		assert.IsType(t, &ErrPasswordMismatch{}, err)
	})

	t.Run("success then login with new password", func(t *testing.T) {
		require.NoError(t, svc.UpdatePassword(ctx, user.ID, "password123", "newpassword"))

		_, err := svc.Login(ctx, &types.LoginRequest{Email: "user@example.com", Password: "newpassword"})
		require.NoError(t, err)

		_, err = svc.Login(ctx, &types.LoginRequest{Email: "user@example.com", Password: "password123"})
		assert.Error(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, uuid.New(), "password123", "newpassword")
		assert.IsType(t, &ErrUserNotFound{}, err)
	})
}

func TestConvertDBUserToTypesUser(t *testing.T) {
	assert.Nil(t, convertDBUserToTypesUser(nil))

	now := time.Now()
	dbUser := &db.User{
		ID: uuid.New(), Nickname: "nick", Email: "a@b.com",
		PasswordHash: "hash", CreatedAt: now, UpdatedAt: now,
	}
	u := convertDBUserToTypesUser(dbUser)
	require.NotNil(t, u)
	assert.Equal(t, dbUser.ID, u.ID)
	assert.Equal(t, "nick", u.Nickname)
}
