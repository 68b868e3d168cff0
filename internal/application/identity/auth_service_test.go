package identity

import (
	"context"
	"testing"
	"time"

	"github.com/bottleops/backend/internal/domain/identity"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/bottleops/backend/internal/infrastructure/auth"
	"github.com/bottleops/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func newAuthService(repo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-for-unit-tests-only-0001",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bottleops-test",
		MaxRefreshCount:        5,
	})
	return NewAuthService(repo, jwtService, zap.NewNop())
}

func activeUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("admin", "password1", identity.RoleAdmin)
	require.NoError(t, err)
	return user
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo)
	user := activeUser(t)

	repo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	result, err := service.Login(context.Background(), LoginInput{Username: "admin", Password: "password1"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, "admin", result.User.Role)
	assert.NotNil(t, user.LastLoginAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo)
	user := activeUser(t)

	repo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)

	_, err := service.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong-pass1"})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo)

	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

	_, err := service.Login(context.Background(), LoginInput{Username: "ghost", Password: "password1"})
	assert.Error(t, err)
}

func TestLogin_DeactivatedUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo)
	user := activeUser(t)
	require.NoError(t, user.Deactivate())

	repo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)

	_, err := service.Login(context.Background(), LoginInput{Username: "admin", Password: "password1"})
	assert.Error(t, err)
}

func TestRefreshToken_Success(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo)
	user := activeUser(t)

	repo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	login, err := service.Login(context.Background(), LoginInput{Username: "admin", Password: "password1"})
	require.NoError(t, err)

	result, err := service.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestRefreshToken_DeactivatedUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo)
	user := activeUser(t)

	repo.On("FindByUsername", mock.Anything, "admin").Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	login, err := service.Login(context.Background(), LoginInput{Username: "admin", Password: "password1"})
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())

	_, err = service.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: login.RefreshToken})
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo)
	user := activeUser(t)

	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	err := service.ChangePassword(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "password1",
		NewPassword: "replacement1",
	})
	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("replacement1"))
}
