package identity

import (
	"context"

	"github.com/bottleops/backend/internal/domain/identity"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService handles staff account management
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create creates a new staff account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserInfo, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this username already exists")
	}

	user, err := identity.NewUser(req.Username, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	info := ToUserInfo(user)
	return &info, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// List retrieves all users
func (s *UserService) List(ctx context.Context) ([]UserInfo, int64, error) {
	users, err := s.userRepo.FindAll(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	infos := make([]UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, ToUserInfo(user))
	}
	return infos, total, nil
}

// Deactivate disables a staff account
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.Deactivate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Activate re-enables a staff account
func (s *UserService) Activate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.Activate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}
