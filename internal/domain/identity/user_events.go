package identity

import "github.com/bottleops/backend/internal/domain/shared"

const AggregateTypeUser = "User"

// UserCreatedEvent is raised when a new user account is created.
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("user.created", AggregateTypeUser, user.ID),
		Username:        user.Username,
		Role:            user.Role,
	}
}
