package commands

import (
	"errors"
	"strings"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/user"
	"recruitment/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand replaces a user's username, email and role. A nil role
// keeps the current one.
type UpdateUserCommand struct {
	userID   kernel.UUID
	username string
	email    string
	role     *user.Role

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(userID kernel.UUID, username, email string, role *user.Role) (UpdateUserCommand, error) {
	command := UpdateUserCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	var usernameErr, emailErr, roleErr error
	if command.username = strings.TrimSpace(username); command.username == "" {
		usernameErr = ErrUsernameIsRequired
	}
	if command.email = strings.TrimSpace(email); command.email == "" {
		emailErr = ErrUserEmailIsRequired
	}
	if role != nil {
		r := *role
		roleErr = r.Validate()
		command.role = &r
	}

	if err := errors.Join(userID.Validate(), usernameErr, emailErr, roleErr); err != nil {
		return UpdateUserCommand{}, err
	}

	return command, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateUserCommand) Username() string {
	return c.username
}

func (c UpdateUserCommand) Email() string {
	return c.email
}

// Role returns the requested role or nil to keep the current one.
func (c UpdateUserCommand) Role() *user.Role {
	return c.role
}
