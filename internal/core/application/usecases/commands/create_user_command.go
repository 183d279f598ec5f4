package commands

import (
	"errors"
	"strings"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/user"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrUsernameIsRequired  = errs.NewValueIsRequiredError("username")
	ErrUserEmailIsRequired = errs.NewValueIsRequiredError("email")
)

type CreateUserCommand struct {
	userID   kernel.UUID
	username string
	email    string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(username, email string, role user.Role) (CreateUserCommand, error) {
	command := CreateUserCommand{
		userID: kernel.NewUUID(),
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}

	var usernameErr, emailErr error
	if command.username = strings.TrimSpace(username); command.username == "" {
		usernameErr = ErrUsernameIsRequired
	}
	if command.email = strings.TrimSpace(email); command.email == "" {
		emailErr = ErrUserEmailIsRequired
	}

	if err := errors.Join(usernameErr, emailErr, role.Validate()); err != nil {
		return CreateUserCommand{}, err
	}

	return command, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateUserCommand) Username() string {
	return c.username
}

func (c CreateUserCommand) Email() string {
	return c.email
}

func (c CreateUserCommand) Role() user.Role {
	return c.role
}
