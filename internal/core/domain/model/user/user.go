package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

var (
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	ErrEmailIsRequired    = errs.NewValueIsRequiredError("email")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is an account holder. Besides identity it keeps an optional CV that
// applications may reuse by reference instead of uploading again.
type User struct {
	id        kernel.UUID
	username  string
	email     string
	role      Role
	cv        *asset.Asset
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewUser(id kernel.UUID, username, email string, role Role, createdAt time.Time) (*User, error) {
	return RestoreUser(id, username, email, role, nil, createdAt)
}

func RestoreUser(id kernel.UUID, username, email string, role Role, cv *asset.Asset, createdAt time.Time) (*User, error) {
	u := &User{
		guard:     guard.NewConstructorGuard(),
		createdAt: createdAt.UTC(),
	}

	var cvErr error
	if cv != nil {
		cvErr = cv.Validate()
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		role.Validate(),
		cvErr,
	); err != nil {
		return nil, err
	}

	u.role = role
	u.cv = cv
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// CV returns the stored CV or nil.
func (u *User) CV() *asset.Asset {
	return u.cv
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ReplaceCV stores a new CV and returns the detached one, if any.
func (u *User) ReplaceCV(cv *asset.Asset) (*asset.Asset, error) {
	if cv == nil {
		return nil, errs.NewValueIsRequiredError("cv")
	}
	if err := cv.Validate(); err != nil {
		return nil, err
	}
	previous := u.cv
	u.cv = cv
	if previous.SameObject(cv) {
		return nil, nil
	}
	return previous, nil
}

// ChangeProfile replaces the username, email and role. Nothing changes
// unless all three are valid.
func (u *User) ChangeProfile(username, email string, role Role) error {
	next := *u
	if err := errors.Join(
		next.setUsername(username),
		next.setEmail(email),
		role.Validate(),
	); err != nil {
		return err
	}
	u.username = next.username
	u.email = next.email
	u.role = role
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailIsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q: %w", email, err))
	}
	u.email = email
	return nil
}
