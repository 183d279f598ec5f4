package user

import (
	"fmt"

	"recruitment/internal/pkg/errs"
)

type Role int

const (
	UnknownRole Role = iota
	RoleUser
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		RoleUser:    "user",
		RoleAdmin:   "admin",
	}
}

// ParseRole maps the wire form to a Role. An empty string is the default role.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleUser, nil
	}
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

func (r Role) Validate() error {
	if r != RoleUser && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
