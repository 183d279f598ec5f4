package service

import (
	"fmt"
	"net/mail"
	"strings"

	"recruitment/internal/pkg/errs"
)

// Participant is a person involved in running a service's interviews.
// Both fields are optional; an email, when present, is stored lowercase.
type Participant struct {
	name  string
	email string
}

func NewParticipant(name, email string) (Participant, error) {
	p := Participant{
		name:  strings.TrimSpace(name),
		email: strings.ToLower(strings.TrimSpace(email)),
	}
	if err := p.Validate(); err != nil {
		return Participant{}, err
	}
	return p, nil
}

func (p Participant) Name() string {
	return p.name
}

func (p Participant) Email() string {
	return p.email
}

func (p Participant) Validate() error {
	if p.email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(p.email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("usersInvolved.email", fmt.Errorf("%q: %w", p.email, err))
	}
	return nil
}
