package application

import (
	"fmt"

	"recruitment/internal/pkg/errs"
)

// Status is the review state of an application.
type Status int

const (
	Unknown Status = iota
	Pending
	Approved
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// ParseStatus maps the wire form to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// TransitionTo returns the next status. A decision may be revised between
// approved and rejected, but nothing goes back to pending.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return s, err
	}
	if next == s {
		return s, nil
	}
	if next == Pending {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move an application from %s back to %s", s, next),
		)
	}
	return next, nil
}
