package kernel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"recruitment/internal/pkg/errs"
)

// InterviewDateLayout is the calendar-date form accepted besides RFC 3339.
const InterviewDateLayout = "2006-01-02"

var (
	ErrInterviewDateIsRequired = errs.NewValueIsRequiredError("interview date")
	ErrInterviewTimeIsRequired = errs.NewValueIsRequiredError("interview time")
)

// InterviewDate is an interview slot: a calendar day and a free-form time of
// day as entered by an administrator (for example "10:30 AM").
type InterviewDate struct {
	date time.Time
	at   string
}

func NewInterviewDate(date time.Time, at string) (InterviewDate, error) {
	at = strings.TrimSpace(at)

	var dateErr, timeErr error
	if date.IsZero() {
		dateErr = ErrInterviewDateIsRequired
	}
	if at == "" {
		timeErr = ErrInterviewTimeIsRequired
	}
	if err := errors.Join(dateErr, timeErr); err != nil {
		return InterviewDate{}, err
	}

	return InterviewDate{date: date.UTC(), at: at}, nil
}

// ParseInterviewDate builds an InterviewDate from client input. The date may be
// a calendar date (2006-01-02) or a full RFC 3339 timestamp.
func ParseInterviewDate(date, at string) (InterviewDate, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		_, err := NewInterviewDate(time.Time{}, at)
		return InterviewDate{}, err
	}

	parsed, err := time.Parse(InterviewDateLayout, date)
	if err != nil {
		var rfcErr error
		parsed, rfcErr = time.Parse(time.RFC3339, date)
		if rfcErr != nil {
			return InterviewDate{}, errs.NewValueIsInvalidErrorWithCause(
				"interview date",
				fmt.Errorf("%q is neither %s nor RFC 3339", date, InterviewDateLayout),
			)
		}
	}

	return NewInterviewDate(parsed, at)
}

func (d InterviewDate) Date() time.Time {
	return d.date
}

func (d InterviewDate) Time() string {
	return d.at
}

func (d InterviewDate) IsZero() bool {
	return d.date.IsZero()
}

func (d InterviewDate) Validate() error {
	if d.IsZero() {
		return ErrInterviewDateIsRequired
	}
	return nil
}

func (d InterviewDate) String() string {
	return fmt.Sprintf("%s %s", d.date.Format(InterviewDateLayout), d.at)
}
