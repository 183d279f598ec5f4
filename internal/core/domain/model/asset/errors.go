package asset

import (
	"fmt"
	"strings"

	"recruitment/internal/pkg/errs"
)

// ValidationError rejects an upload before any storage write. It is a client
// error and never retried.
type ValidationError struct {
	Field       string
	ContentType string
	Reason      string
	// Allowed is the allow-list that was checked, when the field has one.
	Allowed []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("upload rejected")
	if e.Field != "" {
		fmt.Fprintf(&b, " for field %q", e.Field)
	}
	switch {
	case e.Reason == "" && e.ContentType != "":
		fmt.Fprintf(&b, ": content type %q is not allowed", e.ContentType)
	case e.ContentType != "":
		fmt.Fprintf(&b, ": %s (content type %q)", e.Reason, e.ContentType)
	case e.Reason != "":
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, " (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
