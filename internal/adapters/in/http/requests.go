package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"slices"
	"strings"

	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
	"recruitment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type interviewDatePayload struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type participantPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type newUserPayload struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Role     string `json:"role" form:"role"`
}

type statusPayload struct {
	Status string `json:"status" form:"status"`
}

// formFiles returns the files of a multipart request ordered by field name,
// keeping the posted order inside a field. Other requests have no files.
func formFiles(ctx echo.Context) ([]uploads.File, error) {
	if !strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("multipart form", err)
	}

	var files []uploads.File
	for _, field := range slices.Sorted(maps.Keys(form.File)) {
		for _, header := range form.File[field] {
			files = append(files, fileOf(field, header))
		}
	}
	return files, nil
}

func fileOf(field string, header *multipart.FileHeader) uploads.File {
	return uploads.File{
		Field:       field,
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

// parseInterviewDates decodes a JSON array of {date, time} objects.
func parseInterviewDates(raw string) ([]kernel.InterviewDate, error) {
	var payload []interviewDatePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("interviewDates", err)
	}
	dates := make([]kernel.InterviewDate, 0, len(payload))
	var all []error
	for i, p := range payload {
		date, err := kernel.ParseInterviewDate(p.Date, p.Time)
		if err != nil {
			all = append(all, fmt.Errorf("interviewDates[%d]: %w", i, err))
			continue
		}
		dates = append(dates, date)
	}
	if err := errors.Join(all...); err != nil {
		return nil, err
	}
	return dates, nil
}

// parseInterviewDate decodes a single {date, time} object.
func parseInterviewDate(raw string) (kernel.InterviewDate, error) {
	var payload interviewDatePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return kernel.InterviewDate{}, errs.NewValueIsInvalidErrorWithCause("interviewDate", err)
	}
	return kernel.ParseInterviewDate(payload.Date, payload.Time)
}

// parseParticipants decodes a JSON array of {name, email} objects. An empty
// value means no participants.
func parseParticipants(raw string) ([]service.Participant, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var payload []participantPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("usersInvolved", err)
	}
	participants := make([]service.Participant, 0, len(payload))
	for _, p := range payload {
		participant, err := service.NewParticipant(p.Name, p.Email)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}
	return participants, nil
}

// parseIDs accepts either repeated form values or a single JSON array.
func parseIDs(param string, values []string) ([]kernel.UUID, error) {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(values[0]), &decoded); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
		}
		values = decoded
	}
	ids := make([]kernel.UUID, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		id, err := kernel.UUIDFromString(v)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// optionalText returns nil for an absent form value.
func optionalText(ctx echo.Context, name string) *string {
	form, err := ctx.FormParams()
	if err != nil {
		return nil
	}
	values, ok := form[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func formValues(ctx echo.Context, name string) []string {
	form, err := ctx.FormParams()
	if err != nil {
		return nil
	}
	return form[name]
}
