package http

import (
	"net/http"
	"strings"

	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/application/usecases/queries"
	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateApplication handles POST /api/application.
// Form: name, email, serviceId, interviewDate (JSON {date, time}) and either
// a cv file or existingCvId, the id of the user whose stored cv is reused.
func (s *Server) CreateApplication(ctx echo.Context) error {
	files, err := formFiles(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid multipart form")
	}

	serviceID, err := kernel.UUIDFromString(ctx.FormValue("serviceId"))
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}
	interviewDate, err := parseInterviewDate(ctx.FormValue("interviewDate"))
	if err != nil {
		return s.fail(ctx, err, "Invalid interview date")
	}
	var userID *kernel.UUID
	if raw := strings.TrimSpace(ctx.FormValue("existingCvId")); raw != "" {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return s.fail(ctx, parseErr, "Invalid cv reference")
		}
		userID = &id
	}

	cmd, err := commands.NewCreateApplicationCommand(
		ctx.FormValue("name"),
		ctx.FormValue("email"),
		serviceID,
		interviewDate,
		userID,
		files,
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid application data")
	}

	if err = s.handlers.CreateApplication.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create application")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ApplicationID().String()})
}

// ListApplications handles GET /api/application, optionally filtered by the
// serviceId query parameter.
func (s *Server) ListApplications(ctx echo.Context) error {
	var serviceID *kernel.UUID
	if raw := ctx.QueryParam("serviceId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.fail(ctx, err, "Invalid service id")
		}
		serviceID = &id
	}
	query, err := queries.NewListApplicationsQuery(serviceID)
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}

	applications, err := s.handlers.ListApplications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve applications")
	}

	response := make([]ApplicationResponse, len(applications))
	for i, a := range applications {
		response[i] = applicationResponse(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateApplicationStatus handles PATCH /api/application/:id/status.
func (s *Server) UpdateApplicationStatus(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid application id")
	}
	var payload statusPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	status, err := application.ParseStatus(payload.Status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status")
	}

	cmd, err := commands.NewUpdateApplicationStatusCommand(id, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status change")
	}

	if err = s.handlers.UpdateApplicationStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update application status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteApplication handles DELETE /api/application/:id.
func (s *Server) DeleteApplication(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid application id")
	}
	cmd, err := commands.NewDeleteApplicationCommand(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid application id")
	}

	report, err := s.handlers.DeleteApplication.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to delete application")
	}

	return ctx.JSON(http.StatusOK, DeletedResponse{
		Message:   "Application deleted",
		Deletions: cleanupResponse(report),
	})
}
