package http

import (
	"net/http"
	"strings"

	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/application/usecases/queries"
	"recruitment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateService handles POST /api/service.
// Form: serviceName, description, interviewDates (JSON array of {date, time}),
// usersInvolved (JSON array of {name, email}). Files: coverImage, media, documents.
func (s *Server) CreateService(ctx echo.Context) error {
	files, err := formFiles(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid multipart form")
	}

	var dates []kernel.InterviewDate
	if raw := ctx.FormValue("interviewDates"); strings.TrimSpace(raw) != "" {
		if dates, err = parseInterviewDates(raw); err != nil {
			return s.fail(ctx, err, "Invalid interview dates")
		}
	}
	participants, err := parseParticipants(ctx.FormValue("usersInvolved"))
	if err != nil {
		return s.fail(ctx, err, "Invalid users involved")
	}

	cmd, err := commands.NewCreateServiceCommand(
		ctx.FormValue("serviceName"),
		ctx.FormValue("description"),
		dates,
		participants,
		files,
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid service data")
	}

	if err = s.handlers.CreateService.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create service")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ServiceID().String()})
}

// ListServices handles GET /api/service.
func (s *Server) ListServices(ctx echo.Context) error {
	services, err := s.handlers.ListServices.Handle(ctx.Request().Context(), queries.NewListServicesQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve services")
	}

	response := make([]ServiceSummaryResponse, len(services))
	for i, svc := range services {
		response[i] = ServiceSummaryResponse{
			ID:            svc.ID.String(),
			ServiceName:   svc.Name,
			Description:   svc.Description,
			CoverImage:    svc.CoverImageURL,
			MediaCount:    svc.MediaCount,
			DocumentCount: svc.DocumentCount,
			CreatedAt:     svc.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetService handles GET /api/service/:id.
func (s *Server) GetService(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}
	query, err := queries.NewGetServiceQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}

	svc, err := s.handlers.GetService.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve service")
	}

	return ctx.JSON(http.StatusOK, serviceResponse(svc))
}

// UpdateService handles PUT /api/service/:id. Every form value is optional;
// removeMedia and removeDocuments take asset ids.
func (s *Server) UpdateService(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}
	files, err := formFiles(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid multipart form")
	}

	changes := commands.ServiceChanges{
		Name:        optionalText(ctx, "serviceName"),
		Description: optionalText(ctx, "description"),
		Files:       files,
	}
	if raw := optionalText(ctx, "interviewDates"); raw != nil && strings.TrimSpace(*raw) != "" {
		if changes.InterviewDates, err = parseInterviewDates(*raw); err != nil {
			return s.fail(ctx, err, "Invalid interview dates")
		}
	}
	if raw := optionalText(ctx, "usersInvolved"); raw != nil {
		if changes.UsersInvolved, err = parseParticipants(*raw); err != nil {
			return s.fail(ctx, err, "Invalid users involved")
		}
	}
	if changes.RemoveMediaIDs, err = parseIDs("removeMedia", formValues(ctx, "removeMedia")); err != nil {
		return s.fail(ctx, err, "Invalid media ids")
	}
	if changes.RemoveDocumentIDs, err = parseIDs("removeDocuments", formValues(ctx, "removeDocuments")); err != nil {
		return s.fail(ctx, err, "Invalid document ids")
	}

	cmd, err := commands.NewUpdateServiceCommand(id, changes)
	if err != nil {
		return s.fail(ctx, err, "Invalid service data")
	}

	report, err := s.handlers.UpdateService.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to update service")
	}

	return ctx.JSON(http.StatusOK, UpdatedServiceResponse{ID: id.String(), Deletions: cleanupResponse(report)})
}

// DeleteService handles DELETE /api/service/:id and reports the cleanup of
// every asset the service held.
func (s *Server) DeleteService(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}
	cmd, err := commands.NewDeleteServiceCommand(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}

	report, err := s.handlers.DeleteService.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to delete service")
	}

	return ctx.JSON(http.StatusOK, DeletedResponse{
		Message:   "Service deleted successfully",
		Deletions: cleanupResponse(report),
	})
}

// DownloadDocument handles GET /api/service/:serviceId/download/:docId by
// redirecting to the attachment URL of the document.
func (s *Server) DownloadDocument(ctx echo.Context) error {
	serviceID, err := pathID(ctx, "serviceId")
	if err != nil {
		return s.fail(ctx, err, "Invalid service id")
	}
	documentID, err := pathID(ctx, "docId")
	if err != nil {
		return s.fail(ctx, err, "Invalid document id")
	}
	query, err := queries.NewGetDocumentDownloadQuery(serviceID, documentID)
	if err != nil {
		return s.fail(ctx, err, "Invalid document reference")
	}

	url, err := s.handlers.GetDocumentDownload.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to download document")
	}

	return ctx.Redirect(http.StatusFound, url)
}
