package http

import (
	"net/http"

	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/application/usecases/queries"
	"recruitment/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// CreateUser handles POST /api/user.
func (s *Server) CreateUser(ctx echo.Context) error {
	var payload newUserPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	role, err := user.ParseRole(payload.Role)
	if err != nil {
		return s.fail(ctx, err, "Invalid role")
	}

	cmd, err := commands.NewCreateUserCommand(payload.Username, payload.Email, role)
	if err != nil {
		return s.fail(ctx, err, "Invalid user data")
	}

	if err = s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create user")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.UserID().String()})
}

// ListUsers handles GET /api/user and GET /api/user/all.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.handlers.ListUsers.Handle(ctx.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve users")
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = userResponse(u)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateUser handles PUT /api/user/:id. An omitted role keeps the current one.
func (s *Server) UpdateUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid user id")
	}
	var payload newUserPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	var role *user.Role
	if payload.Role != "" {
		parsed, err := user.ParseRole(payload.Role)
		if err != nil {
			return s.fail(ctx, err, "Invalid role")
		}
		role = &parsed
	}

	cmd, err := commands.NewUpdateUserCommand(id, payload.Username, payload.Email, role)
	if err != nil {
		return s.fail(ctx, err, "Invalid user data")
	}

	if err = s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update user")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadUserCV handles PUT /api/user/:id/cv with a multipart cv file.
func (s *Server) UploadUserCV(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid user id")
	}
	files, err := formFiles(ctx)
	if err != nil {
		return s.fail(ctx, err, "Invalid multipart form")
	}

	cmd, err := commands.NewUploadUserCVCommand(id, files)
	if err != nil {
		return s.fail(ctx, err, "Invalid cv upload")
	}

	cv, report, err := s.handlers.UploadUserCV.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to upload cv")
	}

	return ctx.JSON(http.StatusOK, UserCVResponse{CV: storedAssetResponse(cv), Deletions: cleanupResponse(report)})
}

// DeleteUser handles DELETE /api/user/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err, "Invalid user id")
	}
	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid user id")
	}

	report, err := s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to delete user")
	}

	return ctx.JSON(http.StatusOK, DeletedResponse{
		Message:   "User deleted",
		Deletions: cleanupResponse(report),
	})
}
