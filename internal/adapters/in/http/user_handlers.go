package http

import (
	"net/http"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetUsers handles GET /api/v1/users.
func (s *Server) GetUsers(c echo.Context, params servers.GetUsersParams) error {
	query, err := queries.NewGetUsersQuery(
		valueOr(params.Page, 0),
		valueOr(params.Limit, 0),
		string(valueOr(params.UserType, "")),
		valueOr(params.Code, ""),
	)
	if err != nil {
		return err
	}
	result, err := s.handlers.GetUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(c echo.Context) error {
	var req servers.CreateUserJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateUserCommand(caller, req.Account, req.Password, req.Code, req.Name, req.UserType)
	if err != nil {
		return err
	}
	result, err := s.handlers.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// GetUserByUUID handles GET /api/v1/users/{uuid}. Suppliers may only read
// their own account.
func (s *Server) GetUserByUUID(c echo.Context, uuid servers.UserUUID) error {
	subject, err := subjectFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserByUUIDQuery(uuid, subject.UserID.String())
	if err != nil {
		return err
	}
	result, err := s.handlers.GetUserByUUID.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateUser handles PATCH /api/v1/users/{uuid}.
func (s *Server) UpdateUser(c echo.Context, uuid servers.UserUUID) error {
	var req servers.UpdateUserJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(caller, uuid, commands.UpdateUserParams{
		Account:  req.Account,
		Password: req.Password,
		Code:     req.Code,
		Name:     req.Name,
		UserType: req.UserType,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	result, err := s.handlers.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteUser handles DELETE /api/v1/users/{uuid}.
func (s *Server) DeleteUser(c echo.Context, uuid servers.UserUUID) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(caller, uuid)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
