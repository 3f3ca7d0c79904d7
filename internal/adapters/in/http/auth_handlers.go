package http

import (
	"net/http"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req servers.LoginJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Account, req.Password, c.RealIP())
	if err != nil {
		return err
	}
	result, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// RefreshToken handles POST /api/v1/auth/refresh.
func (s *Server) RefreshToken(c echo.Context) error {
	var req servers.RefreshTokenJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRefreshTokenCommand(req.RefreshToken)
	if err != nil {
		return err
	}
	result, err := s.handlers.RefreshToken.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
