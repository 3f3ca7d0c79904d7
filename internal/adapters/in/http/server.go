package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"rfidship/internal/adapters/in/http/docs"
	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/core/ports"
	"rfidship/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is the shape shared by every command and query handler.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, request Q) (R, error)
}

type DeleteUserHandler interface {
	Handle(ctx context.Context, command commands.DeleteUserCommand) error
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	Login        Handler[commands.LoginCommand, commands.LoginResult]
	RefreshToken Handler[commands.RefreshTokenCommand, commands.TokenResult]

	CreateRfid           Handler[commands.CreateRfidCommand, commands.RfidResult]
	BatchCreateRfid      Handler[commands.BatchCreateRfidCommand, commands.BatchCreateRfidResult]
	GenerateProductRfids Handler[commands.GenerateProductRfidsCommand, commands.GenerateProductRfidsResult]
	QueryProductRfids    Handler[queries.QueryProductRfidsQuery, queries.PageResult[queries.RfidItem]]

	CreateBox         Handler[commands.CreateBoxCommand, commands.BoxResult]
	CreateBatchBoxes  Handler[commands.CreateBatchBoxesCommand, commands.CreateBatchBoxesResult]
	AddRfidToBox      Handler[commands.AddRfidToBoxCommand, commands.BoxDetail]
	RemoveRfidFromBox Handler[commands.RemoveRfidFromBoxCommand, commands.BoxDetail]
	GetBoxes          Handler[queries.GetBoxesQuery, queries.PageResult[queries.BoxItem]]
	GetBoxByNo        Handler[queries.GetBoxByNoQuery, queries.BoxView]

	CreateShipment        Handler[commands.CreateShipmentCommand, commands.ShipmentResult]
	AddBoxToShipment      Handler[commands.AddBoxToShipmentCommand, commands.ShipmentDetail]
	RemoveBoxFromShipment Handler[commands.RemoveBoxFromShipmentCommand, commands.ShipmentDetail]
	ShipShipment          Handler[commands.ShipShipmentCommand, commands.ShipmentResult]
	UpdateShipmentNote    Handler[commands.UpdateShipmentNoteCommand, commands.ShipmentResult]
	GetShipment           Handler[queries.GetShipmentQuery, queries.ShipmentView]

	CreateUser    Handler[commands.CreateUserCommand, commands.UserResult]
	UpdateUser    Handler[commands.UpdateUserCommand, commands.UserResult]
	DeleteUser    DeleteUserHandler
	GetUsers      Handler[queries.GetUsersQuery, queries.PageResult[queries.UserItem]]
	GetUserByUUID Handler[queries.GetUserByUUIDQuery, queries.UserItem]

	QueryLogs     Handler[queries.QueryLogsQuery, queries.PageResult[queries.LogItem]]
	GetLogSummary Handler[queries.GetLogSummaryQuery, queries.LogSummary]
}

type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

func WithLoginRateLimiter(limiter *LoginRateLimiter) Option {
	return func(s *Server) {
		s.loginLimiter = limiter
	}
}

// Server translates HTTP requests into commands and queries and renders
// their results as JSON.
type Server struct {
	handlers     Handlers
	tokens       ports.TokenIssuer
	labels       ports.LabelRenderer
	logger       *slog.Logger
	loginLimiter *LoginRateLimiter
}

func NewServer(handlers Handlers, tokens ports.TokenIssuer, labels ports.LabelRenderer, opts ...Option) *Server {
	s := &Server{
		handlers: handlers,
		tokens:   tokens,
		labels:   labels,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.loginLimiter == nil {
		s.loginLimiter = NewLoginRateLimiter(DefaultLoginRate, DefaultLoginBurst)
	}
	s.logger = s.logger.With("component", "http")
	return s
}

// BasePath prefixes every route of the OpenAPI document.
const BasePath = "/api/v1"

var _ servers.ServerInterface = (*Server)(nil)

// NewEcho builds the echo instance serving the embedded OpenAPI document.
// Requests under BasePath pass the login rate limit and the document's
// security and parameter rules before reaching a handler; bodies are bound
// into the generated request types and checked by their validate tags.
func NewEcho(s *Server) (*echo.Echo, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err = docs.Register(spec); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(s.logger)))
	e.Use(middleware.Recover())
	e.Use(s.loginLimiter.Middleware(routeIs(http.MethodPost, BasePath+"/auth/login")))
	e.Use(s.validateRequest(spec, BasePath))

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlersWithBaseURL(e, s, BasePath)
	return e, nil
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// bind decodes the request and runs the validate tags of req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// actor is the authenticated caller of the current request.
func actor(c echo.Context) (commands.Actor, error) {
	subject, err := subjectFrom(c)
	if err != nil {
		return commands.Actor{}, err
	}
	return commands.NewActor(subject.UserID.String(), c.RealIP())
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
