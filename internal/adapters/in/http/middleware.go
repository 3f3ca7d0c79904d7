package http

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	subjectKey = "auth.subject"
	adminScope = "admin"
)

// authenticateBearer is the AuthenticationFunc behind the bearerAuth scheme.
// It parses the access token, rejects callers lacking a required admin
// scope, and stores the subject on the echo context for handlers.
func (s *Server) authenticateBearer(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	c, ok := ctx.Value(echoContextKey{}).(echo.Context)
	if !ok {
		return errs.NewUnauthorizedError("request is not authenticated")
	}

	header := input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return errs.NewUnauthorizedError("missing bearer token")
	}
	subject, err := s.tokens.ParseAccess(strings.TrimSpace(token))
	if err != nil {
		return err
	}

	if slices.Contains(input.Scopes, adminScope) && subject.UserType != user.Admin.String() {
		return errs.NewForbiddenError("admin access required")
	}
	c.Set(subjectKey, subject)
	return nil
}

func subjectFrom(c echo.Context) (ports.TokenSubject, error) {
	subject, ok := c.Get(subjectKey).(ports.TokenSubject)
	if !ok {
		return ports.TokenSubject{}, errs.NewUnauthorizedError("request is not authenticated")
	}
	return subject, nil
}

// routeIs matches requests routed to method and the registered echo path.
func routeIs(method, path string) func(c echo.Context) bool {
	return func(c echo.Context) bool {
		return c.Request().Method == method && c.Path() == path
	}
}

const (
	DefaultLoginRate  = rate.Limit(1)
	DefaultLoginBurst = 5

	limiterIdleTTL = 10 * time.Minute
)

// LoginRateLimiter throttles login attempts per client address. Limiters of
// idle addresses expire from the store.
type LoginRateLimiter struct {
	limit rate.Limit
	burst int
	store *cache.Cache
}

func NewLoginRateLimiter(limit rate.Limit, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		limit: limit,
		burst: burst,
		store: cache.New(limiterIdleTTL, 2*limiterIdleTTL),
	}
}

// Allow consumes one token of ip's bucket.
func (l *LoginRateLimiter) Allow(ip string) bool {
	return l.limiter(ip).Allow()
}

func (l *LoginRateLimiter) limiter(ip string) *rate.Limiter {
	if cached, found := l.store.Get(ip); found {
		l.store.SetDefault(ip, cached)
		return cached.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	if err := l.store.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		if cached, found := l.store.Get(ip); found {
			return cached.(*rate.Limiter)
		}
	}
	return limiter
}

// Middleware throttles the requests selected by applies and passes every
// other request through.
func (l *LoginRateLimiter) Middleware(applies func(c echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if applies(c) && !l.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.WithoutCancel(c.Request().Context()), level, "request", attrs...)
			return nil
		},
	}
}
