package http

import (
	"context"
	"errors"
	"strings"

	"rfidship/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

type echoContextKey struct{}

// validateRequest checks every request routed under basePath against the
// matching operation of spec: its security requirement first, then path and
// query parameters. Request bodies are left to bind and the validate tags of
// the generated request types.
func (s *Server) validateRequest(spec *openapi3.T, basePath string) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		ExcludeRequestBody: true,
		AuthenticationFunc: s.authenticateBearer,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, pathParams, ok := operationRoute(spec, c, basePath)
			if !ok {
				return next(c)
			}

			ctx := context.WithValue(c.Request().Context(), echoContextKey{}, c)
			input := &openapi3filter.RequestValidationInput{
				Request:    c.Request().WithContext(ctx),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(ctx, input); err != nil {
				return fromValidationError(err)
			}
			return next(c)
		}
	}
}

// operationRoute resolves the echo route of c to its operation in spec. The
// echo path /boxes/:boxNo corresponds to the template /boxes/{boxNo}.
func operationRoute(spec *openapi3.T, c echo.Context, basePath string) (*routers.Route, map[string]string, bool) {
	routePath, found := strings.CutPrefix(c.Path(), basePath)
	if !found {
		return nil, nil, false
	}

	segments := strings.Split(routePath, "/")
	for i, segment := range segments {
		if name, isParam := strings.CutPrefix(segment, ":"); isParam {
			segments[i] = "{" + name + "}"
		}
	}
	template := strings.Join(segments, "/")

	pathItem := spec.Paths.Value(template)
	if pathItem == nil {
		return nil, nil, false
	}
	operation := pathItem.GetOperation(c.Request().Method)
	if operation == nil {
		return nil, nil, false
	}

	names, values := c.ParamNames(), c.ParamValues()
	pathParams := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			pathParams[name] = values[i]
		}
	}

	return &routers.Route{
		Spec:      spec,
		Path:      template,
		PathItem:  pathItem,
		Method:    c.Request().Method,
		Operation: operation,
	}, pathParams, true
}

// fromValidationError maps openapi3filter failures onto the error taxonomy.
// A failed security requirement keeps the error the authentication function
// returned, so a forbidden caller still gets 403.
func fromValidationError(err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		for _, cause := range securityErr.Errors {
			if errors.Is(cause, errs.ErrForbidden) || errors.Is(cause, errs.ErrUnauthorized) {
				return cause
			}
		}
		return errs.NewUnauthorizedError("request is not authenticated")
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		name := "request"
		if requestErr.Parameter != nil {
			name = requestErr.Parameter.Name
		}
		return errs.NewValueIsInvalidErrorWithCause(name, requestErr)
	}
	return err
}
