package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "rfidship/internal/adapters/in/http"
	"rfidship/internal/adapters/out/labels"
	"rfidship/internal/adapters/out/tokens"
	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/ports"
	"rfidship/internal/generated/servers"
	"rfidship/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type handlerMock[Q, R any] struct {
	mock.Mock
}

func (m *handlerMock[Q, R]) Handle(ctx context.Context, request Q) (R, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(R), args.Error(1)
}

type deleteUserMock struct {
	mock.Mock
}

func (m *deleteUserMock) Handle(ctx context.Context, command commands.DeleteUserCommand) error {
	return m.Called(ctx, command).Error(0)
}

type fixture struct {
	echo       *echo.Echo
	issuer     *tokens.JWTIssuer
	login      *handlerMock[commands.LoginCommand, commands.LoginResult]
	createBox  *handlerMock[commands.CreateBoxCommand, commands.BoxResult]
	getBoxes   *handlerMock[queries.GetBoxesQuery, queries.PageResult[queries.BoxItem]]
	getBoxByNo *handlerMock[queries.GetBoxByNoQuery, queries.BoxView]
	getUsers   *handlerMock[queries.GetUsersQuery, queries.PageResult[queries.UserItem]]
	deleteUser *deleteUserMock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	issuer, err := tokens.NewJWTIssuer(tokens.Config{AccessSecret: "access", RefreshSecret: "refresh"})
	require.NoError(t, err)
	renderer, err := labels.NewPDFRenderer(labels.DefaultLayout)
	require.NoError(t, err)

	f := &fixture{
		issuer:     issuer,
		login:      &handlerMock[commands.LoginCommand, commands.LoginResult]{},
		createBox:  &handlerMock[commands.CreateBoxCommand, commands.BoxResult]{},
		getBoxes:   &handlerMock[queries.GetBoxesQuery, queries.PageResult[queries.BoxItem]]{},
		getBoxByNo: &handlerMock[queries.GetBoxByNoQuery, queries.BoxView]{},
		getUsers:   &handlerMock[queries.GetUsersQuery, queries.PageResult[queries.UserItem]]{},
		deleteUser: &deleteUserMock{},
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		Login:      f.login,
		CreateBox:  f.createBox,
		GetBoxes:   f.getBoxes,
		GetBoxByNo: f.getBoxByNo,
		GetUsers:   f.getUsers,
		DeleteUser: f.deleteUser,
	}, issuer, renderer,
		httpadapter.WithLoginRateLimiter(httpadapter.NewLoginRateLimiter(rate.Every(time.Hour), 2)),
	)
	f.echo, err = httpadapter.NewEcho(server)
	require.NoError(t, err)
	return f
}

func (f *fixture) token(t *testing.T, userType string) (string, kernel.UUID) {
	t.Helper()
	id := kernel.NewUUID()
	pair, err := f.issuer.IssuePair(ports.TokenSubject{UserID: id, Account: "operator", UserType: userType, Code: "001"})
	require.NoError(t, err)
	return pair.AccessToken, id
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSecuredRoutes_RequireBearerToken(t *testing.T) {
	f := newFixture(t)

	missing := f.do(http.MethodGet, "/api/v1/boxes", "", "")
	garbage := f.do(http.MethodGet, "/api/v1/boxes", "", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, http.StatusUnauthorized, garbage.Code)
	assert.Equal(t, http.StatusUnauthorized, decodeError(t, missing).Code)
	f.getBoxes.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateBox_PassesCallerAndCode(t *testing.T) {
	f := newFixture(t)
	token, callerID := f.token(t, "user")
	f.createBox.
		On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateBoxCommand) bool {
			return cmd.Code().String() == "001" && cmd.Actor().ID().IsEqual(callerID)
		})).
		Return(commands.BoxResult{BoxNo: "B001202500001", Code: "001", Status: "CREATED"}, nil).
		Once()

	rec := f.do(http.MethodPost, "/api/v1/boxes", `{"code":"001"}`, token)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body commands.BoxResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "B001202500001", body.BoxNo)
	f.createBox.AssertExpectations(t)
}

func TestCreateBox_ValidatesBody(t *testing.T) {
	f := newFixture(t)
	token, _ := f.token(t, "user")

	rec := f.do(http.MethodPost, "/api/v1/boxes", `{}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "code failed required")
	f.createBox.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: errs.NewObjectNotFoundError("user", "x"), status: http.StatusNotFound},
		{name: "forbidden", err: errs.NewForbiddenError("user is not active"), status: http.StatusForbidden},
		{name: "conflict", err: errs.NewConflictError("box already exists"), status: http.StatusConflict},
		{name: "overflow", err: errs.NewSequenceOverflowError("box serial", 100000, 99999), status: http.StatusUnprocessableEntity},
		{name: "exhausted", err: errs.NewGenerationExhaustedError("shipment number", 100), status: http.StatusServiceUnavailable},
		{name: "invalid", err: errs.NewValueIsInvalidError("code"), status: http.StatusBadRequest},
		{name: "joined", err: errors.Join(errs.NewValueIsRequiredError("code")), status: http.StatusBadRequest},
		{name: "unexpected", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			token, _ := f.token(t, "user")
			f.createBox.On("Handle", mock.Anything, mock.Anything).Return(commands.BoxResult{}, tt.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/boxes", `{"code":"001"}`, token)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.status, body.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "connection reset")
			}
		})
	}
}

func TestGetBoxes_DefaultsAndStrictLimits(t *testing.T) {
	f := newFixture(t)
	token, _ := f.token(t, "user")
	f.getBoxes.On("Handle", mock.Anything, mock.Anything).
		Return(queries.PageResult[queries.BoxItem]{Items: []queries.BoxItem{}, Page: 1, Limit: 20}, nil).
		Once()

	ok := f.do(http.MethodGet, "/api/v1/boxes", "", token)
	tooLarge := f.do(http.MethodGet, "/api/v1/boxes?limit=500", "", token)
	notNumber := f.do(http.MethodGet, "/api/v1/boxes?page=first", "", token)

	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, http.StatusBadRequest, tooLarge.Code)
	assert.Equal(t, http.StatusBadRequest, notNumber.Code)
	f.getBoxes.AssertNumberOfCalls(t, "Handle", 1)
}

func TestAdminRoutes_RejectNonAdmins(t *testing.T) {
	f := newFixture(t)
	supplier, _ := f.token(t, "supplier")
	admin, _ := f.token(t, "admin")
	f.getUsers.On("Handle", mock.Anything, mock.Anything).
		Return(queries.PageResult[queries.UserItem]{Items: []queries.UserItem{}}, nil).
		Once()

	denied := f.do(http.MethodGet, "/api/v1/users", "", supplier)
	allowed := f.do(http.MethodGet, "/api/v1/users", "", admin)

	assert.Equal(t, http.StatusForbidden, denied.Code)
	assert.Equal(t, http.StatusOK, allowed.Code)
	f.getUsers.AssertExpectations(t)
}

func TestDeleteUser_NoContent(t *testing.T) {
	f := newFixture(t)
	admin, _ := f.token(t, "admin")
	target := kernel.NewUUID()
	f.deleteUser.
		On("Handle", mock.Anything, mock.AnythingOfType("commands.DeleteUserCommand")).
		Return(nil).
		Once()

	rec := f.do(http.MethodDelete, "/api/v1/users/"+target.String(), "", admin)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.deleteUser.AssertExpectations(t)
}

func TestLogin_RateLimitedPerAddress(t *testing.T) {
	f := newFixture(t)
	f.login.On("Handle", mock.Anything, mock.Anything).
		Return(commands.LoginResult{}, errs.NewUnauthorizedError("invalid credentials"))

	body := `{"account":"admin","password":"wrong"}`
	first := f.do(http.MethodPost, "/api/v1/auth/login", body, "")
	second := f.do(http.MethodPost, "/api/v1/auth/login", body, "")
	third := f.do(http.MethodPost, "/api/v1/auth/login", body, "")

	assert.Equal(t, http.StatusUnauthorized, first.Code)
	assert.Equal(t, http.StatusUnauthorized, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	f.login.AssertNumberOfCalls(t, "Handle", 2)
}

func TestGetBoxLabels_RendersPDF(t *testing.T) {
	f := newFixture(t)
	token, _ := f.token(t, "user")
	shipmentNo := "001LOYW3V280123Z"
	f.getBoxByNo.On("Handle", mock.Anything, mock.Anything).
		Return(queries.BoxView{BoxItem: queries.BoxItem{
			BoxNo:        "B001202500001",
			Code:         "001",
			ShipmentNo:   &shipmentNo,
			ProductCount: 3,
		}}, nil).
		Twice()

	rec := f.do(http.MethodGet, "/api/v1/boxes/labels?boxNo=B001202500001&boxNo=B001202500002", "", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
	f.getBoxByNo.AssertExpectations(t)
}

func TestGetBoxLabels_RequiresBoxNumbers(t *testing.T) {
	f := newFixture(t)
	token, _ := f.token(t, "user")

	rec := f.do(http.MethodGet, "/api/v1/boxes/labels", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenAPIDocument_IsValid(t *testing.T) {
	spec, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, spec.Validate(t.Context()))
	assert.NotNil(t, spec.Paths.Value("/boxes/{boxNo}/rfids/{rfid}"))
}

func TestSwagger_ServesEmbeddedDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/swagger/doc.json", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/shipments/{shipmentNo}/boxes/{boxNo}"`)
	assert.Contains(t, rec.Body.String(), `"bearerAuth"`)
}

func TestGetBoxes_RejectsStatusOutsideDocument(t *testing.T) {
	f := newFixture(t)
	token, _ := f.token(t, "user")

	rec := f.do(http.MethodGet, "/api/v1/boxes?status=SHIPPED", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "status")
	f.getBoxes.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetBoxes_PassesDocumentedFilters(t *testing.T) {
	f := newFixture(t)
	token, _ := f.token(t, "user")
	expected, err := queries.NewGetBoxesQuery(2, 5, "", "PACKED")
	require.NoError(t, err)
	f.getBoxes.
		On("Handle", mock.Anything, expected).
		Return(queries.PageResult[queries.BoxItem]{Items: []queries.BoxItem{}, Page: 2, Limit: 5}, nil).
		Once()

	rec := f.do(http.MethodGet, "/api/v1/boxes?page=2&limit=5&status=PACKED", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.getBoxes.AssertExpectations(t)
}

func TestAdminScope_AppliesToEveryAdminOperation(t *testing.T) {
	f := newFixture(t)
	supplier, _ := f.token(t, "supplier")
	target := kernel.NewUUID().String()

	deleted := f.do(http.MethodDelete, "/api/v1/users/"+target, "", supplier)
	logs := f.do(http.MethodGet, "/api/v1/logs/summary", "", supplier)

	assert.Equal(t, http.StatusForbidden, deleted.Code)
	assert.Equal(t, http.StatusForbidden, logs.Code)
	assert.Equal(t, http.StatusForbidden, decodeError(t, deleted).Code)
	f.deleteUser.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
