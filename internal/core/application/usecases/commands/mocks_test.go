package commands_test

import (
	"context"
	"testing"
	"time"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"
	"rfidship/internal/core/domain/model/shipment"
	"rfidship/internal/core/domain/model/systemlog"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByAccount(ctx context.Context, account string) (*user.User, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByCode(ctx context.Context, code kernel.UserCode) (*user.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductRfidRepository struct{ mock.Mock }

func (m *MockProductRfidRepository) Add(ctx context.Context, p *productrfid.ProductRfid) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRfidRepository) Update(ctx context.Context, p *productrfid.ProductRfid) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRfidRepository) Get(ctx context.Context, tag kernel.RfidTag) (*productrfid.ProductRfid, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productrfid.ProductRfid), args.Error(1)
}

func (m *MockProductRfidRepository) Exists(ctx context.Context, tag kernel.RfidTag) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRfidRepository) GetBySkuAndSerial(
	ctx context.Context,
	sku kernel.SKU,
	serial kernel.SerialNumber,
) (*productrfid.ProductRfid, error) {
	args := m.Called(ctx, sku, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productrfid.ProductRfid), args.Error(1)
}

func (m *MockProductRfidRepository) ListByBox(
	ctx context.Context,
	boxNo kernel.BoxNumber,
) ([]*productrfid.ProductRfid, error) {
	args := m.Called(ctx, boxNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productrfid.ProductRfid), args.Error(1)
}

func (m *MockProductRfidRepository) Delete(ctx context.Context, tag kernel.RfidTag) error {
	return m.Called(ctx, tag).Error(0)
}

type MockBoxRepository struct{ mock.Mock }

func (m *MockBoxRepository) Add(ctx context.Context, b *box.Box) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBoxRepository) AddBatch(ctx context.Context, boxes []*box.Box) error {
	return m.Called(ctx, boxes).Error(0)
}

func (m *MockBoxRepository) Update(ctx context.Context, b *box.Box) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBoxRepository) Get(ctx context.Context, boxNo kernel.BoxNumber) (*box.Box, error) {
	args := m.Called(ctx, boxNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*box.Box), args.Error(1)
}

func (m *MockBoxRepository) Exists(ctx context.Context, boxNo kernel.BoxNumber) (bool, error) {
	args := m.Called(ctx, boxNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoxRepository) GetLatestByPrefix(ctx context.Context, prefix string) (kernel.BoxNumber, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(kernel.BoxNumber), args.Error(1)
}

func (m *MockBoxRepository) Delete(ctx context.Context, boxNo kernel.BoxNumber) error {
	return m.Called(ctx, boxNo).Error(0)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(
	ctx context.Context,
	shipmentNo kernel.ShipmentNumber,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, shipmentNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Exists(ctx context.Context, shipmentNo kernel.ShipmentNumber) (bool, error) {
	args := m.Called(ctx, shipmentNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, shipmentNo kernel.ShipmentNumber) error {
	return m.Called(ctx, shipmentNo).Error(0)
}

type MockSystemLogRepository struct{ mock.Mock }

func (m *MockSystemLogRepository) Add(ctx context.Context, entry *systemlog.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

// MockUoW satisfies every narrow unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ProductRfidRepository() ports.ProductRfidRepository {
	return m.Called().Get(0).(ports.ProductRfidRepository)
}

func (m *MockUoW) BoxRepository() ports.BoxRepository {
	return m.Called().Get(0).(ports.BoxRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) SystemLogRepository() ports.SystemLogRepository {
	return m.Called().Get(0).(ports.SystemLogRepository)
}

type MockRfidUoWFactory struct{ mock.Mock }

func (m *MockRfidUoWFactory) Create() commands.RfidUoW {
	return m.Called().Get(0).(commands.RfidUoW)
}

type MockBoxUoWFactory struct{ mock.Mock }

func (m *MockBoxUoWFactory) Create() commands.BoxUoW {
	return m.Called().Get(0).(commands.BoxUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	return m.Called().Get(0).(commands.ShipmentUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(plain, hash string) bool {
	return m.Called(plain, hash).Bool(0)
}

func (m *MockPasswordHasher) ValidateStrength(plain string) []string {
	args := m.Called(plain)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) IssuePair(subject ports.TokenSubject) (ports.TokenPair, error) {
	args := m.Called(subject)
	return args.Get(0).(ports.TokenPair), args.Error(1)
}

func (m *MockTokenIssuer) ParseAccess(token string) (ports.TokenSubject, error) {
	args := m.Called(token)
	return args.Get(0).(ports.TokenSubject), args.Error(1)
}

func (m *MockTokenIssuer) ParseRefresh(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

// repos groups the repository mocks handed out by one MockUoW.
type repos struct {
	users     *MockUserRepository
	rfids     *MockProductRfidRepository
	boxes     *MockBoxRepository
	shipments *MockShipmentRepository
	logs      *MockSystemLogRepository
}

// newRepos wires fresh repository mocks into uow. Getter calls and the
// deferred rollback are optional; tests assert the calls that matter.
func newRepos(uow *MockUoW) repos {
	r := repos{
		users:     new(MockUserRepository),
		rfids:     new(MockProductRfidRepository),
		boxes:     new(MockBoxRepository),
		shipments: new(MockShipmentRepository),
		logs:      new(MockSystemLogRepository),
	}
	uow.On("UserRepository").Return(r.users).Maybe()
	uow.On("ProductRfidRepository").Return(r.rfids).Maybe()
	uow.On("BoxRepository").Return(r.boxes).Maybe()
	uow.On("ShipmentRepository").Return(r.shipments).Maybe()
	uow.On("SystemLogRepository").Return(r.logs).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return r
}

func (r repos) assertExpectations(t *testing.T) {
	t.Helper()
	r.users.AssertExpectations(t)
	r.rfids.AssertExpectations(t)
	r.boxes.AssertExpectations(t)
	r.shipments.AssertExpectations(t)
	r.logs.AssertExpectations(t)
}

// expectAudit matches one audit entry with the given action.
func (r repos) expectAudit(ctx context.Context, action services.Action) *mock.Call {
	return r.logs.On("Add", ctx, mock.MatchedBy(func(e *systemlog.Entry) bool {
		return e.Action() == string(action)
	})).Return(nil)
}

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testOpts() []services.Option {
	return []services.Option{services.WithClock(fixedClock)}
}

func mustUser(t *testing.T, code string, userType user.Type) *user.User {
	t.Helper()
	userCode, err := kernel.NewUserCode(code)
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewUUID(), "acct"+code, "hash", userCode, "User "+code, userType,
		user.WithClock(fixedClock))
	require.NoError(t, err)
	return u
}

func mustActor(t *testing.T, u *user.User) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(u.ID().String(), "10.0.0.1")
	require.NoError(t, err)
	return actor
}

func mustUnit(t *testing.T, sku string, serial int) *productrfid.ProductRfid {
	t.Helper()
	parsedSKU, err := kernel.NewSKU(sku)
	require.NoError(t, err)
	parsedSerial, err := kernel.NewSerialNumberFromInt(serial)
	require.NoError(t, err)
	tag, err := services.ConcatenationDerivation{}.Derive(parsedSKU, parsedSKU.ProductNumber(), parsedSerial)
	require.NoError(t, err)
	p, err := productrfid.NewProductRfid(tag, parsedSKU, parsedSKU.ProductNumber(), parsedSerial,
		kernel.NewUUID(), fixedNow)
	require.NoError(t, err)
	return p
}

func mustBox(t *testing.T, code string, serial int) *box.Box {
	t.Helper()
	userCode, err := kernel.NewUserCode(code)
	require.NoError(t, err)
	boxNo, err := kernel.NewBoxNumberFromParts(kernel.BoxNumberPrefix(userCode, fixedNow.Year()), serial)
	require.NoError(t, err)
	b, err := box.NewBox(boxNo, userCode, kernel.NewUUID(), fixedNow, box.WithClock(fixedClock))
	require.NoError(t, err)
	return b
}

func mustPackedBox(t *testing.T, code string, serial int, units ...*productrfid.ProductRfid) *box.Box {
	t.Helper()
	b := mustBox(t, code, serial)
	for _, u := range units {
		require.NoError(t, b.AddProductRfid(u))
	}
	return b
}

func mustShipment(t *testing.T, raw string) *shipment.Shipment {
	t.Helper()
	no, err := kernel.NewShipmentNumber(raw)
	require.NoError(t, err)
	code, err := kernel.NewUserCode(raw[:3])
	require.NoError(t, err)
	s, err := shipment.NewShipment(no, code, kernel.NewUUID(), "", fixedNow, shipment.WithClock(fixedClock))
	require.NoError(t, err)
	return s
}

const testSKU = "A252600201234"

type fixedRandom struct{ value int }

func (r fixedRandom) IntN(n int) int { return r.value % n }

func ptr[T any](v T) *T { return &v }

var testPair = ports.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: time.Hour}
