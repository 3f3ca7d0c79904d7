package queries_test

import (
	"context"
	"testing"
	"time"

	"rfidship/internal/adapters/out/postgres/boxrepo"
	"rfidship/internal/adapters/out/postgres/pgtest"
	"rfidship/internal/adapters/out/postgres/productrfidrepo"
	"rfidship/internal/adapters/out/postgres/shipmentrepo"
	"rfidship/internal/adapters/out/postgres/systemlogrepo"
	"rfidship/internal/adapters/out/postgres/userrepo"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"
	"rfidship/internal/core/domain/model/shipment"
	"rfidship/internal/core/domain/model/systemlog"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var seededAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

const testSKU = "A252600201234"

// ReadModelsIntegrationTestSuite seeds one shipped shipment holding box
// B001202500001, an open box B001202500002 with one unit, and one unit that
// is not packed.
type ReadModelsIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	admin    *user.User
	supplier *user.User
}

func (suite *ReadModelsIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ReadModelsIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ReadModelsIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	ctx := suite.T().Context()
	db := suite.database.DB

	users := userrepo.NewGormUserRepository(db)
	suite.admin = suite.newUser("admin", "001", user.Admin)
	suite.supplier = suite.newUser("supplier", "002", user.Supplier)
	suite.Require().NoError(users.Add(ctx, suite.admin))
	suite.Require().NoError(users.Add(ctx, suite.supplier))

	units := productrfidrepo.NewGormProductRfidRepository(db, nil)
	boxes := boxrepo.NewGormBoxRepository(db)
	shipments := shipmentrepo.NewGormShipmentRepository(db, nil, nil)

	shippedBox := suite.newBox("B001202500001", time.Minute)
	openBox := suite.newBox("B001202500002", 2*time.Minute)
	suite.Require().NoError(boxes.AddBatch(ctx, []*box.Box{shippedBox, openBox}))

	for serial, target := range map[string]*box.Box{"0001": shippedBox, "0002": shippedBox, "0003": openBox, "0004": nil} {
		unit := suite.newUnit(serial)
		suite.Require().NoError(units.Add(ctx, unit))
		if target == nil {
			continue
		}
		suite.Require().NoError(target.AddProductRfid(unit))
		suite.Require().NoError(units.Update(ctx, unit))
	}

	shipmentNo, _ := kernel.NewShipmentNumber("001LOYW3V280123Z")
	s, err := shipment.NewShipment(shipmentNo, suite.admin.Code(), suite.admin.ID(), "fragile", seededAt)
	suite.Require().NoError(err)
	suite.Require().NoError(shipments.Add(ctx, s))
	suite.Require().NoError(s.AddBox(shippedBox))
	suite.Require().NoError(boxes.Update(ctx, shippedBox))
	suite.Require().NoError(s.Ship())
	suite.Require().NoError(shipments.Update(ctx, s))

	logs := systemlogrepo.NewGormSystemLogRepository(db)
	for i, action := range []string{"CREATE_BOX", "CREATE_BOX", "SHIP_SHIPMENT"} {
		entry, entryErr := systemlog.NewEntry(suite.admin.ID(), action, seededAt.Add(time.Duration(i)*time.Second),
			systemlog.WithTarget("box", "B001202500001"),
		)
		suite.Require().NoError(entryErr)
		suite.Require().NoError(logs.Add(ctx, entry))
	}
	entry, err := systemlog.NewEntry(suite.supplier.ID(), "LOGIN_SUCCESS", seededAt.Add(time.Hour),
		systemlog.WithIPAddress("10.0.0.7"),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(logs.Add(ctx, entry))
}

func (suite *ReadModelsIntegrationTestSuite) TestGetBoxes_FiltersByStatus() {
	handler := queries.NewGetBoxesQueryHandler(suite.database.DB)

	query, err := queries.NewGetBoxesQuery(1, 10, "", "")
	suite.Require().NoError(err)
	all, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), all.Total)
	suite.Equal(1, all.TotalPages)

	query, err = queries.NewGetBoxesQuery(1, 10, "", "CREATED")
	suite.Require().NoError(err)
	open, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Require().Len(open.Items, 1)
	suite.Equal("B001202500002", open.Items[0].BoxNo)
	suite.Equal("CREATED", open.Items[0].Status)
	suite.Equal(1, open.Items[0].ProductCount)

	query, err = queries.NewGetBoxesQuery(1, 10, "001LOYW3V280123Z", "")
	suite.Require().NoError(err)
	packed, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Require().Len(packed.Items, 1)
	suite.Equal("PACKED", packed.Items[0].Status)
	suite.Equal(2, packed.Items[0].ProductCount)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetBoxes_PageBeyondEndIsEmpty() {
	query, err := queries.NewGetBoxesQuery(3, 1, "", "")
	suite.Require().NoError(err)

	page, err := queries.NewGetBoxesQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.NotNil(page.Items)
	suite.Empty(page.Items)
	suite.Equal(2, page.TotalPages)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetBoxByNo() {
	handler := queries.NewGetBoxByNoQueryHandler(suite.database.DB)

	query, err := queries.NewGetBoxByNoQuery("B001202500001")
	suite.Require().NoError(err)
	view, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal("PACKED", view.Status)
	suite.Require().Len(view.ProductRfids, 2)
	suite.Equal(queries.RfidStatusShipped, view.ProductRfids[0].Status)

	query, err = queries.NewGetBoxByNoQuery("B001202500099")
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetShipment() {
	handler := queries.NewGetShipmentQueryHandler(suite.database.DB)

	query, err := queries.NewGetShipmentQuery("001LOYW3V280123Z")
	suite.Require().NoError(err)
	view, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal("SHIPPED", view.Status)
	suite.Equal("fragile", view.Note)
	suite.Equal(1, view.BoxCount)
	suite.Equal(2, view.TotalProducts)

	query, err = queries.NewGetShipmentQuery("001LOYW3V2801240")
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelsIntegrationTestSuite) TestQueryProductRfids_DerivesStatus() {
	handler := queries.NewQueryProductRfidsQueryHandler(suite.database.DB)

	tests := map[string]int64{
		queries.RfidStatusAvailable: 1,
		queries.RfidStatusBound:     1,
		queries.RfidStatusShipped:   2,
		"":                          4,
	}
	for status, expected := range tests {
		query, err := queries.NewQueryProductRfidsQuery(testSKU, "", status, 1, 0)
		suite.Require().NoError(err)

		page, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Equal(expected, page.Total, status)
		suite.Equal(queries.DefaultPageLimit, page.Limit)
		for _, item := range page.Items {
			if status != "" {
				suite.Equal(status, item.Status)
			}
		}
	}
}

func (suite *ReadModelsIntegrationTestSuite) TestGetUsers_FiltersByType() {
	query, err := queries.NewGetUsersQuery(1, 20, "supplier", "")
	suite.Require().NoError(err)

	page, err := queries.NewGetUsersQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("supplier", page.Items[0].Account)
	suite.Equal("002", page.Items[0].Code)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetUserByUUID_SupplierSeesOnlySelf() {
	handler := queries.NewGetUserByUUIDQueryHandler(suite.database.DB)

	query, err := queries.NewGetUserByUUIDQuery(suite.admin.ID().String(), suite.supplier.ID().String())
	suite.Require().NoError(err)
	_, err = handler.Handle(suite.T().Context(), query)
	suite.Require().ErrorIs(err, errs.ErrForbidden)

	query, err = queries.NewGetUserByUUIDQuery(suite.supplier.ID().String(), suite.supplier.ID().String())
	suite.Require().NoError(err)
	self, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal("supplier", self.Account)

	query, err = queries.NewGetUserByUUIDQuery(suite.supplier.ID().String(), suite.admin.ID().String())
	suite.Require().NoError(err)
	other, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal(suite.supplier.ID().String(), other.UUID)
}

func (suite *ReadModelsIntegrationTestSuite) TestQueryLogs_FiltersAndJoinsUserName() {
	handler := queries.NewQueryLogsQueryHandler(suite.database.DB)

	query, err := queries.NewQueryLogsQuery(queries.LogFilter{Action: "CREATE_BOX"}, 1, 0)
	suite.Require().NoError(err)
	page, err := handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), page.Total)
	suite.Equal(queries.DefaultLogPageLimit, page.Limit)
	suite.Require().NotNil(page.Items[0].UserName)
	suite.Equal(suite.admin.Name(), *page.Items[0].UserName)

	from := seededAt.Add(30 * time.Minute)
	query, err = queries.NewQueryLogsQuery(queries.LogFilter{From: &from}, 1, 10)
	suite.Require().NoError(err)
	page, err = handler.Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("LOGIN_SUCCESS", page.Items[0].Action)
	suite.Require().NotNil(page.Items[0].IPAddress)
	suite.Equal("10.0.0.7", *page.Items[0].IPAddress)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetLogSummary() {
	summary, err := queries.NewGetLogSummaryQueryHandler(suite.database.DB).
		Handle(suite.T().Context(), queries.NewGetLogSummaryQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(4), summary.TotalLogs)
	suite.Equal(int64(2), summary.UniqueUsers)
	suite.Equal(queries.ActionCount{Action: "CREATE_BOX", Count: 2}, summary.MostCommonActions[0])
	suite.Len(summary.MostCommonActions, 3)
	suite.Require().Len(summary.RecentActivity, 4)
	suite.Equal("LOGIN_SUCCESS", summary.RecentActivity[0].Action)
}

func (suite *ReadModelsIntegrationTestSuite) newUser(account, rawCode string, userType user.Type) *user.User {
	code, err := kernel.NewUserCode(rawCode)
	suite.Require().NoError(err)
	u, err := user.NewUser(kernel.NewUUID(), account, "$2a$10$hash", code, "Operator "+rawCode, userType,
		user.WithClock(func() time.Time { return seededAt }),
	)
	suite.Require().NoError(err)
	return u
}

func (suite *ReadModelsIntegrationTestSuite) newBox(raw string, offset time.Duration) *box.Box {
	boxNo, err := kernel.NewBoxNumber(raw)
	suite.Require().NoError(err)
	b, err := box.NewBox(boxNo, suite.admin.Code(), suite.admin.ID(), seededAt.Add(offset),
		box.WithClock(func() time.Time { return seededAt.Add(offset) }),
	)
	suite.Require().NoError(err)
	return b
}

func (suite *ReadModelsIntegrationTestSuite) newUnit(rawSerial string) *productrfid.ProductRfid {
	sku, _ := kernel.NewSKU(testSKU)
	serial, _ := kernel.NewSerialNumber(rawSerial)
	tag, _ := kernel.NewRfidTag(testSKU + rawSerial)
	unit, err := productrfid.NewProductRfid(tag, sku, sku.ProductNumber(), serial, suite.admin.ID(), seededAt)
	suite.Require().NoError(err)
	return unit
}

func TestReadModelsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelsIntegrationTestSuite))
}
