package boxrepo_test

import (
	"context"
	"testing"
	"time"

	"rfidship/internal/adapters/out/postgres/boxrepo"
	"rfidship/internal/adapters/out/postgres/pgtest"
	"rfidship/internal/adapters/out/postgres/productrfidrepo"
	"rfidship/internal/adapters/out/postgres/shipmentrepo"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"
	"rfidship/internal/core/domain/model/shipment"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var createdAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type BoxRepositoryIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	repo     *boxrepo.GormBoxRepository
	units    *productrfidrepo.GormProductRfidRepository
	actor    kernel.UUID
}

func (suite *BoxRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *BoxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repo = boxrepo.NewGormBoxRepository(suite.database.DB)
	suite.units = productrfidrepo.NewGormProductRfidRepository(suite.database.DB, nil)
	suite.actor = kernel.NewUUID()
}

func (suite *BoxRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *BoxRepositoryIntegrationTestSuite) TestAddAndGet_EmptyBox() {
	ctx := suite.T().Context()
	b := suite.newBox("B001202500001")

	suite.Require().NoError(suite.repo.Add(ctx, b))

	loaded, err := suite.repo.Get(ctx, b.BoxNo())
	suite.Require().NoError(err)
	suite.True(b.IsEqual(loaded))
	suite.Equal("001", loaded.Code().String())
	suite.True(suite.actor.IsEqual(loaded.CreatedBy()))
	suite.WithinDuration(createdAt, loaded.CreatedAt(), 0)
	suite.True(loaded.IsEmpty())
	suite.Nil(loaded.ShipmentNo())
	suite.Equal(box.StatusCreated, loaded.PackingStatus())
}

func (suite *BoxRepositoryIntegrationTestSuite) TestGet_LoadsPackedUnits() {
	ctx := suite.T().Context()
	b := suite.newBox("B001202500001")
	suite.Require().NoError(suite.repo.Add(ctx, b))

	for _, serial := range []string{"0001", "0002"} {
		unit := suite.newUnit(serial)
		suite.Require().NoError(suite.units.Add(ctx, unit))
		suite.Require().NoError(b.AddProductRfid(unit))
		suite.Require().NoError(suite.units.Update(ctx, unit))
	}
	suite.Require().NoError(suite.repo.Update(ctx, b))

	loaded, err := suite.repo.Get(ctx, b.BoxNo())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.ProductCount())
	suite.True(loaded.Contains(b.ProductRfids()[0].Rfid()))
	suite.True(loaded.Contains(b.ProductRfids()[1].Rfid()))
}

func (suite *BoxRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	boxNo, _ := kernel.NewBoxNumber("B001202500099")

	loaded, err := suite.repo.Get(suite.T().Context(), boxNo)

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BoxRepositoryIntegrationTestSuite) TestAddBatch_AndLatestByPrefix() {
	ctx := suite.T().Context()

	_, err := suite.repo.GetLatestByPrefix(ctx, "B0012025")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	boxes := []*box.Box{
		suite.newBox("B001202500001"),
		suite.newBox("B001202500002"),
		suite.newBox("B001202500010"),
	}
	suite.Require().NoError(suite.repo.AddBatch(ctx, boxes))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newBox("B001202400500")))

	latest, err := suite.repo.GetLatestByPrefix(ctx, "B0012025")
	suite.Require().NoError(err)
	suite.Equal("B001202500010", latest.String())

	exists, err := suite.repo.Exists(ctx, boxes[1].BoxNo())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *BoxRepositoryIntegrationTestSuite) TestAddBatch_DuplicateRollsBackWholeStatement() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newBox("B001202500002")))

	err := suite.repo.AddBatch(ctx, []*box.Box{
		suite.newBox("B001202500001"),
		suite.newBox("B001202500002"),
	})
	suite.Require().ErrorIs(err, errs.ErrConflict)

	exists, err := suite.repo.Exists(ctx, suite.newBox("B001202500001").BoxNo())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *BoxRepositoryIntegrationTestSuite) TestUpdate_StoresShipmentAssignment() {
	ctx := suite.T().Context()
	b := suite.newBox("B001202500001")
	suite.Require().NoError(suite.repo.Add(ctx, b))

	shipmentNo, _ := kernel.NewShipmentNumber("001LOYW3V280123Z")
	code, _ := kernel.NewUserCode("001")
	s, err := shipment.NewShipment(shipmentNo, code, suite.actor, "", createdAt)
	suite.Require().NoError(err)
	shipments := shipmentrepo.NewGormShipmentRepository(suite.database.DB, nil, nil)
	suite.Require().NoError(shipments.Add(ctx, s))

	suite.Require().NoError(b.AssignToShipment(shipmentNo))
	suite.Require().NoError(suite.repo.Update(ctx, b))

	loaded, err := suite.repo.Get(ctx, b.BoxNo())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.ShipmentNo())
	suite.Equal(shipmentNo.String(), loaded.ShipmentNo().String())
	suite.True(loaded.IsLocked())
}

func (suite *BoxRepositoryIntegrationTestSuite) TestUpdate_ConcurrentShipmentAssignment_SecondWriterConflicts() {
	ctx := suite.T().Context()
	b := suite.newBox("B001202500001")
	suite.Require().NoError(suite.repo.Add(ctx, b))

	code, _ := kernel.NewUserCode("001")
	shipments := shipmentrepo.NewGormShipmentRepository(suite.database.DB, nil, nil)
	var numbers []kernel.ShipmentNumber
	for _, raw := range []string{"001LOYW3V280123Z", "001LOYW3V280124A"} {
		shipmentNo, err := kernel.NewShipmentNumber(raw)
		suite.Require().NoError(err)
		s, err := shipment.NewShipment(shipmentNo, code, suite.actor, "", createdAt)
		suite.Require().NoError(err)
		suite.Require().NoError(shipments.Add(ctx, s))
		numbers = append(numbers, shipmentNo)
	}

	mine, err := suite.repo.Get(ctx, b.BoxNo())
	suite.Require().NoError(err)
	theirs, err := suite.repo.Get(ctx, b.BoxNo())
	suite.Require().NoError(err)

	suite.Require().NoError(mine.AssignToShipment(numbers[0]))
	suite.Require().NoError(suite.repo.Update(ctx, mine))

	suite.Require().NoError(theirs.AssignToShipment(numbers[1]))
	suite.Require().ErrorIs(suite.repo.Update(ctx, theirs), errs.ErrConflict)

	loaded, err := suite.repo.Get(ctx, b.BoxNo())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.ShipmentNo())
	suite.Equal(numbers[0].String(), loaded.ShipmentNo().String())
}

func (suite *BoxRepositoryIntegrationTestSuite) TestUpdateAndDelete_Missing_ReturnNotFound() {
	ctx := suite.T().Context()
	b := suite.newBox("B001202500001")

	suite.Require().ErrorIs(suite.repo.Update(ctx, b), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repo.Delete(ctx, b.BoxNo()), errs.ErrObjectNotFound)
}

func (suite *BoxRepositoryIntegrationTestSuite) newBox(raw string) *box.Box {
	code, err := kernel.NewUserCode("001")
	suite.Require().NoError(err)
	boxNo, err := kernel.NewBoxNumber(raw)
	suite.Require().NoError(err)
	b, err := box.NewBox(boxNo, code, suite.actor, createdAt)
	suite.Require().NoError(err)
	return b
}

func (suite *BoxRepositoryIntegrationTestSuite) newUnit(rawSerial string) *productrfid.ProductRfid {
	sku, _ := kernel.NewSKU("A252600201234")
	serial, err := kernel.NewSerialNumber(rawSerial)
	suite.Require().NoError(err)
	tag, err := kernel.NewRfidTag(sku.String() + rawSerial)
	suite.Require().NoError(err)
	unit, err := productrfid.NewProductRfid(tag, sku, sku.ProductNumber(), serial, suite.actor, createdAt)
	suite.Require().NoError(err)
	return unit
}

func TestBoxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BoxRepositoryIntegrationTestSuite))
}
