package services_test

import (
	"context"
	"testing"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/systemlog"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRfidLookup struct{ mock.Mock }

func (m *MockRfidLookup) Exists(ctx context.Context, tag kernel.RfidTag) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

type MockBoxSequence struct{ mock.Mock }

func (m *MockBoxSequence) GetLatestByPrefix(ctx context.Context, prefix string) (kernel.BoxNumber, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(kernel.BoxNumber), args.Error(1)
}

type MockShipmentLookup struct{ mock.Mock }

func (m *MockShipmentLookup) Exists(ctx context.Context, shipmentNo kernel.ShipmentNumber) (bool, error) {
	args := m.Called(ctx, shipmentNo)
	return args.Bool(0), args.Error(1)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Add(ctx context.Context, entry *systemlog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// sequenceRandom replays values in order, wrapping around.
type sequenceRandom struct {
	values []int
	next   int
}

func (s *sequenceRandom) IntN(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func mustSKU(t *testing.T, raw string) kernel.SKU {
	t.Helper()
	sku, err := kernel.NewSKU(raw)
	require.NoError(t, err)
	return sku
}

func mustSerial(t *testing.T, n int) kernel.SerialNumber {
	t.Helper()
	serial, err := kernel.NewSerialNumberFromInt(n)
	require.NoError(t, err)
	return serial
}

func mustCode(t *testing.T, raw string) kernel.UserCode {
	t.Helper()
	code, err := kernel.NewUserCode(raw)
	require.NoError(t, err)
	return code
}
