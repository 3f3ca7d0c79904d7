package ports

import (
	"context"

	"rfidship/internal/core/domain/model/systemlog"
)

// SystemLogRepository appends audit records. Add assigns the storage id to
// the entry.
type SystemLogRepository interface {
	Add(ctx context.Context, entry *systemlog.Entry) error
}
