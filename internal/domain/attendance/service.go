package attendance

import (
	"context"
)

// RecordService defines business logic for raw clock logs
type RecordService interface {
	// RecordClockLog stores a clock event delivered by the time-clock subsystem
	RecordClockLog(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// AmendClockLog fixes an existing clock log (supervisor correction)
	AmendClockLog(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)

	// ListClockLogs retrieves one employee's clock logs for a month
	ListClockLogs(ctx context.Context, req ListRecordsRequest) (ListRecordsResponse, error)
}
