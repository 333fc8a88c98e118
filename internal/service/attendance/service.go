package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/attendance"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

type recordService struct {
	attendanceRepo attendance.RecordRepository
	employeeRepo   employee.EmployeeRepository
}

func NewRecordService(
	attendanceRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.RecordService {
	return &recordService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// RecordClockLog implements attendance.RecordService.
func (s *recordService) RecordClockLog(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	record := attendance.Record{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		TimeIn:     clockOnDate(date, req.TimeIn),
		TimeOut:    clockOnDate(date, req.TimeOut),
		Status:     req.Status,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(created), nil
}

// AmendClockLog implements attendance.RecordService.
func (s *recordService) AmendClockLog(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.TimeIn != nil {
		record.TimeIn = clockOnDate(record.Date, req.TimeIn)
	}
	if req.TimeOut != nil {
		record.TimeOut = clockOnDate(record.Date, req.TimeOut)
	}
	if req.Status != nil {
		record.Status = *req.Status
	}

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(updated), nil
}

// ListClockLogs implements attendance.RecordService.
func (s *recordService) ListClockLogs(ctx context.Context, req attendance.ListRecordsRequest) (attendance.ListRecordsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, req.EmployeeID, req.Year, time.Month(req.Month))
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toRecordResponse(record))
	}

	return attendance.ListRecordsResponse{
		TotalCount: len(responses),
		Records:    responses,
	}, nil
}

// clockOnDate anchors an HH:MM[:SS] wall-clock string to the log's date.
// Overnight shifts keep the clock-out on the same date; duration math rolls
// it over midnight.
func clockOnDate(date time.Time, clock *string) *time.Time {
	if clock == nil || *clock == "" {
		return nil
	}
	t, ok := validator.IsValidTimeOfDay(*clock)
	if !ok {
		return nil
	}
	anchored := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return &anchored
}

func toRecordResponse(record attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date.Format(time.DateOnly),
		Status:     record.Status,
		CreatedAt:  record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  record.UpdatedAt.Format(time.RFC3339),
	}

	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	if record.TimeIn != nil {
		formatted := record.TimeIn.Format("15:04:05")
		resp.TimeIn = &formatted
	}
	if record.TimeOut != nil {
		formatted := record.TimeOut.Format("15:04:05")
		resp.TimeOut = &formatted
	}

	return resp
}
