package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/attendance"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecordRepo struct {
	records map[string]attendance.Record
	updated *attendance.Record
}

func (s *stubRecordRepo) Create(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	r.CreatedAt = time.Date(2024, time.November, 4, 8, 0, 0, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	return r, nil
}

func (s *stubRecordRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	record, ok := s.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubRecordRepo) Update(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	s.updated = &r
	r.UpdatedAt = time.Date(2024, time.November, 5, 9, 0, 0, 0, time.UTC)
	return r, nil
}

func (s *stubRecordRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Record, error) {
	var records []attendance.Record
	for _, record := range s.records {
		records = append(records, record)
	}
	return records, nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context, search string, limit, offset int) ([]employee.Employee, int, error) {
	return nil, 0, nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newTestService(records map[string]attendance.Record) (attendance.RecordService, *stubRecordRepo) {
	repo := &stubRecordRepo{records: records}
	svc := NewRecordService(repo, &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FirstName: "Jane", LastName: "Cruz"},
	}})
	return svc, repo
}

func TestRecordClockLog(t *testing.T) {
	svc, _ := newTestService(nil)

	result, err := svc.RecordClockLog(context.Background(), attendance.CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2024-11-04",
		TimeIn:     strPtr("08:00"),
		TimeOut:    strPtr("17:00"),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "2024-11-04", result.Date)
	require.NotNil(t, result.TimeIn)
	assert.Equal(t, "08:00:00", *result.TimeIn)
	require.NotNil(t, result.TimeOut)
	assert.Equal(t, "17:00:00", *result.TimeOut)
}

func TestRecordClockLogValidation(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.RecordClockLog(context.Background(), attendance.CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2024-11-04",
		TimeIn:     strPtr("9:30"),
		Status:     attendance.StatusPresent,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "time_in")
}

func TestAmendClockLog(t *testing.T) {
	logDate := time.Date(2024, time.November, 4, 0, 0, 0, 0, time.UTC)
	svc, repo := newTestService(map[string]attendance.Record{
		"log-1": {
			ID:         "log-1",
			EmployeeID: "emp-1",
			Date:       logDate,
			TimeIn:     timePtr(time.Date(2024, time.November, 4, 8, 0, 0, 0, time.UTC)),
			Status:     attendance.StatusPresent,
		},
	})

	result, err := svc.AmendClockLog(context.Background(), attendance.UpdateRecordRequest{
		ID:      "log-1",
		TimeOut: strPtr("17:30"),
		Status:  strPtr(attendance.StatusLate),
	})
	require.NoError(t, err)

	// The response reflects the row the repository returned, not the input.
	require.NotNil(t, repo.updated)
	assert.Equal(t, attendance.StatusLate, repo.updated.Status)
	assert.Equal(t, attendance.StatusLate, result.Status)
	require.NotNil(t, result.TimeOut)
	assert.Equal(t, "17:30:00", *result.TimeOut)
	require.NotNil(t, result.TimeIn)
	assert.Equal(t, "08:00:00", *result.TimeIn)
	assert.Equal(t, "2024-11-05T09:00:00Z", result.UpdatedAt)
}

func TestAmendClockLogNotFound(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.AmendClockLog(context.Background(), attendance.UpdateRecordRequest{
		ID:     "missing",
		Status: strPtr(attendance.StatusLate),
	})

	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
