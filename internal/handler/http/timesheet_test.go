package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTimesheetService struct {
	lastRequest timesheet.MonthlyTimesheetRequest
	result      timesheet.MonthlyTimesheetResponse
	err         error
}

func (s *stubTimesheetService) GetMonthlyTimesheet(ctx context.Context, req timesheet.MonthlyTimesheetRequest) (timesheet.MonthlyTimesheetResponse, error) {
	s.lastRequest = req
	if s.err != nil {
		return timesheet.MonthlyTimesheetResponse{}, s.err
	}
	return s.result, nil
}

func newTimesheetRouter(svc timesheet.TimesheetService) *chi.Mux {
	r := chi.NewRouter()
	handler := NewTimesheetHandler(svc)
	r.Get("/timesheets/{employeeID}", handler.GetMonthly)
	return r
}

func TestTimesheetHandlerGetMonthly(t *testing.T) {
	svc := &stubTimesheetService{
		result: timesheet.MonthlyTimesheetResponse{
			EmployeeID:   "emp-1",
			EmployeeName: "Jane Cruz",
			Month:        11,
			Year:         2024,
		},
	}
	router := newTimesheetRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/timesheets/emp-1?month=11&year=2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", svc.lastRequest.EmployeeID)
	assert.Equal(t, 11, svc.lastRequest.Month)
	assert.Equal(t, 2024, svc.lastRequest.Year)

	var body struct {
		Success bool                               `json:"success"`
		Data    timesheet.MonthlyTimesheetResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Jane Cruz", body.Data.EmployeeName)
}

func TestTimesheetHandlerBadMonth(t *testing.T) {
	router := newTimesheetRouter(&stubTimesheetService{})

	req := httptest.NewRequest(http.MethodGet, "/timesheets/emp-1?month=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTimesheetHandlerEmployeeNotFound(t *testing.T) {
	router := newTimesheetRouter(&stubTimesheetService{err: timesheet.ErrEmployeeNotFound})

	req := httptest.NewRequest(http.MethodGet, "/timesheets/missing?month=11&year=2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
