package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/timesheet"
	"github.com/hr2-portal/hr2-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// GetMonthly implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	req := timesheet.MonthlyTimesheetRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      int(now.Month()),
		Year:       now.Year(),
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		req.Month = month
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}

	result, err := h.timesheetService.GetMonthlyTimesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
