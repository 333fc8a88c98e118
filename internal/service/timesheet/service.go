package timesheet

import (
	"context"
	"log/slog"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/attendance"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/leave"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/timesheet"
)

type timesheetService struct {
	attendanceRepo attendance.RecordRepository
	holidayRepo    holiday.HolidayRepository
	leaveRepo      leave.RequestRepository
	employeeRepo   employee.EmployeeRepository
	reconciler     *Reconciler
	nowFn          func() time.Time
}

func NewTimesheetService(
	attendanceRepo attendance.RecordRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.RequestRepository,
	employeeRepo employee.EmployeeRepository,
	reconciler *Reconciler,
) timesheet.TimesheetService {
	return &timesheetService{
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		reconciler:     reconciler,
		nowFn:          time.Now,
	}
}

// GetMonthlyTimesheet implements timesheet.TimesheetService.
func (s *timesheetService) GetMonthlyTimesheet(ctx context.Context, req timesheet.MonthlyTimesheetRequest) (timesheet.MonthlyTimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.MonthlyTimesheetResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			return timesheet.MonthlyTimesheetResponse{}, timesheet.ErrEmployeeNotFound
		}
		return timesheet.MonthlyTimesheetResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeAndMonth(ctx, req.EmployeeID, req.Year, time.Month(req.Month))
	if err != nil {
		return timesheet.MonthlyTimesheetResponse{}, err
	}

	holidays, err := s.holidayRepo.ListByMonth(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return timesheet.MonthlyTimesheetResponse{}, err
	}

	leaves, err := s.leaveRepo.ListApprovedIntervals(ctx, req.EmployeeID, req.Year, time.Month(req.Month))
	if err != nil {
		return timesheet.MonthlyTimesheetResponse{}, err
	}

	LogLeaveOverlaps(slog.Default(), req.EmployeeID, DetectLeaveOverlaps(leaves))

	entries, summary, err := s.reconciler.Reconcile(
		emp.ID, emp.FullName(),
		req.Year, req.Month,
		records, holidays, leaves,
		s.nowFn(),
	)
	if err != nil {
		return timesheet.MonthlyTimesheetResponse{}, err
	}

	return buildResponse(emp, req.Month, req.Year, entries, summary), nil
}

func buildResponse(emp employee.Employee, month, year int, entries []timesheet.DayEntry, summary timesheet.Summary) timesheet.MonthlyTimesheetResponse {
	days := make([]timesheet.DayEntryResponse, 0, len(entries))
	for _, entry := range entries {
		days = append(days, timesheet.DayEntryResponse{
			Date:       entry.Date.Format(time.DateOnly),
			DayOfWeek:  entry.Date.Weekday().String(),
			TimeIn:     formatClock(entry.TimeIn),
			TimeOut:    formatClock(entry.TimeOut),
			Status:     entry.StatusLabel(),
			TotalHours: entry.TotalHours,
		})
	}

	return timesheet.MonthlyTimesheetResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Month:        month,
		Year:         year,
		Days:         days,
		Summary: timesheet.SummaryResponse{
			TotalWorkDays:         summary.TotalWorkDays,
			PresentDays:           summary.PresentDays,
			LateDays:              summary.LateDays,
			AbsentDays:            summary.AbsentDays,
			LeaveDays:             summary.LeaveDays,
			HolidayDays:           summary.HolidayDays,
			DayOffDays:            summary.DayOffDays,
			AttendanceRatePercent: summary.AttendanceRatePercent,
			TotalWorkedHours:      summary.TotalWorkedHours,
			TotalWorkedMinutes:    summary.TotalWorkedMinutes,
		},
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}
