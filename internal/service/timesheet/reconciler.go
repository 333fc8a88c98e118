package timesheet

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/attendance"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/leave"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/timesheet"
)

// Reconciler turns a month of raw calendar inputs into a day-by-day
// timesheet. It is a pure computation: all inputs, including today's date,
// arrive as arguments.
type Reconciler struct {
	restDays map[time.Weekday]bool
}

// NewReconciler builds a reconciler with the given weekly rest days.
// With no arguments Sunday is the rest day.
func NewReconciler(restDays ...time.Weekday) *Reconciler {
	days := make(map[time.Weekday]bool)
	if len(restDays) == 0 {
		days[time.Sunday] = true
	}
	for _, d := range restDays {
		days[d] = true
	}
	return &Reconciler{restDays: days}
}

// Reconcile classifies every day of the month and overlays the raw clock
// logs on top. Classification runs first for the whole month, then each log
// replaces its day's entry; a Present or Late log also moves that day out of
// the absent count.
//
// Holidays index first-wins per date. Leaves expand per day last-wins, in
// input order. Days after today stay No Record rather than Absent.
func (r *Reconciler) Reconcile(
	employeeID, employeeName string,
	year, month int,
	records []attendance.Record,
	holidays []holiday.Holiday,
	leaves []leave.Interval,
	today time.Time,
) ([]timesheet.DayEntry, timesheet.Summary, error) {
	if month < 1 || month > 12 || year < 1000 || year > 9999 {
		return nil, timesheet.Summary{}, fmt.Errorf("%w: year=%d month=%d", timesheet.ErrInvalidCalendarInput, year, month)
	}

	numberOfDays := daysInMonth(year, time.Month(month))
	todayDate := truncateToDay(today)

	holidayByDate := make(map[string]string)
	for _, h := range holidays {
		key := h.Date.Format(time.DateOnly)
		if _, exists := holidayByDate[key]; !exists {
			holidayByDate[key] = h.Description
		}
	}

	leaveByDate := make(map[string]string)
	for _, iv := range leaves {
		for d := truncateToDay(iv.StartDate); !d.After(truncateToDay(iv.EndDate)); d = d.AddDate(0, 0, 1) {
			leaveByDate[d.Format(time.DateOnly)] = iv.LeaveType
		}
	}

	var summary timesheet.Summary
	entries := make([]timesheet.DayEntry, 0, numberOfDays)
	entryIndex := make(map[string]int, numberOfDays)

	for day := 1; day <= numberOfDays; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		key := date.Format(time.DateOnly)

		entry := timesheet.DayEntry{
			Date:         date,
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			TotalHours:   "N/A",
		}

		holidayDesc, isHoliday := holidayByDate[key]
		leaveType, onLeave := leaveByDate[key]

		switch {
		case r.restDays[date.Weekday()]:
			entry.Status = timesheet.StatusDayOff
		case isHoliday:
			entry.Status = timesheet.StatusHoliday
			entry.StatusDetail = holidayDesc
			summary.HolidayDays++
		case onLeave:
			entry.Status = timesheet.StatusLeave
			entry.StatusDetail = leaveType
			summary.LeaveDays++
		default:
			summary.TotalWorkDays++
			if !date.After(todayDate) {
				entry.Status = timesheet.StatusAbsent
				summary.AbsentDays++
			} else {
				entry.Status = timesheet.StatusNoRecord
			}
		}

		entryIndex[key] = len(entries)
		entries = append(entries, entry)
	}

	// Overlay clock logs. The log replaces the classified entry outright,
	// matching how supervisors expect a recorded day to display.
	for _, record := range records {
		key := truncateToDay(record.Date).Format(time.DateOnly)
		idx, ok := entryIndex[key]
		if !ok {
			continue
		}

		switch record.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
			summary.AbsentDays--
		case attendance.StatusLate:
			summary.LateDays++
			summary.AbsentDays--
		}

		entry := &entries[idx]
		entry.TimeIn = record.TimeIn
		entry.TimeOut = record.TimeOut
		entry.Status = timesheet.Status(record.Status)
		entry.StatusDetail = ""
		entry.TotalHours = durationLabel(record.TimeIn, record.TimeOut)
	}

	for _, entry := range entries {
		if entry.TimeIn == nil || entry.TimeOut == nil {
			continue
		}
		hours, minutes := workedHoursMinutes(*entry.TimeIn, *entry.TimeOut)
		summary.TotalWorkedHours += hours
		summary.TotalWorkedMinutes += minutes
	}
	summary.TotalWorkedHours += summary.TotalWorkedMinutes / 60
	summary.TotalWorkedMinutes = summary.TotalWorkedMinutes % 60

	if summary.TotalWorkDays > 0 {
		rate := float64(summary.PresentDays+summary.LateDays) / float64(summary.TotalWorkDays) * 100
		summary.AttendanceRatePercent = int(math.Round(rate))
	}

	summary.DayOffDays = numberOfDays - summary.TotalWorkDays - summary.HolidayDays - summary.LeaveDays

	return entries, summary, nil
}

// DetectLeaveOverlaps reports pairs of intervals that claim the same day.
// Reconciliation still resolves them (the later interval wins per day) but
// the ambiguity is worth surfacing.
func DetectLeaveOverlaps(leaves []leave.Interval) [][2]leave.Interval {
	var overlaps [][2]leave.Interval
	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			a, b := leaves[i], leaves[j]
			if !a.StartDate.After(b.EndDate) && !b.StartDate.After(a.EndDate) {
				overlaps = append(overlaps, [2]leave.Interval{a, b})
			}
		}
	}
	return overlaps
}

// LogLeaveOverlaps writes a warning per overlapping pair.
func LogLeaveOverlaps(logger *slog.Logger, employeeID string, overlaps [][2]leave.Interval) {
	for _, pair := range overlaps {
		logger.Warn("overlapping approved leaves, later request wins per day",
			"employee_id", employeeID,
			"leave_id", pair[0].ID,
			"overlapping_leave_id", pair[1].ID)
	}
}

// daysInMonth counts the days of a month using the calendar's own rollover:
// day zero of the next month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// workedHoursMinutes measures the span between clock-in and clock-out,
// rolling over midnight when the shift ends the next day.
func workedHoursMinutes(timeIn, timeOut time.Time) (int, int) {
	minutes := int(timeOut.Sub(timeIn).Minutes())
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes / 60, minutes % 60
}

// durationLabel renders the span between clock-in and clock-out the way the
// timesheet displays it: "8 hours", "1 hour and 30 minutes", "45 minutes",
// "0 hours" for a zero span, "N/A" when either side is missing.
func durationLabel(timeIn, timeOut *time.Time) string {
	if timeIn == nil || timeOut == nil {
		return "N/A"
	}

	hours, minutes := workedHoursMinutes(*timeIn, *timeOut)

	var parts []string
	if hours > 0 {
		label := fmt.Sprintf("%d hour", hours)
		if hours != 1 {
			label += "s"
		}
		parts = append(parts, label)
	}
	if minutes > 0 {
		label := fmt.Sprintf("%d minute", minutes)
		if minutes != 1 {
			label += "s"
		}
		parts = append(parts, label)
	}

	if len(parts) == 0 {
		return "0 hours"
	}
	return strings.Join(parts, " and ")
}
