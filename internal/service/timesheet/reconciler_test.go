package timesheet

import (
	"testing"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/attendance"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/leave"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func TestReconcileNovember2024(t *testing.T) {
	r := NewReconciler()

	records := []attendance.Record{
		{
			ID:         "log-1",
			EmployeeID: "emp-1",
			Date:       date(2024, time.November, 4),
			TimeIn:     clock(2024, time.November, 4, 8, 0),
			TimeOut:    clock(2024, time.November, 4, 17, 0),
			Status:     attendance.StatusPresent,
		},
	}

	entries, summary, err := r.Reconcile(
		"emp-1", "Jane Cruz",
		2024, 11,
		records, nil, nil,
		date(2024, time.November, 15),
	)
	require.NoError(t, err)
	require.Len(t, entries, 30)

	// Sundays are Nov 3, 10, 17, 24
	for _, day := range []int{3, 10, 17, 24} {
		assert.Equal(t, timesheet.StatusDayOff, entries[day-1].Status, "day %d", day)
	}

	assert.Equal(t, timesheet.StatusPresent, entries[3].Status)
	assert.Equal(t, "9 hours", entries[3].TotalHours)

	// Past workdays without a log are absent, future ones have no record
	assert.Equal(t, timesheet.StatusAbsent, entries[0].Status)
	assert.Equal(t, timesheet.StatusAbsent, entries[14].Status)
	assert.Equal(t, timesheet.StatusNoRecord, entries[15].Status)
	assert.Equal(t, timesheet.StatusNoRecord, entries[29].Status)

	assert.Equal(t, 26, summary.TotalWorkDays)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 0, summary.LateDays)
	// 13 workdays up to Nov 15, one of them logged Present
	assert.Equal(t, 12, summary.AbsentDays)
	assert.Equal(t, 4, summary.DayOffDays)
	assert.Equal(t, 4, summary.AttendanceRatePercent) // round(1/26*100)
	assert.Equal(t, 9, summary.TotalWorkedHours)
	assert.Equal(t, 0, summary.TotalWorkedMinutes)
}

func TestReconcileTimelineLength(t *testing.T) {
	cases := []struct {
		year  int
		month int
		days  int
	}{
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2000, 2, 29}, // divisible by 400
		{1900, 2, 28}, // divisible by 100, not 400
		{2024, 11, 30},
		{2024, 12, 31},
	}

	r := NewReconciler()
	today := date(2030, time.January, 1)

	for _, c := range cases {
		entries, _, err := r.Reconcile("emp-1", "Jane Cruz", c.year, c.month, nil, nil, nil, today)
		require.NoError(t, err)
		assert.Len(t, entries, c.days, "%d-%02d", c.year, c.month)

		// Consecutive dates, each exactly once
		for i, entry := range entries {
			assert.Equal(t, date(c.year, time.Month(c.month), i+1), entry.Date)
		}
	}
}

func TestReconcileCounterIdentity(t *testing.T) {
	r := NewReconciler()

	holidays := []holiday.Holiday{
		{ID: "h-1", Date: date(2024, time.November, 1), Description: "All Saints' Day"},
	}
	leaves := []leave.Interval{
		{ID: "l-1", EmployeeID: "emp-1", LeaveType: leave.TypeSick,
			StartDate: date(2024, time.November, 5), EndDate: date(2024, time.November, 7)},
	}

	entries, summary, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, nil, holidays, leaves, date(2024, time.November, 30))
	require.NoError(t, err)

	total := summary.TotalWorkDays + summary.HolidayDays + summary.LeaveDays + summary.DayOffDays
	assert.Equal(t, len(entries), total)
	assert.Equal(t, 1, summary.HolidayDays)
	assert.Equal(t, 3, summary.LeaveDays)

	// Every past day classified, so the workday counters close
	assert.Equal(t, summary.TotalWorkDays, summary.PresentDays+summary.LateDays+summary.AbsentDays)
}

func TestReconcileHolidayAndLeaveLabels(t *testing.T) {
	r := NewReconciler()

	holidays := []holiday.Holiday{
		{ID: "h-1", Date: date(2024, time.June, 12), Description: "Independence Day"},
	}
	leaves := []leave.Interval{
		{ID: "l-1", EmployeeID: "emp-1", LeaveType: leave.TypeVacation,
			StartDate: date(2024, time.June, 17), EndDate: date(2024, time.June, 18)},
	}

	entries, _, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 6, nil, holidays, leaves, date(2024, time.June, 30))
	require.NoError(t, err)

	assert.Equal(t, "Holiday (Independence Day)", entries[11].StatusLabel())
	assert.Equal(t, "Leave (Vacation)", entries[16].StatusLabel())
	assert.Equal(t, "Leave (Vacation)", entries[17].StatusLabel())
}

func TestReconcileHolidayFirstWins(t *testing.T) {
	r := NewReconciler()

	holidays := []holiday.Holiday{
		{ID: "h-1", Date: date(2024, time.June, 12), Description: "Independence Day"},
		{ID: "h-2", Date: date(2024, time.June, 12), Description: "Duplicate Entry"},
	}

	entries, summary, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 6, nil, holidays, nil, date(2024, time.June, 30))
	require.NoError(t, err)

	assert.Equal(t, "Independence Day", entries[11].StatusDetail)
	assert.Equal(t, 1, summary.HolidayDays)
}

func TestReconcileLeaveLastWins(t *testing.T) {
	r := NewReconciler()

	leaves := []leave.Interval{
		{ID: "l-1", EmployeeID: "emp-1", LeaveType: leave.TypeVacation,
			StartDate: date(2024, time.June, 10), EndDate: date(2024, time.June, 14)},
		{ID: "l-2", EmployeeID: "emp-1", LeaveType: leave.TypeSick,
			StartDate: date(2024, time.June, 13), EndDate: date(2024, time.June, 14)},
	}

	entries, _, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 6, nil, nil, leaves, date(2024, time.June, 30))
	require.NoError(t, err)

	assert.Equal(t, "Vacation", entries[9].StatusDetail)
	assert.Equal(t, "Sick", entries[12].StatusDetail)
	assert.Equal(t, "Sick", entries[13].StatusDetail)
}

func TestReconcileOvernightShift(t *testing.T) {
	r := NewReconciler()

	records := []attendance.Record{
		{
			ID:         "log-1",
			EmployeeID: "emp-1",
			Date:       date(2024, time.November, 5),
			TimeIn:     clock(2024, time.November, 5, 22, 0),
			TimeOut:    clock(2024, time.November, 5, 6, 0),
			Status:     attendance.StatusPresent,
		},
	}

	entries, summary, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, records, nil, nil, date(2024, time.November, 30))
	require.NoError(t, err)

	assert.Equal(t, "8 hours", entries[4].TotalHours)
	assert.Equal(t, 8, summary.TotalWorkedHours)
	assert.Equal(t, 0, summary.TotalWorkedMinutes)
}

func TestReconcileLateRecord(t *testing.T) {
	r := NewReconciler()

	records := []attendance.Record{
		{
			ID:         "log-1",
			EmployeeID: "emp-1",
			Date:       date(2024, time.November, 5),
			TimeIn:     clock(2024, time.November, 5, 9, 45),
			TimeOut:    clock(2024, time.November, 5, 17, 0),
			Status:     attendance.StatusLate,
		},
	}

	_, summary, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, records, nil, nil, date(2024, time.November, 30))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 25, summary.AbsentDays)
	assert.Equal(t, 4, summary.AttendanceRatePercent)
	assert.Equal(t, 7, summary.TotalWorkedHours)
	assert.Equal(t, 15, summary.TotalWorkedMinutes)
}

func TestReconcileZeroWorkdays(t *testing.T) {
	r := NewReconciler(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)

	entries, summary, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, nil, nil, nil, date(2024, time.November, 30))
	require.NoError(t, err)

	assert.Len(t, entries, 30)
	assert.Equal(t, 0, summary.TotalWorkDays)
	assert.Equal(t, 0, summary.AttendanceRatePercent)
	assert.Equal(t, 30, summary.DayOffDays)
}

func TestReconcileConfigurableRestDays(t *testing.T) {
	r := NewReconciler(time.Saturday, time.Sunday)

	_, summary, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, nil, nil, nil, date(2024, time.October, 1))
	require.NoError(t, err)

	// November 2024 has 5 Saturdays and 4 Sundays
	assert.Equal(t, 21, summary.TotalWorkDays)
	assert.Equal(t, 9, summary.DayOffDays)
}

func TestReconcileInvalidCalendarInput(t *testing.T) {
	r := NewReconciler()
	today := date(2024, time.November, 15)

	cases := []struct {
		year  int
		month int
	}{
		{2024, 0},
		{2024, 13},
		{999, 6},
		{10000, 6},
	}

	for _, c := range cases {
		_, _, err := r.Reconcile("emp-1", "Jane Cruz", c.year, c.month, nil, nil, nil, today)
		assert.ErrorIs(t, err, timesheet.ErrInvalidCalendarInput, "%d-%d", c.year, c.month)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	r := NewReconciler()

	records := []attendance.Record{
		{
			ID:         "log-1",
			EmployeeID: "emp-1",
			Date:       date(2024, time.November, 4),
			TimeIn:     clock(2024, time.November, 4, 8, 0),
			TimeOut:    clock(2024, time.November, 4, 17, 0),
			Status:     attendance.StatusPresent,
		},
	}
	today := date(2024, time.November, 15)

	entries1, summary1, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, records, nil, nil, today)
	require.NoError(t, err)
	entries2, summary2, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, records, nil, nil, today)
	require.NoError(t, err)

	assert.Equal(t, entries1, entries2)
	assert.Equal(t, summary1, summary2)
}

func TestReconcileRecordOutsideMonthIgnored(t *testing.T) {
	r := NewReconciler()

	records := []attendance.Record{
		{
			ID:         "log-1",
			EmployeeID: "emp-1",
			Date:       date(2024, time.October, 31),
			Status:     attendance.StatusPresent,
		},
	}

	_, summary, err := r.Reconcile("emp-1", "Jane Cruz", 2024, 11, records, nil, nil, date(2024, time.November, 30))
	require.NoError(t, err)

	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 26, summary.AbsentDays)
}

func TestDurationLabel(t *testing.T) {
	cases := []struct {
		name    string
		timeIn  *time.Time
		timeOut *time.Time
		want    string
	}{
		{"nine hours", clock(2024, time.November, 4, 8, 0), clock(2024, time.November, 4, 17, 0), "9 hours"},
		{"single hour", clock(2024, time.November, 4, 8, 0), clock(2024, time.November, 4, 9, 0), "1 hour"},
		{"hours and minutes", clock(2024, time.November, 4, 8, 0), clock(2024, time.November, 4, 16, 30), "8 hours and 30 minutes"},
		{"single minute", clock(2024, time.November, 4, 8, 0), clock(2024, time.November, 4, 8, 1), "1 minute"},
		{"minutes only", clock(2024, time.November, 4, 8, 0), clock(2024, time.November, 4, 8, 45), "45 minutes"},
		{"zero span", clock(2024, time.November, 4, 8, 0), clock(2024, time.November, 4, 8, 0), "0 hours"},
		{"overnight", clock(2024, time.November, 4, 22, 0), clock(2024, time.November, 4, 6, 0), "8 hours"},
		{"missing time out", clock(2024, time.November, 4, 8, 0), nil, "N/A"},
		{"missing both", nil, nil, "N/A"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, durationLabel(c.timeIn, c.timeOut))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, daysInMonth(2024, time.February))
	assert.Equal(t, 28, daysInMonth(2023, time.February))
	assert.Equal(t, 29, daysInMonth(2000, time.February))
	assert.Equal(t, 28, daysInMonth(1900, time.February))
	assert.Equal(t, 31, daysInMonth(2024, time.December))
	assert.Equal(t, 30, daysInMonth(2024, time.April))
}

func TestDetectLeaveOverlaps(t *testing.T) {
	leaves := []leave.Interval{
		{ID: "l-1", StartDate: date(2024, time.June, 10), EndDate: date(2024, time.June, 14)},
		{ID: "l-2", StartDate: date(2024, time.June, 13), EndDate: date(2024, time.June, 16)},
		{ID: "l-3", StartDate: date(2024, time.June, 20), EndDate: date(2024, time.June, 21)},
	}

	overlaps := DetectLeaveOverlaps(leaves)
	require.Len(t, overlaps, 1)
	assert.Equal(t, "l-1", overlaps[0][0].ID)
	assert.Equal(t, "l-2", overlaps[0][1].ID)

	assert.Empty(t, DetectLeaveOverlaps(leaves[2:]))
	assert.Empty(t, DetectLeaveOverlaps(nil))
}
