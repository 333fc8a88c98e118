package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
	"github.com/hr2-portal/hr2-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDatabase connects to the database named by TEST_DATABASE_URL. Tests
// that need a live database skip when the variable is unset.
func testDatabase(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func cleanupHolidays(t *testing.T, db *database.DB) {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE non_working_days CASCADE")
	require.NoError(t, err)
}

func newHolidayID(t *testing.T) string {
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func TestHolidayRepository_Create_Success(t *testing.T) {
	db := testDatabase(t)
	defer cleanupHolidays(t, db)
	cleanupHolidays(t, db)

	ctx := context.Background()
	holidayRepo := postgresql.NewHolidayRepository(db)

	created, err := holidayRepo.Create(ctx, holiday.Holiday{
		ID:          newHolidayID(t),
		Date:        time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC),
		Description: "Founders Day",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Founders Day", created.Description)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestHolidayRepository_Delete_NotFound(t *testing.T) {
	db := testDatabase(t)
	defer cleanupHolidays(t, db)
	cleanupHolidays(t, db)

	err := postgresql.NewHolidayRepository(db).Delete(context.Background(), newHolidayID(t))

	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestHolidayRepository_ListByMonth_BoundsInclusive(t *testing.T) {
	db := testDatabase(t)
	defer cleanupHolidays(t, db)
	cleanupHolidays(t, db)

	ctx := context.Background()
	holidayRepo := postgresql.NewHolidayRepository(db)

	dates := []time.Time{
		time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		_, err := holidayRepo.Create(ctx, holiday.Holiday{
			ID:          newHolidayID(t),
			Date:        date,
			Description: "Holiday",
		})
		require.NoError(t, err)
	}

	holidays, err := holidayRepo.ListByMonth(ctx, 2024, time.November)

	assert.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, time.November, holidays[0].Date.Month())
	assert.Equal(t, 1, holidays[0].Date.Day())
	assert.Equal(t, 30, holidays[1].Date.Day())
}

func TestHolidayRepository_ListDuplicateDates(t *testing.T) {
	db := testDatabase(t)
	defer cleanupHolidays(t, db)
	cleanupHolidays(t, db)

	ctx := context.Background()
	holidayRepo := postgresql.NewHolidayRepository(db)

	duplicated := time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)
	for _, entry := range []struct {
		date time.Time
		desc string
	}{
		{duplicated, "Founders Day"},
		{duplicated, "Founders Day (again)"},
		{time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC), "One-off"},
	} {
		_, err := holidayRepo.Create(ctx, holiday.Holiday{
			ID:          newHolidayID(t),
			Date:        entry.date,
			Description: entry.desc,
		})
		require.NoError(t, err)
	}

	dates, err := holidayRepo.ListDuplicateDates(ctx)

	assert.NoError(t, err)
	require.Len(t, dates, 1)
	assert.True(t, dates[0].Equal(duplicated))
}
