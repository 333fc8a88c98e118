package attendance

import (
	"testing"

	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateRecordRequestValidate(t *testing.T) {
	req := CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2024-11-04",
		TimeIn:     strPtr("08:00"),
		TimeOut:    strPtr("17:00:30"),
		Status:     StatusPresent,
	}
	assert.NoError(t, req.Validate())
}

func TestCreateRecordRequestValidateErrors(t *testing.T) {
	req := CreateRecordRequest{
		Date:   "04-11-2024",
		TimeIn: strPtr("25:00"),
	}

	err := req.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	m := verrs.ToMap()
	assert.Contains(t, m, "employee_id")
	assert.Contains(t, m, "date")
	assert.Contains(t, m, "time_in")
	assert.Contains(t, m, "status")
}

func TestListRecordsRequestValidate(t *testing.T) {
	valid := ListRecordsRequest{EmployeeID: "emp-1", Month: 11, Year: 2024}
	assert.NoError(t, valid.Validate())

	invalid := ListRecordsRequest{EmployeeID: "emp-1", Month: 0, Year: 99}
	err := invalid.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "month")
	assert.Contains(t, m, "year")
}
