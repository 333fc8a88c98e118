package holiday

import (
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListHolidaysRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *ListHolidaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type ListHolidaysResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}
