package holiday

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

type holidayService struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayService{holidayRepo: holidayRepo}
}

// DeclareHoliday implements holiday.HolidayService.
func (s *holidayService) DeclareHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	id, err := uuid.NewV7()
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		ID:          id.String(),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return toHolidayResponse(created), nil
}

// RemoveHoliday implements holiday.HolidayService.
func (s *holidayService) RemoveHoliday(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}}
	}
	return s.holidayRepo.Delete(ctx, id)
}

// ListHolidays implements holiday.HolidayService.
func (s *holidayService) ListHolidays(ctx context.Context, req holiday.ListHolidaysRequest) (holiday.ListHolidaysResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.ListHolidaysResponse{}, err
	}

	holidays, err := s.holidayRepo.ListByMonth(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return holiday.ListHolidaysResponse{}, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}

	return holiday.ListHolidaysResponse{Holidays: responses}, nil
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format(time.DateOnly),
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
	}
}
