package schedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/schedule"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
	"github.com/hr2-portal/hr2-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const defaultPageSize = 20

type scheduleService struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
	db           *database.DB
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	db *database.DB,
) schedule.ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		db:           db,
	}
}

// AssignSchedule implements schedule.ScheduleService.
func (s *scheduleService) AssignSchedule(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.buildSchedule(req)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, sched)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToResponse(saved), nil
}

// BulkAssignSchedules implements schedule.ScheduleService.
func (s *scheduleService) BulkAssignSchedules(ctx context.Context, req schedule.BulkAssignScheduleRequest) ([]schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(req.Assignments))

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, assignment := range req.Assignments {
			if _, err := s.employeeRepo.GetByID(txCtx, assignment.EmployeeID); err != nil {
				return err
			}

			sched, err := s.buildSchedule(assignment)
			if err != nil {
				return err
			}

			saved, err := s.scheduleRepo.Upsert(txCtx, sched)
			if err != nil {
				return err
			}

			responses = append(responses, schedule.ToResponse(saved))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// GetEmployeeSchedule implements schedule.ScheduleService.
func (s *scheduleService) GetEmployeeSchedule(ctx context.Context, employeeID string) (schedule.ScheduleResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.scheduleRepo.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToResponse(sched), nil
}

// ListSchedules implements schedule.ScheduleService.
func (s *scheduleService) ListSchedules(ctx context.Context, req schedule.ListSchedulesRequest) (schedule.ListSchedulesResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ListSchedulesResponse{}, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	schedules, total, err := s.scheduleRepo.ListLatestPerEmployee(ctx, req.Search, limit, req.Offset)
	if err != nil {
		return schedule.ListSchedulesResponse{}, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, schedule.ToResponse(sched))
	}

	return schedule.ListSchedulesResponse{
		TotalCount: total,
		Schedules:  responses,
	}, nil
}

func (s *scheduleService) buildSchedule(req schedule.AssignScheduleRequest) (schedule.Schedule, error) {
	scheduleDate, _ := validator.IsValidDate(req.ScheduleDate)

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.Schedule{}, err
	}

	return schedule.Schedule{
		ID:           id.String(),
		EmployeeID:   req.EmployeeID,
		ShiftType:    req.ShiftType,
		ScheduleDate: scheduleDate,
		StartTime:    normalizeClock(req.StartTime),
		EndTime:      normalizeClock(req.EndTime),
	}, nil
}

func normalizeClock(clock string) string {
	t, ok := validator.IsValidTimeOfDay(clock)
	if !ok {
		return clock
	}
	return t.Format("15:04:05")
}
