package main

import (
	"fmt"
	"net/http"

	"github.com/hr2-portal/hr2-backend-go/internal/config"
	appHTTP "github.com/hr2-portal/hr2-backend-go/internal/handler/http"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/cron"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/jwt"
	"github.com/hr2-portal/hr2-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hr2-portal/hr2-backend-go/internal/service/attendance"
	employeeService "github.com/hr2-portal/hr2-backend-go/internal/service/employee"
	holidayService "github.com/hr2-portal/hr2-backend-go/internal/service/holiday"
	leaveService "github.com/hr2-portal/hr2-backend-go/internal/service/leave"
	scheduleService "github.com/hr2-portal/hr2-backend-go/internal/service/schedule"
	timesheetService "github.com/hr2-portal/hr2-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	reconciler := timesheetService.NewReconciler()
	timesheetSvc := timesheetService.NewTimesheetService(attendanceRepo, holidayRepo, leaveRepo, employeeRepo, reconciler)
	attendanceSvc := attendanceService.NewRecordService(attendanceRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	leaveSvc := leaveService.NewRequestService(leaveRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo, db)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	scheduler := cron.NewScheduler()
	calendarJobs := cron.NewCalendarJobs(holidayRepo, db)
	calendarJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		timesheetHandler,
		attendanceHandler,
		holidayHandler,
		leaveHandler,
		employeeHandler,
		scheduleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
