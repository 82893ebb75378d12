package main

import (
	"fmt"
	"net/http"

	"github.com/lokabooks/bookkeeping-backend-go/internal/config"
	appHTTP "github.com/lokabooks/bookkeeping-backend-go/internal/handler/http"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/database"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/jwt"
	"github.com/lokabooks/bookkeeping-backend-go/internal/repository/postgresql"
	attendanceService "github.com/lokabooks/bookkeeping-backend-go/internal/service/attendance"
	businessService "github.com/lokabooks/bookkeeping-backend-go/internal/service/business"
	employeeService "github.com/lokabooks/bookkeeping-backend-go/internal/service/employee"
	financeService "github.com/lokabooks/bookkeeping-backend-go/internal/service/finance"
	leaveService "github.com/lokabooks/bookkeeping-backend-go/internal/service/leave"
	payrollService "github.com/lokabooks/bookkeeping-backend-go/internal/service/payroll"
	scheduleService "github.com/lokabooks/bookkeeping-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	businessRepo := postgresql.NewBusinessRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewWorkScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	ruleRepo := postgresql.NewAttendanceRuleRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	entitlementRepo := postgresql.NewEntitlementRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	financeRepo := postgresql.NewFinanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	businessSvc := businessService.NewBusinessService(businessRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewWorkScheduleService(scheduleRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		ruleRepo,
		employeeRepo,
		scheduleRepo,
		businessRepo,
	)
	ruleSvc := attendanceService.NewRuleService(ruleRepo)
	leaveSvc := leaveService.NewLeaveService(
		db,
		leaveTypeRepo,
		entitlementRepo,
		leaveRequestRepo,
		employeeRepo,
	)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		attendanceRepo,
		employeeRepo,
		cfg.Payroll,
	)
	financeSvc := financeService.NewFinanceService(db, financeRepo, businessRepo)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, ruleSvc),
		Business:   appHTTP.NewBusinessHandler(businessSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Finance:    appHTTP.NewFinanceHandler(financeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
