package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lokabooks/bookkeeping-backend-go/internal/config"
	"github.com/lokabooks/bookkeeping-backend-go/internal/handler/http/middleware"
	"github.com/lokabooks/bookkeeping-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance AttendanceHandler
	Business   BusinessHandler
	Employee   EmployeeHandler
	Finance    FinanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Schedule   ScheduleHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lokabooks"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Everything requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/my", h.Attendance.GetMyAttendance)
				r.Get("/{id}", h.Attendance.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
				})
			})

			r.Route("/attendance-rules", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Attendance.CreateRule)
				r.Get("/", h.Attendance.ListRules)
				r.Patch("/{id}/activate", h.Attendance.ActivateRule)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Schedule.Create)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Leave.ListLeaveTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Leave.CreateLeaveType)
				})
			})

			r.Route("/leave-entitlements", func(r chi.Router) {
				r.Get("/", h.Leave.ListEntitlements)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Leave.SetEntitlement)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/", h.Leave.ListRequests)
				r.Patch("/{id}/cancel", h.Leave.CancelRequest)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/decision", h.Leave.DecideRequest)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Payroll.Create)
				r.Get("/", h.Payroll.List)
				r.Get("/{id}", h.Payroll.Get)
				r.Put("/{id}", h.Payroll.Update)
				r.Patch("/{id}/status", h.Payroll.Transition)
				r.Delete("/{id}", h.Payroll.Delete)
			})

			r.Route("/incomes", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Finance.CreateIncome)
				r.Get("/", h.Finance.ListIncomes)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/charity-ledger", h.Finance.ListCharityLedger)
			})

			r.Route("/businesses/my", func(r chi.Router) {
				r.Get("/", h.Business.GetMy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Business.UpdateMy)
				})
			})
		})
	})

	return r
}
