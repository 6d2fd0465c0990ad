package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/middleware"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	Logger            *slog.Logger
	AllowedOrigins    []string
	DefaultEmployeeID string
}

type Handlers struct {
	Employee   EmployeeHandler
	Project    ProjectHandler
	Attendance AttendanceHandler
	Timesheet  TimesheetHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Dashboard  DashboardHandler
	Session    SessionHandler
	Event      EventHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
			// Event streams stay open; logging them on close is noise.
			Skip: func(req *http.Request, respStatus int) bool {
				return req.URL.Path == "/api/v1/events"
			},
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.CurrentEmployee(jwtService, cfg.DefaultEmployeeID))

		r.Route("/session", func(r chi.Router) {
			r.Post("/", h.Session.CreateSession)
			r.Delete("/", h.Session.DeleteSession)
		})

		r.Get("/dashboard", h.Dashboard.GetSummary)
		r.Get("/events", h.Event.Stream)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Get("/{id}", h.Employee.GetEmployee)
			r.Put("/{id}", h.Employee.UpdateEmployee)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Project.ListProjects)
			r.Post("/", h.Project.CreateProject)
			r.Post("/{id}/assignments", h.Project.AssignEmployee)
			r.Get("/{id}/available-employees", h.Project.ListAvailableEmployees)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.ListAttendance)
			r.Get("/me", h.Attendance.GetMyAttendance)
			r.Get("/me/today", h.Attendance.GetMyToday)
			r.Post("/check-in", h.Attendance.CheckIn)
			r.Post("/check-out", h.Attendance.CheckOut)
		})

		r.Route("/timesheets", func(r chi.Router) {
			r.Get("/", h.Timesheet.ListEntries)
			r.Get("/me", h.Timesheet.GetMyEntries)
			r.Post("/", h.Timesheet.CreateEntry)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/", h.Leave.ListRequests)
			r.Get("/me", h.Leave.GetMyRequests)
			r.Post("/", h.Leave.CreateRequest)
			r.Put("/{id}/status", h.Leave.UpdateStatus)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", h.Payroll.ListPayroll)
			r.Post("/calculate", h.Payroll.CalculatePayroll)
		})
	})
	return r
}
