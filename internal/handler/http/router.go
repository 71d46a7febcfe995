package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions carries what the router needs from configuration.
type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LogLevel       slog.Level
}

type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payment    PaymentHandler
	Payroll    PayrollHandler
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Delete("/", h.Employee.DeleteEmployee)
				r.Patch("/active", h.Employee.SetActive)

				r.Route("/weeks/{week}", func(r chi.Router) {
					r.Get("/records", h.Attendance.GetWeek)
					r.Put("/records", h.Attendance.FlushWeek)
					r.Post("/records/defaults", h.Attendance.ApplyDefaultWeek)
					r.Get("/payments", h.Payment.ListForWeek)
					r.Get("/payout", h.Payroll.GetWeeklyPayout)
				})

				r.Route("/records/{date}", func(r chi.Router) {
					r.Put("/", h.Attendance.UpsertDay)
					r.Delete("/", h.Attendance.ClearDay)
					r.Patch("/active", h.Attendance.SetDayActive)
				})
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.Payment.CreatePayment)
			r.Get("/{id}", h.Payment.GetPayment)
			r.Put("/{id}", h.Payment.UpdatePayment)
			r.Delete("/{id}", h.Payment.DeletePayment)
		})

		r.Route("/payroll/weeks", func(r chi.Router) {
			r.Get("/", h.Payroll.ListActiveWeeks)
			r.Get("/{week}", h.Payroll.GetWeeklyReport)
			r.Post("/{week}/snapshots", h.Payroll.SnapshotWeek)
			r.Get("/{week}/snapshots", h.Payroll.GetSnapshots)
		})
	})

	return r
}
