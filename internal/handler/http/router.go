package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/presencio/presence-backend-go/internal/config"
)

func NewRouter(cfg *config.Config, employeeHandler EmployeeHandler, attendanceHandler AttendanceHandler, payrollHandler PayrollHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Delete)
				r.Get("/qrcode", employeeHandler.GetQRCode)
				r.Get("/qrcode/base64", employeeHandler.GetQRCodeBase64)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock", attendanceHandler.RecordClock)
			r.Post("/scan", employeeHandler.ScanQRCode)
			r.Get("/", attendanceHandler.ListByPeriod)
			r.Get("/employee/{employeeID}", attendanceHandler.ListByEmployee)
			r.Delete("/{id}", attendanceHandler.DeleteEvent)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/compute/{employeeID}", payrollHandler.ComputeMonthly)
			r.Post("/compute-all", payrollHandler.ComputeAll)
			r.Post("/send/{id}", payrollHandler.SendBulletin)
			r.Post("/send-pending", payrollHandler.SendPending)
			r.Get("/employee/{employeeID}", payrollHandler.ListByEmployee)
		})
	})

	return r
}
