package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/middleware"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	userHandler UserHandler,
	projectHandler ProjectHandler,
	worksheetHandler WorksheetHandler,
	calendarHandler CalendarHandler,
	driveHandler DriveHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Post("/break/start", attendanceHandler.BreakStart)
				r.Post("/break/end", attendanceHandler.BreakEnd)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/my", attendanceHandler.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Post("/rollover", attendanceHandler.Rollover)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/my", leaveHandler.GetMyRequests)
				r.Get("/balance/my", leaveHandler.GetMyBalance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListRequests)
					r.Get("/balance/{userID}", leaveHandler.GetBalance)
					r.Get("/{id}", leaveHandler.GetRequest)
					r.Post("/{id}/approve", leaveHandler.ApproveRequest)
					r.Post("/{id}/reject", leaveHandler.RejectRequest)
				})
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Deactivate)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/{id}", projectHandler.Get)
				r.Put("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)

				r.Route("/{id}/tasks", func(r chi.Router) {
					r.Get("/", projectHandler.ListTasks)
					r.Post("/", projectHandler.CreateTask)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Put("/{taskID}", projectHandler.UpdateTask)
				r.Delete("/{taskID}", projectHandler.DeleteTask)
			})

			r.Route("/worksheets", func(r chi.Router) {
				r.Post("/", worksheetHandler.Submit)
				r.Get("/my", worksheetHandler.My)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", worksheetHandler.List)
				})
			})

			r.Route("/calendar/posts", func(r chi.Router) {
				r.Get("/", calendarHandler.List)
				r.Post("/", calendarHandler.Create)
				r.Get("/{id}", calendarHandler.Get)
				r.Put("/{id}", calendarHandler.Update)
				r.Delete("/{id}", calendarHandler.Delete)
			})

			r.Route("/drive", func(r chi.Router) {
				r.Get("/files", driveHandler.List)
				r.Post("/files", driveHandler.Upload)
				r.Delete("/files", driveHandler.Delete)
				r.Post("/folders", driveHandler.CreateFolder)
			})
		})
	})

	return r
}
