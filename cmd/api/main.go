package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/config"
	appHTTP "github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/clock"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/cron"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/database"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/jwt"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/oauth"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/storage"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/attendance"
	authService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/auth"
	calendarService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/calendar"
	driveService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/drive"
	leaveService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/leave"
	projectService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/project"
	userService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/user"
	worksheetService "github.com/teamdesk-hq/teamdesk-backend-go/internal/service/worksheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	worksheetRepo := postgresql.NewWorksheetRepository(db)
	contentPostRepo := postgresql.NewContentPostRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL)
	if !cfg.GoogleLoginEnabled() {
		log.Println("Google OAuth is not configured; Google login will fail until GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are set")
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	clk := clock.New()

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, clk)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, cfg.Leave.QuotaPolicy(), clk)
	userSvc := userService.NewUserService(db, userRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, taskRepo)
	worksheetSvc := worksheetService.NewWorksheetService(db, worksheetRepo)
	calendarSvc := calendarService.NewCalendarService(db, contentPostRepo)
	driveSvc := driveService.NewDriveService(fileStorage)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	worksheetHandler := appHTTP.NewWorksheetHandler(worksheetSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	driveHandler := appHTTP.NewDriveHandler(driveSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, clk).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		userHandler,
		projectHandler,
		worksheetHandler,
		calendarHandler,
		driveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
