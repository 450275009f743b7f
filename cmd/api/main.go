package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/config"
	appHTTP "github.com/Ntchinda-Giscard/vvims-backend/internal/handler/http"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/database"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/jwt"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/storage"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/repository/postgresql"
	attendanceService "github.com/Ntchinda-Giscard/vvims-backend/internal/service/attendance"
	authService "github.com/Ntchinda-Giscard/vvims-backend/internal/service/auth"
	dashboardService "github.com/Ntchinda-Giscard/vvims-backend/internal/service/dashboard"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/service/file"
	notificationService "github.com/Ntchinda-Giscard/vvims-backend/internal/service/notification"
	reportService "github.com/Ntchinda-Giscard/vvims-backend/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	visitRepo := postgresql.NewVisitRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "vvims-backend"),
	)
	sink := notificationService.NewLogSink(appLogger)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, policyRepo, sink)
	authSvc := authService.NewAuthService(employeeRepo, companyRepo, jwtService)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo, leaveRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, leaveRepo, visitRepo)
	reportFileSvc := file.NewReportFileService(fileStorage, file.NewCSVRenderer())

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, reportFileSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(jwtService, authHandler, attendanceHandler, reportHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
