package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/config"
	appHTTP "github.com/MihirPatel2105/odooXGCET-26-sub000/internal/handler/http"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/database"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/email"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/jwt"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/pkg/oauth"
	"github.com/MihirPatel2105/odooXGCET-26-sub000/internal/repository/postgresql"
	attendanceService "github.com/MihirPatel2105/odooXGCET-26-sub000/internal/service/attendance"
	serviceAuth "github.com/MihirPatel2105/odooXGCET-26-sub000/internal/service/auth"
	employeeService "github.com/MihirPatel2105/odooXGCET-26-sub000/internal/service/employee"
	leaveService "github.com/MihirPatel2105/odooXGCET-26-sub000/internal/service/leave"
	payrollService "github.com/MihirPatel2105/odooXGCET-26-sub000/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	emailDispatcher := email.NewDispatcher(emailService, 64)
	defer emailDispatcher.Close()

	authService := serviceAuth.NewAuthService(db, userRepo, companyRepo, employeeRepo, JWTService, JWTRepository, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, companyRepo, emailDispatcher, loc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, leaveRequestRepo, cfg.Attendance, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, attendanceRepo, cfg.Leave, loc)
	payrollSvc := payrollService.NewPayrollService(salaryRepo, employeeRepo, attendanceRepo, loc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
