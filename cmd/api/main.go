package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/presencio/presence-backend-go/internal/config"
	appHTTP "github.com/presencio/presence-backend-go/internal/handler/http"
	"github.com/presencio/presence-backend-go/internal/pkg/cron"
	"github.com/presencio/presence-backend-go/internal/pkg/database"
	"github.com/presencio/presence-backend-go/internal/pkg/email"
	"github.com/presencio/presence-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presencio/presence-backend-go/internal/service/attendance"
	employeeService "github.com/presencio/presence-backend-go/internal/service/employee"
	payrollService "github.com/presencio/presence-backend-go/internal/service/payroll"
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
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	bulletinRepo := postgresql.NewBulletinRepository(db)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	policy, err := payrollService.PolicyFromConfig(cfg.Payroll)
	if err != nil {
		log.Fatal("Invalid payroll configuration:", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(eventRepo, employeeRepo, policy)
	payrollSvc := payrollService.NewPayrollService(bulletinRepo, employeeRepo, eventRepo, emailService, policy)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg, employeeHandler, attendanceHandler, payrollHandler)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, employeeRepo, policy.WorkEnd.Hour()).RegisterJobs(scheduler)
	cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down...")
	_ = server.Close()
}
