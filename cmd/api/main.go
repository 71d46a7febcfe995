package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/config"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	appHTTP "github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/cron"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/display"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/logger"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/weekly-payroll-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/weekly-payroll-go/internal/service/employee"
	paymentService "github.com/cmlabs-hris/weekly-payroll-go/internal/service/payment"
	payrollService "github.com/cmlabs-hris/weekly-payroll-go/internal/service/payroll"
)

func main() {
	initSchema := flag.Bool("init-schema", false, "create missing tables before serving")
	flag.Parse()

	if err := run(*initSchema); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(initSchema bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(os.Stdout, logger.Options{
		App:     cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if initSchema {
		if _, err := db.Exec(ctx, postgresql.Schema); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		log.Info("database schema applied")
	}

	// Repositories
	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewDailyRecordRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	snapshotRepo := postgresql.NewSnapshotRepository(db)

	// Services
	paymentSvc := paymentService.NewPaymentService(paymentRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(recordRepo, employeeRepo, attendance.Punches{
		Entry:      cfg.Payroll.DefaultEntry,
		LunchStart: cfg.Payroll.DefaultLunchStart,
		LunchEnd:   cfg.Payroll.DefaultLunchEnd,
		Exit:       cfg.Payroll.DefaultExit,
	})
	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		recordRepo,
		paymentSvc,
		snapshotRepo,
		payroll.Policy{IncludePermanentIfNoWork: cfg.Payroll.IncludePermanentIfNoWork},
		display.NewCurrencyFormatter(cfg.Payroll.Locale, cfg.Payroll.CurrencySuffix),
		cfg.Payroll.Workers,
	)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.App.AllowedOrigins,
		LogLevel:       logger.ParseLevel(cfg.App.LogLevel),
	}, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	scheduler := cron.NewScheduler(log)
	cron.NewPayrollJobs(payrollSvc, cfg.Payroll.SnapshotInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
