package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pacs/internal"
	accessgrantPostgres "pacs/internal/accessgrant/postgres"
	"pacs/internal/auth"
	"pacs/internal/department"
	departmentPostgres "pacs/internal/department/postgres"
	"pacs/internal/device"
	devicePostgres "pacs/internal/device/postgres"
	"pacs/internal/employee"
	employeePostgres "pacs/internal/employee/postgres"
	"pacs/internal/event"
	eventPostgres "pacs/internal/event/postgres"
	"pacs/internal/transport"
	"pacs/internal/transport/rest"
	"pacs/internal/user"
	userPostgres "pacs/internal/user/postgres"
	"pacs/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

func startHTTPServer() {
	cfg, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(cfg.Database)
	if err != nil {
		lg.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	if err := buildRoutes(router, db, cfg, lg); err != nil {
		lg.Error("failed to build routes", "error", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	lg.Info("HTTP server started", "address", addr)

	select {
	case sig := <-sigChan:
		lg.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			lg.Error("server shutdown error", "error", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				lg.Error("database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			lg.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	lg.Info("server stopped")
}

// buildRoutes constructs the service graph explicitly: repositories,
// then entity services, then the authorization engine on top.
func buildRoutes(router *chi.Mux, db *gorm.DB, cfg *internal.Config, lg *slog.Logger) error {
	departmentRepo := departmentPostgres.NewDepartmentRepository(db)
	employeeRepo := employeePostgres.NewEmployeeRepository(db)
	deviceRepo := devicePostgres.NewDeviceRepository(db)
	grantRepo := accessgrantPostgres.NewAccessGrantRepository(db)
	eventRepo := eventPostgres.NewEventRepository(db)
	userRepo := userPostgres.NewUserRepository(db)

	departmentService := department.NewService(departmentRepo, lg)
	employeeService := employee.NewService(employeeRepo, departmentRepo, grantRepo, lg)
	deviceService := device.NewService(deviceRepo, departmentRepo, employeeRepo, grantRepo, lg)
	eventService := event.NewService(eventRepo, employeeRepo, deviceRepo, grantRepo, lg)
	userService := user.NewService(userRepo, cfg.Security.BCryptCost, lg)

	tokenGen := auth.NewJWTTokenGenerator(cfg.Security.TokenKey, cfg.Security.TokenExpiry)
	authService := auth.NewService(userRepo, tokenGen, lg)

	base := transport.NewBaseHandler(lg)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to unwrap sql.DB: %w", err)
	}

	rest.RegisterAllRoutes(router,
		rest.NewHealthHandler(base, sqlDB),
		auth.NewHandler(base, authService),
		department.NewHandler(base, departmentService),
		employee.NewHandler(base, employeeService),
		device.NewHandler(base, deviceService),
		event.NewHandler(base, eventService),
		user.NewHandler(base, userService),
		lg,
	)
	return nil
}

func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Source), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
