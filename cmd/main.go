package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/sbilibin2017/gw-greeter/docs"
	"github.com/sbilibin2017/gw-greeter/internal/handlers"
	"github.com/sbilibin2017/gw-greeter/internal/logger"
	"github.com/sbilibin2017/gw-greeter/internal/middlewares"
	"github.com/sbilibin2017/gw-greeter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-greeter API
// @version 1.0.0
// @description Greeting and user creation service
// @host 127.0.0.1:3000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, bodyLimit, shutdownTimeout, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		bodyLimit, shutdownTimeout,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, if it exists,
// and returns the listener, logging and request body configuration.
// Without any configuration the service listens on 127.0.0.1:3000.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	bodyLimit int64,
	shutdownTimeout time.Duration,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	appHost = getEnv("APP_HOST", "127.0.0.1")
	appPort = getEnv("APP_PORT", "3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	if bodyLimit, err = strconv.ParseInt(getEnv("APP_BODY_LIMIT_BYTES", "2097152"), 10, 64); err != nil {
		return
	}

	var timeoutSecond int
	if timeoutSecond, err = strconv.Atoi(getEnv("APP_SHUTDOWN_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	shutdownTimeout = time.Duration(timeoutSecond) * time.Second

	return
}

// newRouter wires the handlers and middleware into a chi router.
func newRouter(log *zap.SugaredLogger, svc handlers.UserCreator, bodyLimit int64) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Get("/", handlers.NewRootHandler())
	r.Post("/users", handlers.NewCreateUserHandler(svc, handlers.NewJSONExtractor(bodyLimit)))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// run initializes the logger and the HTTP server, serves until ctx is done
// or a termination signal arrives, then shuts the server down gracefully.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	bodyLimit int64,
	shutdownTimeout time.Duration,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	userService := services.NewUserService()

	srv := &http.Server{
		Handler: newRouter(logger.Log, userService, bodyLimit),
	}

	lis, err := net.Listen("tcp", net.JoinHostPort(appHost, appPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", lis.Addr())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
		return err
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
