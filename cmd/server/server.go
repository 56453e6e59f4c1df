package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/config"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/engine/rpgtoolkit"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/handlers/choices/v1alpha1"
	choicesorchestrator "github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/choices"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/choices/handlers"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/orchestrators/improvement"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/clock"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/pkg/idgen"
	redisclient "github.com/dfox288/ledger-of-heroes-backend-sub012/internal/redis"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/catalog"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/repositories/character"
)

var (
	grpcPort    int
	redisAddr   string
	catalogPath string
	metricsAddr string
	logLevel    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the choice gRPC server. Settings come from LEDGER_* environment ` +
		`variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides LEDGER_REDIS_ADDR)")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog YAML path (overrides LEDGER_CATALOG_PATH)")
	serverCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Metrics listen address (overrides LEDGER_METRICS_ADDR)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides LEDGER_LOG_LEVEL)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	rdb, err := redisclient.NewClient(&redisclient.Config{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	defer func() { _ = rdb.Close() }()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return errors.Wrapf(err, "failed to reach redis at %s", cfg.RedisAddr)
	}

	choiceService, err := newChoiceService(cfg, rdb)
	if err != nil {
		return err
	}

	choiceHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ChoiceService: choiceService,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create choice handler")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return errors.Wrap(err, "failed to listen")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterChoiceServiceServer(srv, choiceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	metricsServer := newMetricsServer(cfg.MetricsAddr)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()
	go func() {
		slog.Info("metrics server starting", "addr", cfg.MetricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- errors.Wrap(err, "failed to serve metrics")
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		healthServer.Shutdown()
		_ = metricsServer.Shutdown(shutdownCtx)

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		return err
	}
}

// newChoiceService wires the catalog, rules engine, handlers and character
// store into the choice orchestrator.
func newChoiceService(cfg *config.Config, rdb redisclient.Client) (*choicesorchestrator.Orchestrator, error) {
	data, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	catalogRepo, err := catalog.NewInMemory(&catalog.Config{Data: data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to index catalog")
	}

	characterRepo, err := character.NewRedis(&character.RedisConfig{
		Client:     rdb,
		Clock:      clock.New(),
		MaxRetries: cfg.TxRetries,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}

	rulesEngine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rules engine")
	}

	ids := idgen.UUID("")

	improvements, err := improvement.New(&improvement.Config{
		Catalog:     catalogRepo,
		IDGenerator: ids,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create improvement service")
	}

	all, err := handlers.All(&handlers.Config{
		Catalog:      catalogRepo,
		Engine:       rulesEngine,
		Improvements: improvements,
		IDGenerator:  ids,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create choice handlers")
	}

	orchestrator, err := choicesorchestrator.New(&choicesorchestrator.Config{
		CharacterRepo: characterRepo,
		Handlers:      all,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create choice orchestrator")
	}

	slog.Info("choice service ready",
		"catalog", cfg.CatalogPath,
		"races", len(data.Races),
		"classes", len(data.Classes),
		"handlers", len(orchestrator.RegisteredTypes()))

	return orchestrator, nil
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}
