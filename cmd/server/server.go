package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/character-sheet/internal/clients/gateway"
	"github.com/KirkDiggler/character-sheet/internal/config"
	"github.com/KirkDiggler/character-sheet/internal/engine"
	"github.com/KirkDiggler/character-sheet/internal/engine/rpgtoolkit"
	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
	"github.com/KirkDiggler/character-sheet/internal/observability"
	"github.com/KirkDiggler/character-sheet/internal/orchestrators/roster"
	"github.com/KirkDiggler/character-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/character-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/character-sheet/internal/redis"
	rosterrepo "github.com/KirkDiggler/character-sheet/internal/repositories/roster"
	"github.com/KirkDiggler/character-sheet/internal/rules"
)

var (
	grpcPort   int
	configPath string
)

var serverCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the gRPC server",
	Long:    `Start the character sheet gRPC server with the roster service and health checks.`,
	RunE:    runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port (overrides server.port)")
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}

	_, flush, err := observability.Setup(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer flush()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	srv, cleanup, err := buildServer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Server.Port,
			"store", cfg.Store.Backend)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

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
		return err
	}
}

// buildServer wires every dependency of the roster service and registers it
// on a new grpc server. cleanup releases the session store.
func buildServer(ctx context.Context, cfg *config.Config) (*grpc.Server, func(), error) {
	rs, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rules: %w", err)
	}

	eng, err := engine.New(&engine.Config{Rules: rs})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	checker, err := rpgtoolkit.NewChecker(&rpgtoolkit.CheckerConfig{
		Engine:     eng,
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create skill checker: %w", err)
	}

	repo, cleanup, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	gw, err := gateway.New(&gateway.Config{
		Endpoint: cfg.Gateway.Endpoint,
		Timeout:  cfg.Gateway.Timeout,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create gateway client: %w", err)
	}

	bus := events.NewBus()
	roster.NewNotifier(slog.Default()).Subscribe(bus)

	rosterService, err := roster.New(&roster.Config{
		Repository:   repo,
		Engine:       eng,
		Checker:      checker,
		Gateway:      gw,
		EventBus:     bus,
		RosterIDs:    idgen.NewUUID(idgen.PrefixRoster),
		CharacterIDs: idgen.NewUUID(idgen.PrefixCharacter),
		Clock:        clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create roster service: %w", err)
	}

	rosterHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RosterService: rosterService,
		Engine:        eng,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create roster handler: %w", err)
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

	v1alpha1.RegisterRosterServiceServer(srv, rosterHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, cleanup, nil
}

// newRepository opens the configured session store
func newRepository(ctx context.Context, cfg *config.Config) (rosterrepo.Repository, func(), error) {
	if cfg.Store.Backend != config.BackendRedis {
		return rosterrepo.NewInMemory(), func() {}, nil
	}

	client, err := redisclient.Connect(ctx, cfg.Redis.Endpoints, &redisclient.Options{
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		UseTLS:       cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	repo, err := rosterrepo.NewRedis(&rosterrepo.RedisConfig{
		Client: client,
		TTL:    cfg.Redis.TTL,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create redis repository: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return repo, cleanup, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
