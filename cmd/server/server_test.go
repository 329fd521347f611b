package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/character-sheet/internal/config"
	v1alpha1 "github.com/KirkDiggler/character-sheet/internal/handlers/roster/v1alpha1"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func serve(t *testing.T, srv *grpc.Server) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestBuildServerMemoryStore(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv, cleanup, err := buildServer(ctx, testConfig(t))
	require.NoError(t, err)
	defer cleanup()

	conn := serve(t, srv)

	health, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: v1alpha1.ServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.GetStatus())

	client := v1alpha1.NewRosterServiceClient(conn)
	created, err := client.CreateRoster(ctx, &v1alpha1.CreateRosterRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, created.RosterID)
	assert.Len(t, created.Cards, 1)
}

func TestBuildServerRedisStore(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Store.Backend = config.BackendRedis
	cfg.Redis.Endpoints = []string{mr.Addr()}

	srv, cleanup, err := buildServer(ctx, cfg)
	require.NoError(t, err)
	defer cleanup()

	client := v1alpha1.NewRosterServiceClient(serve(t, srv))
	created, err := client.CreateRoster(ctx, &v1alpha1.CreateRosterRequest{})
	require.NoError(t, err)

	assert.True(t, mr.Exists("roster:"+created.RosterID))
	assert.Greater(t, mr.TTL("roster:"+created.RosterID), time.Duration(0))
}

func TestBuildServerRejectsBadRules(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rules.Path = "/nonexistent/rules.yaml"

	_, _, err := buildServer(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewRepositoryUnreachableRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := testConfig(t)
	cfg.Store.Backend = config.BackendRedis
	cfg.Redis.Endpoints = []string{"127.0.0.1:1"}
	cfg.Redis.MaxRetries = -1

	_, _, err := newRepository(ctx, cfg)
	assert.Error(t, err)
}
