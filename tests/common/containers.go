package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	gatewayBuildOnce  sync.Once
	gatewayBuildError error
	gatewayContainer  *GatewayContainer
	gatewayOnce       sync.Once
	gatewayStartErr   error
)

// GatewayContainer wraps a testcontainers environment running the gateway image.
// The Discogs API URL points at an unroutable address so tests exercising the
// upstream error path fail fast instead of hitting the real service.
type GatewayContainer struct {
	gateway testcontainers.Container
	ctx     context.Context
	cancel  context.CancelFunc
	url     string
}

// URL returns the base URL of the running gateway container.
func (g *GatewayContainer) URL() string {
	return g.url
}

// CollectLogs saves container stdout/stderr to dir/.
func (g *GatewayContainer) CollectLogs(dir string) {
	if g == nil || g.gateway == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	os.MkdirAll(dir, 0755)

	reader, err := g.gateway.Logs(ctx)
	if err != nil {
		return
	}
	defer reader.Close()

	logs, err := io.ReadAll(reader)
	if err != nil {
		return
	}
	os.WriteFile(filepath.Join(dir, "gateway.log"), logs, 0644)
}

// Cleanup tears down the container.
// Uses a fresh context for teardown in case the main context expired.
func (g *GatewayContainer) Cleanup() {
	if g == nil {
		return
	}

	cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cleanupCancel()

	if g.gateway != nil {
		g.gateway.Terminate(cleanupCtx)
	}
	if g.cancel != nil {
		g.cancel()
	}
}

// buildGatewayImage builds the discogs-mcp-server:test Docker image once per test run.
func buildGatewayImage() error {
	gatewayBuildOnce.Do(func() {
		ctx := context.Background()
		projectRoot := FindProjectRoot()

		req := testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    projectRoot,
					Dockerfile: "tests/docker/Dockerfile.server",
					Repo:       "discogs-mcp-server",
					Tag:        "test",
					KeepImage:  true,
				},
			},
		}

		_, gatewayBuildError = testcontainers.GenericContainer(ctx, req)
		if gatewayBuildError != nil {
			// Image may have built successfully even if container creation failed
			if strings.Contains(gatewayBuildError.Error(), "discogs-mcp-server:test") {
				gatewayBuildError = nil
			}
		}
	})
	return gatewayBuildError
}

// startTestEnvironment starts the gateway container and waits for /health.
func startTestEnvironment() (*GatewayContainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)

	gatewayCtr, err := testcontainers.Run(ctx, "discogs-mcp-server:test",
		testcontainers.WithExposedPorts("3002/tcp"),
		testcontainers.WithEnv(map[string]string{
			"DISCOGS_SERVER_HOST": "0.0.0.0",
			"DISCOGS_API_URL":     "http://127.0.0.1:9",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/health").WithPort("3002/tcp").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("start gateway: %w", err)
	}

	mappedPort, err := gatewayCtr.MappedPort(ctx, "3002/tcp")
	if err != nil {
		gatewayCtr.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("get gateway mapped port: %w", err)
	}

	host, err := gatewayCtr.Host(ctx)
	if err != nil {
		gatewayCtr.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("get gateway host: %w", err)
	}

	url := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	return &GatewayContainer{
		gateway: gatewayCtr,
		ctx:     ctx,
		cancel:  cancel,
		url:     url,
	}, nil
}

// StartGateway starts the test environment (one per test process).
// Returns nil when DISCOGS_TEST_URL is set (manual mode -- tests use the existing server).
func StartGateway(t *testing.T) *GatewayContainer {
	t.Helper()
	if os.Getenv("DISCOGS_TEST_URL") != "" {
		return nil
	}
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	gatewayOnce.Do(func() {
		if err := buildGatewayImage(); err != nil {
			gatewayStartErr = fmt.Errorf("build gateway image: %w", err)
			return
		}
		var err error
		gatewayContainer, err = startTestEnvironment()
		if err != nil {
			gatewayStartErr = err
		}
	})

	if gatewayStartErr != nil {
		t.Fatalf("Failed to start test environment: %v", gatewayStartErr)
	}
	return gatewayContainer
}

// CleanupGateway collects logs and tears down the shared container, if one was started.
// Intended for TestMain after m.Run().
func CleanupGateway() {
	if gatewayContainer == nil {
		return
	}
	gatewayContainer.CollectLogs(GetResultsDir())
	gatewayContainer.Cleanup()
	gatewayContainer = nil
}

// FindProjectRoot walks up from the working directory to the go.mod root.
func FindProjectRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
