package postgres

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testPostgresImage = "postgres:16-alpine"
	testPostgresPort  = "5432/tcp"
)

var (
	postgresContainerOnce sync.Once
	postgresContainerURL  string
	postgresContainerErr  error
)

// testDatabaseURL returns TEST_DATABASE_URL, or starts a shared PostgreSQL container
// for the package when Docker is reachable. Otherwise the test is skipped.
func testDatabaseURL(t *testing.T) string {
	t.Helper()

	if databaseURL := os.Getenv("TEST_DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}

	if !isDockerAvailable() {
		t.Skip("TEST_DATABASE_URL not set and Docker not available; skipping PostgreSQL integration test")
	}

	postgresContainerOnce.Do(func() {
		postgresContainerURL, postgresContainerErr = startPostgresContainer(context.Background())
	})
	require.NoError(t, postgresContainerErr)

	return postgresContainerURL
}

func isDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// startPostgresContainer runs a throwaway PostgreSQL; the testcontainers reaper removes it after the run.
func startPostgresContainer(ctx context.Context) (string, error) {
	req := testcontainers.ContainerRequest{
		Image:        testPostgresImage,
		ExposedPorts: []string{testPostgresPort},
		Env: map[string]string{
			"POSTGRES_USER":     "seguridad",
			"POSTGRES_PASSWORD": "seguridad",
			"POSTGRES_DB":       "seguridad",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(testPostgresPort),
		).WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to start postgres container")
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get container host")
	}

	port, err := container.MappedPort(ctx, testPostgresPort)
	if err != nil {
		return "", errors.Wrap(err, "failed to get mapped port")
	}

	return fmt.Sprintf("postgres://seguridad:seguridad@%s:%s/seguridad?sslmode=disable", host, port.Port()), nil
}
