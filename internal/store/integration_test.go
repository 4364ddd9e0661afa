//go:build integration

package store

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/baxromumarov/goalie-stats/internal/goalie"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	testcontainers.Logger = log.New(io.Discard, "", 0)
	ctx := context.Background()

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "goalies",
				"POSTGRES_PASSWORD": "goalies",
				"POSTGRES_DB":       "nhl",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(context.Background()); err != nil {
			t.Fatal(err)
		}
	})

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)
	return fmt.Sprintf("postgres://goalies:goalies@%s:%s/nhl?sslmode=disable", host, port.Port())
}

func TestPostgresRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(startPostgres(t))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.EnsureSchema(ctx))

	batch := []goalie.Record{record(t, "John Doe"), record(t, "Jane Roe")}
	require.NoError(t, s.Append(ctx, batch))
	require.NoError(t, s.Append(ctx, batch))

	n, err := s.Count(ctx, Filter{Source: "mp"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	got, err := s.ListGoalies(ctx, Filter{Player: "doe"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0.912, *got[0].SVPct)
	assert.NotEmpty(t, got[0].CreatedAt)
}
