package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	root "passgen"
	"passgen/pkg/domain"
	"passgen/pkg/password"
	"passgen/pkg/storage"
	"passgen/pkg/storage/postgres"
	"passgen/pkg/storage/sqlstore"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func setupTestDB(t *testing.T) *sqlstore.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres tests need docker")
	}
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Container.Terminate(ctx) })

	st, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Migrate(ctx, root.Migrations))

	return st
}

func TestOptions_ConnString(t *testing.T) {
	opts := postgres.Options{
		Username: "u",
		Password: "p",
		Host:     "db",
		Port:     5432,
		Database: "passgen",
		SslMode:  "disable",
	}

	require.Equal(t, "host=db port=5432 user=u dbname=passgen password=p sslmode=disable", opts.ConnString())
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := postgres.New(ctx, postgres.Options{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "u",
		Password: "p",
		Database: "passgen",
		SslMode:  "disable",
	})
	require.ErrorContains(t, err, "could not reach postgres at 127.0.0.1:1")
}

func TestPostgres_History(t *testing.T) {
	st := setupTestDB(t)
	ctx := context.Background()
	require.Equal(t, sqlstore.DialectPostgres, st.Dialect())

	for i := 0; i < 5; i++ {
		v := fmt.Sprintf("Pw-%d-xyz!", i)
		_, err := st.AppendEntries(ctx, domain.HistoryEntry{Password: v, Strength: password.Score(v)})
		require.NoError(t, err)
	}

	err := st.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.TrimEntries(ctx, 3)

		return err
	})
	require.NoError(t, err)

	got, err := st.RecentEntries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Pw-4-xyz!", got[0].Password)
	require.Equal(t, "Pw-2-xyz!", got[2].Password)
	require.Equal(t, password.StrengthStrong, got[0].Strength)

	deleted, err := st.ClearEntries(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, deleted)
}
