package db

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"seller-be/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	t.Run("Config defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_USER", "seller")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "sellers")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_SSLMODE", "")

		dsn := buildDSN(config.LoadConfig())

		assert.Equal(t, "host=db.internal user=seller password=secret dbname=sellers port=5432 sslmode=disable", dsn)
	})

	t.Run("Config overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_SSLMODE", "verify-full")

		dsn := buildDSN(config.LoadConfig())

		assert.Contains(t, dsn, "port=6543")
		assert.Contains(t, dsn, "sslmode=verify-full")
	})

	t.Run("Empty sslmode", func(t *testing.T) {
		dsn := buildDSN(&config.Config{DBHost: "localhost", DBPort: "5432"})
		assert.Contains(t, dsn, "sslmode=disable")
	})
}

// mockConfig registers a sqlmock connection under the DSN cfg builds, so
// newDatabaseWithDriver can open it through the "sqlmock" driver.
func mockConfig(t *testing.T, name string) (*config.Config, sqlmock.Sqlmock) {
	t.Helper()
	cfg := &config.Config{
		DBHost: "localhost",
		DBUser: "seller",
		DBName: name,
		DBPort: "5432",
	}
	mockDB, mock, err := sqlmock.NewWithDSN(buildDSN(cfg), sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return cfg, mock
}

func TestNewDatabaseWithDriver(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg, mock := mockConfig(t, "sellers_ok")
		mock.ExpectPing()

		conn, err := newDatabaseWithDriver(cfg, "sqlmock")
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		assert.NotNil(t, conn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ping failure", func(t *testing.T) {
		cfg, mock := mockConfig(t, "sellers_down")
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		conn, err := newDatabaseWithDriver(cfg, "sqlmock")
		assert.Nil(t, conn)
		assert.ErrorContains(t, err, "failed to ping DB")
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conn, err := newDatabaseWithDriver(&config.Config{}, "no_such_driver")
		assert.Nil(t, conn)
		assert.ErrorContains(t, err, "failed to connect to DB")
	})
}

func TestInitDB_ExitsWhenUnreachable(t *testing.T) {
	if os.Getenv("SELLER_DB_CRASHER") == "1" {
		// nothing listens on port 1, so the ping is refused right away
		InitDB(&config.Config{DBHost: "127.0.0.1", DBPort: "1"})
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestInitDB_ExitsWhenUnreachable")
	cmd.Env = append(os.Environ(), "SELLER_DB_CRASHER=1")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.False(t, exitErr.Success())
}
