package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVICE_NAME", "SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "KAFKA_BROKERS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "hamburgeria", cfg.ServiceName)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "5432", cfg.DBPort)
	require.Equal(t, "postgres", cfg.DBUser)
	require.Equal(t, "bb_db", cfg.DBName)
	require.Nil(t, cfg.KafkaBrokers)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "hamburgeria",
	}
	require.Equal(t, "postgres://app:secret@db:5433/hamburgeria?sslmode=disable", cfg.DSN())
}

func TestCSV(t *testing.T) {
	require.Nil(t, CSV(""))
	require.Equal(t, []string{"a:9092", "b:9092"}, CSV(" a:9092 , b:9092 ,"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	require.Equal(t, 8080, EnvIntDefault("SERVER_PORT", 8080))

	t.Setenv("SERVER_PORT", "9090")
	require.Equal(t, 9090, EnvIntDefault("SERVER_PORT", 8080))
}
