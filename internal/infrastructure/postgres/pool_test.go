package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/pkg/config"
)

func TestBuildPoolConfig_DesdeCampos(t *testing.T) {
	cfg := config.DBConfig{
		Host: "127.0.0.1", Port: 5433, User: "hotel", Password: "s3cr3t",
		DBName: "hotel_inventory", SSLMode: "disable", MaxConns: 8, MinConns: 20,
	}

	pc, err := buildPoolConfig(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "hotel_inventory", pc.ConnConfig.Database)
	assert.Equal(t, int32(8), pc.MaxConns)
	// MinConns nunca supera MaxConns
	assert.Equal(t, int32(8), pc.MinConns)
	assert.NotNil(t, pc.AfterConnect)
	assert.NotNil(t, pc.ConnConfig.DialFunc)
}

func TestBuildPoolConfig_DatabaseURLTienePrioridad(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgres://app:pw@127.0.0.1/otra_db?sslmode=disable",
		Host:        "ignorado", Port: 1, DBName: "hotel_inventory",
	}

	pc, err := buildPoolConfig(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, "otra_db", pc.ConnConfig.Database)
	assert.Equal(t, uint16(5432), pc.ConnConfig.Port)
}

func TestResolveIPv4_Literales(t *testing.T) {
	ip, err := resolveIPv4(context.Background(), "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = resolveIPv4(context.Background(), "::1")
	assert.ErrorIs(t, err, errNoIPv4)
}

func TestWithIPv4Host_AgregaPuertoPorDefecto(t *testing.T) {
	got := withIPv4Host(context.Background(), "postgres://u:p@127.0.0.1/db")
	assert.Equal(t, "postgres://u:p@127.0.0.1:5432/db", got)

	assert.Equal(t, "://mal", withIPv4Host(context.Background(), "://mal"))
}
