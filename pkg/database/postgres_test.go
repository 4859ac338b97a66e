package database

import (
	"testing"

	"movie-api/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	tests := []struct {
		name   string
		config utils.DatabaseConfig
		want   string
	}{
		{
			name:   "defaults sslmode and omits empty port",
			config: utils.DatabaseConfig{Host: "localhost", Name: "movies", User: "app", Password: "secret"},
			want:   "user=app password=secret dbname=movies sslmode=disable host=localhost",
		},
		{
			name: "explicit port and sslmode",
			config: utils.DatabaseConfig{
				Host: "db", Port: "5433", Name: "movies", User: "app", Password: "secret", SSLMode: "require",
			},
			want: "user=app password=secret dbname=movies sslmode=require host=db port=5433",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConnString(tt.config))
		})
	}
}

func TestConnString_Parses(t *testing.T) {
	cfg, err := pgxpool.ParseConfig(ConnString(utils.DatabaseConfig{
		Host: "db", Port: "5433", Name: "movies", User: "app", Password: "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.ConnConfig.Host)
	assert.EqualValues(t, 5433, cfg.ConnConfig.Port)
	assert.Equal(t, "movies", cfg.ConnConfig.Database)
	assert.Equal(t, "app", cfg.ConnConfig.User)
}
