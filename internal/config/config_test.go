package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		env         map[string]string
		expected    Config
		expectError bool
	}{
		{
			name: "defaults without a file",
			expected: Config{
				ServerAddress:      "0.0.0.0:8080",
				MaxMoviesPerSearch: 20,
				SearchCacheSize:    10,
				GeocodeEndpoint:    "https://maps.googleapis.com/maps/api/geocode/json",
				GeocodeCity:        "san francisco",
				LogLevel:           "info",
			},
		},
		{
			name: "values from file",
			file: "DB_SOURCE=postgres://u:p@db:5432/movies\nSERVER_ADDRESS=:9000\nMAX_MOVIES_PER_SEARCH=5\nSEARCH_CACHE_SIZE=3\n",
			expected: Config{
				DBSource:           "postgres://u:p@db:5432/movies",
				ServerAddress:      ":9000",
				MaxMoviesPerSearch: 5,
				SearchCacheSize:    3,
				GeocodeEndpoint:    "https://maps.googleapis.com/maps/api/geocode/json",
				GeocodeCity:        "san francisco",
				LogLevel:           "info",
			},
		},
		{
			name: "environment overrides file",
			file: "SERVER_ADDRESS=:9000\n",
			env:  map[string]string{"SERVER_ADDRESS": ":7000", "LOG_LEVEL": "debug"},
			expected: Config{
				ServerAddress:      ":7000",
				MaxMoviesPerSearch: 20,
				SearchCacheSize:    10,
				GeocodeEndpoint:    "https://maps.googleapis.com/maps/api/geocode/json",
				GeocodeCity:        "san francisco",
				LogLevel:           "debug",
			},
		},
		{
			name:        "non positive search limit",
			file:        "MAX_MOVIES_PER_SEARCH=0\n",
			expectError: true,
		},
		{
			name:        "non positive cache size",
			file:        "SEARCH_CACHE_SIZE=-1\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				dir = writeEnvFile(t, tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(dir)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
