package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textboard/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"zero rows", func(c *Config) { c.Board.Rows = 0 }, "board.rows"},
		{"zero refresh", func(c *Config) { c.Board.RefreshInterval = 0 }, "board.refresh_interval"},
		{"negative width", func(c *Config) { c.Stream.Width = -1 }, "stream.width"},
		{"timestamp without format", func(c *Config) {
			c.Stream.Timestamp = true
			c.Stream.TimestampFormat = ""
		}, "stream.timestamp_format"},
		{"no room for the stream", func(c *Config) { c.Board.Rows = 3 }, "board.rows"},
		{"bare stream fits one row", func(c *Config) {
			c.Board.Rows = 1
			c.Header.Enabled = false
			c.Status.Enabled = false
			c.Stream.Title = ""
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.key == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestFixedRows(t *testing.T) {
	cfg := &Config{Board: Board{Rows: 10, RefreshInterval: Duration(time.Second)}}
	assert.Equal(t, 0, cfg.FixedRows())
	assert.Equal(t, 10, cfg.StreamCapacity())

	cfg.Header.Enabled = true
	cfg.Status.Enabled = true
	cfg.Stream.Title = "t"
	assert.Equal(t, 3, cfg.FixedRows())
	assert.Equal(t, 7, cfg.StreamCapacity())
}
