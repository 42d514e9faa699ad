package config

import (
	"github.com/arthur-debert/textboard/pkg/errors"
)

// Validate checks that the layout fits the board
func (c *Config) Validate() error {
	if c.Board.Rows < 1 {
		return invalid("board.rows", c.Board.Rows, "board.rows must be at least 1, got %d", c.Board.Rows)
	}
	if c.Board.RefreshInterval <= 0 {
		return invalid("board.refresh_interval", c.Board.RefreshInterval.Std().String(),
			"board.refresh_interval must be positive, got %s", c.Board.RefreshInterval.Std())
	}
	if c.Stream.Width < 0 {
		return invalid("stream.width", c.Stream.Width, "stream.width must not be negative, got %d", c.Stream.Width)
	}
	if c.Stream.Timestamp && c.Stream.TimestampFormat == "" {
		return invalid("stream.timestamp_format", "", "stream.timestamp_format must be set when stream.timestamp is on")
	}
	if c.StreamCapacity() < 1 {
		return invalid("board.rows", c.Board.Rows,
			"board.rows is %d but header, title and status already take %d rows; the stream needs at least one",
			c.Board.Rows, c.FixedRows())
	}
	return nil
}

func invalid(key string, value interface{}, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, format, args...).
		WithDetail("key", key).
		WithDetail("value", value)
}
