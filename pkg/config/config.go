package config

import (
	"time"

	"github.com/arthur-debert/textboard/pkg/logging"
)

var log = logging.GetLogger("config")

// Config is the effective textboard configuration
type Config struct {
	Board  Board  `koanf:"board" toml:"board"`
	Header Header `koanf:"header" toml:"header"`
	Stream Stream `koanf:"stream" toml:"stream"`
	Status Status `koanf:"status" toml:"status"`
	Styles Styles `koanf:"styles" toml:"styles"`
}

// Board holds the settings of the root container
type Board struct {
	Rows            int      `koanf:"rows" toml:"rows"`
	ClearScreen     bool     `koanf:"clear_screen" toml:"clear_screen"`
	RefreshInterval Duration `koanf:"refresh_interval" toml:"refresh_interval"`
}

// Header is the line above the stream
type Header struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Style   string `koanf:"style" toml:"style"`
}

// Stream is the streaming sector
type Stream struct {
	Title           string `koanf:"title" toml:"title"`
	TitleStyle      string `koanf:"title_style" toml:"title_style"`
	DrawEmpty       bool   `koanf:"draw_empty" toml:"draw_empty"`
	LineStyle       string `koanf:"line_style" toml:"line_style"`
	Timestamp       bool   `koanf:"timestamp" toml:"timestamp"`
	TimestampFormat string `koanf:"timestamp_format" toml:"timestamp_format"`
	Width           int    `koanf:"width" toml:"width"`
}

// Status is the line below the stream
type Status struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Style   string `koanf:"style" toml:"style"`
}

// Styles points at style overrides
type Styles struct {
	Theme string `koanf:"theme" toml:"theme"`
}

// Duration is a time.Duration written as "250ms" in TOML
type Duration time.Duration

// Std returns d as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// FixedRows returns the rows taken by everything but the stream lines
func (c *Config) FixedRows() int {
	rows := 0
	if c.Header.Enabled {
		rows++
	}
	if c.Status.Enabled {
		rows++
	}
	if c.Stream.Title != "" {
		rows++
	}
	return rows
}

// StreamCapacity returns how many streamed lines fit on the board
func (c *Config) StreamCapacity() int {
	return c.Board.Rows - c.FixedRows()
}
