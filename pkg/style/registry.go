// Package style turns field text into styled terminal output.
//
// Two formatter families are provided: TextStyle composes raw SGR attributes
// (the 16 standard colors plus weight and decoration), and Registry maps
// semantic names such as "Title" or "Muted" to lipgloss styles loaded from a
// YAML theme with adaptive light/dark colors.
//
// Theme files look like:
//
//	colors:
//	  accent: { light: "#007ACC", dark: "#3D9EFF" }
//	styles:
//	  Title: { foreground: accent, bold: true }
package style

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML. Only attributes that keep
// the text on a single row of unchanged width are supported.
type StyleDef struct {
	Bold          bool   `yaml:"bold,omitempty"`
	Faint         bool   `yaml:"faint,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
	Blink         bool   `yaml:"blink,omitempty"`
	Reverse       bool   `yaml:"reverse,omitempty"`
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
}

// Config represents a complete theme
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Registry maps semantic names to lipgloss styles
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

// Default is the registry loaded from the embedded theme
var Default = NewRegistry()

func init() {
	if err := Default.LoadData(embeddedStyles); err != nil {
		Default.initDefaultStyles()
	}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor),
		styles: make(map[string]lipgloss.Style),
	}
}

// initDefaultStyles installs unstyled entries for the names the dashboard
// relies on, so a broken theme degrades to plain text
func (r *Registry) initDefaultStyles() {
	r.colors = make(map[string]lipgloss.AdaptiveColor)
	r.styles = make(map[string]lipgloss.Style)
	for _, name := range []string{"Title", "Header", "Muted", "Success", "Error", "Timestamp", "Text"} {
		r.styles[name] = newStyle()
	}
}

// newStyle returns an empty style that leaves tabs alone, so styling never
// changes the width of fixed-width text
func newStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// Load replaces the registry content with the theme at path
func (r *Registry) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	if err := r.LoadData(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadData replaces the registry content with the given YAML theme
func (r *Registry) LoadData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	styles := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		styles[name] = buildStyle(def, colors)
	}

	r.colors = colors
	r.styles = styles
	return nil
}

// buildStyle constructs a lipgloss style from a style definition. Color
// references that are not palette names are used as literal colors.
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := newStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Strikethrough {
		style = style.Strikethrough(true)
	}
	if def.Blink {
		style = style.Blink(true)
	}
	if def.Reverse {
		style = style.Reverse(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(resolveColor(def.Foreground, colors))
	}
	if def.Background != "" {
		style = style.Background(resolveColor(def.Background, colors))
	}

	return style
}

func resolveColor(ref string, colors map[string]lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	if color, ok := colors[ref]; ok {
		return color
	}
	return lipgloss.Color(ref)
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Get safely retrieves a style, returning an empty style for unknown names
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return newStyle()
}

// Names returns the defined style names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge combines several named styles, later names taking precedence
func (r *Registry) Merge(names ...string) lipgloss.Style {
	result := newStyle()
	for i := len(names) - 1; i >= 0; i-- {
		result = result.Inherit(r.Get(names[i]))
	}
	return result
}

// Named returns a Formatter resolving name at format time, so reloading a
// theme restyles fields that were already built
func (r *Registry) Named(name string) Formatter {
	if name == "" {
		return nil
	}
	return FormatterFunc(func(text string) string {
		style, ok := r.styles[name]
		if !ok {
			return text
		}
		return style.Render(text)
	})
}

// GetStyle retrieves a style from the default registry
func GetStyle(name string) lipgloss.Style {
	return Default.Get(name)
}

// Named returns a Formatter for a style of the default registry
func Named(name string) Formatter {
	return Default.Named(name)
}

// LoadTheme replaces the default registry content with the theme at path
func LoadTheme(path string) error {
	return Default.Load(path)
}
