package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textboard/pkg/board"
)

func TestTextStyleZeroValueIsPassThrough(t *testing.T) {
	var s TextStyle
	assert.True(t, s.IsZero())
	assert.Equal(t, "hello  ", s.Format("hello  "))
}

func TestTextStyleCodes(t *testing.T) {
	tests := []struct {
		name  string
		style TextStyle
		want  []pterm.Color
	}{
		{"foreground", TextStyle{FG: Red}, []pterm.Color{31}},
		{"light foreground", TextStyle{FG: LightCyan}, []pterm.Color{96}},
		{"background is fg plus ten", TextStyle{BG: Blue}, []pterm.Color{44}},
		{"light background", TextStyle{BG: LightBlack}, []pterm.Color{100}},
		{"bold", TextStyle{Bold: true}, []pterm.Color{1}},
		{"faint italic", TextStyle{Faint: true, Italic: true}, []pterm.Color{2, 3}},
		{"decorations", TextStyle{Underline: true, BlinkSlow: true, BlinkFast: true, CrossedOut: true}, []pterm.Color{4, 5, 6, 9}},
		{"both blink rates", TextStyle{BlinkSlow: true, BlinkFast: true}, []pterm.Color{pterm.Blink, pterm.FastBlink}},
		{"colors first", TextStyle{Bold: true, FG: Green, BG: White}, []pterm.Color{32, 47, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.Codes())
			assert.False(t, tt.style.IsZero())
		})
	}
}

func TestTextStyleFormatKeepsText(t *testing.T) {
	s := TextStyle{FG: Red, Bold: true}
	assert.Contains(t, s.Format("alert"), "alert")
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Light_Cyan")
	require.NoError(t, err)
	assert.Equal(t, LightCyan, c)

	c, err = ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, ColorNone, c)

	_, err = ParseColor("chartreuse")
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	upper := FormatterFunc(strings.ToUpper)
	brackets := FormatterFunc(func(s string) string { return "[" + s + "]" })

	assert.Equal(t, "[ABC]", Chain(upper, nil, brackets).Format("abc"))
}

func TestDefaultRegistry(t *testing.T) {
	for _, name := range []string{"Title", "Header", "Text", "Muted", "Timestamp", "Success", "Error"} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, Default.Has(name), "style %s should be defined", name)
		})
	}
	assert.NotEmpty(t, Default.Names())
}

func TestRegistryNamed(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadData([]byte(`
styles:
  Plain: {}
`)))

	assert.Nil(t, r.Named(""))
	assert.Equal(t, "as is", r.Named("Missing").Format("as is"))
	assert.Contains(t, r.Named("Plain").Format("text  "), "text")
}

func TestRegistryNamedResolvesLazily(t *testing.T) {
	r := NewRegistry()
	f := r.Named("Late")
	assert.Equal(t, "x", f.Format("x"))

	require.NoError(t, r.LoadData([]byte("styles:\n  Late: { bold: true }\n")))
	assert.True(t, r.Has("Late"))
	assert.Contains(t, f.Format("x"), "x")
}

func TestRegistryKeepsTabs(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadData([]byte("styles:\n  Strong: { bold: true, foreground: red }\n")))

	f, err := board.NewField("cell", board.Width(4), board.Text("a\tb"), board.Style(r.Named("Strong")))
	require.NoError(t, err)

	rendered := f.Render()
	assert.Contains(t, rendered, "a\tb ")
	assert.NotContains(t, rendered, "a    b")
}

func TestRegistryLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  accent: { light: "#000000", dark: "#FFFFFF" }
styles:
  Accent: { foreground: accent, bold: true }
  Literal: { foreground: "#FF0000" }
`), 0644))

	r := NewRegistry()
	require.NoError(t, r.Load(path))
	assert.Equal(t, []string{"Accent", "Literal"}, r.Names())
	assert.True(t, r.Get("Accent").GetBold())
}

func TestRegistryLoadErrors(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Load(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, r.LoadData([]byte("styles: [not, a, map]")))
}

func TestRegistryMerge(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.LoadData([]byte(`
styles:
  Strong: { bold: true }
  Slanted: { italic: true }
`)))

	merged := r.Merge("Strong", "Slanted")
	assert.True(t, merged.GetBold())
	assert.True(t, merged.GetItalic())
}
