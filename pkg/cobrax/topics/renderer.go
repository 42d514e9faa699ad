package topics

// Renderer formats topic content for the terminal
type Renderer interface {
	// Render receives the raw content and the file extension, dot included.
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render implements Renderer
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
