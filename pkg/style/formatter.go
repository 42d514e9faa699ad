package style

// Formatter wraps rendered text with presentation markers. Implementations
// must return text unchanged when they carry no styling.
type Formatter interface {
	Format(text string) string
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc func(text string) string

// Format implements Formatter
func (f FormatterFunc) Format(text string) string {
	return f(text)
}

// Chain applies formatters left to right
func Chain(formatters ...Formatter) Formatter {
	return FormatterFunc(func(text string) string {
		for _, f := range formatters {
			if f != nil {
				text = f.Format(text)
			}
		}
		return text
	})
}
