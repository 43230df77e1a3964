package topics

// Renderer formats topic content for the terminal. format is the topic's
// file extension.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFunc adapts a markdown renderer: .md topics go through render,
// anything else is returned as is.
type RendererFunc func(markdown string) string

// Render implements Renderer.
func (f RendererFunc) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	return f(content)
}
