package chat

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	renderer *glamour.TermRenderer
	mu       sync.RWMutex
)

// InitMarkdown initializes the markdown renderer with the given width
func InitMarkdown(width int) error {
	mu.Lock()
	defer mu.Unlock()

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	renderer = r
	return nil
}

// RenderMarkdown renders markdown content to terminal format, falling
// back to plain text if rendering fails or was never initialized.
func RenderMarkdown(content string) string {
	mu.RLock()
	defer mu.RUnlock()

	if renderer == nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
