package chat

import (
	"fmt"
	"strings"

	"github.com/manduvi/mentor-tui/internal/styles"
	"github.com/manduvi/mentor-tui/internal/transcript"
)

// renderTranscript renders every entry, oldest first.
func (m Model) renderTranscript() string {
	var sb strings.Builder
	for i, entry := range m.transcript.Entries() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderEntry(entry))
	}
	return sb.String()
}

// renderEntry renders one transcript entry with its annotations.
func (m Model) renderEntry(entry transcript.Entry) string {
	if entry.IsPlaceholder {
		return m.typing.View() + "\n"
	}

	var sb strings.Builder

	switch entry.Author {
	case transcript.AuthorUser:
		sb.WriteString(styles.UserLabel().Render("Você"))
		sb.WriteString("\n")
		sb.WriteString(styles.UserMessage().Width(m.width - 2).Render(entry.Text))
		sb.WriteString("\n")
	case transcript.AuthorAssistant:
		sb.WriteString(styles.AssistantLabel().Render("Mentor"))
		sb.WriteString("\n")

		body := strings.TrimSpace(RenderMarkdown(entry.Text))
		sb.WriteString(styles.AssistantMessage().Width(m.width - 2).Render(body))
		sb.WriteString("\n")

		if entry.XPAwarded != nil && *entry.XPAwarded != 0 {
			sb.WriteString(styles.XPBadge().Render(fmt.Sprintf("%+d XP", *entry.XPAwarded)))
			sb.WriteString("\n")
		}

		if len(entry.Sources) > 0 {
			sb.WriteString(styles.SourceStyle().Render("Fontes:"))
			sb.WriteString("\n")
			for _, src := range entry.Sources {
				sb.WriteString(styles.SourceStyle().Render("• " + src.Source))
				sb.WriteString("\n")
			}
		}

		if entry.NextTask != "" {
			sb.WriteString(styles.NextTaskStyle().Render("Próximo passo: " + entry.NextTask))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
