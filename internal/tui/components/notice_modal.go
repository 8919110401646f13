package components

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/multipaste/internal/core/styles"
)

const noticeMaxWidth = 60

// NoticeModal is a blocking message box dismissed with enter or esc.
type NoticeModal struct {
	title     string
	message   string
	isError   bool
	dismissed bool
}

// NewNoticeModal creates an informational notice.
func NewNoticeModal(title, message string) NoticeModal {
	return NoticeModal{title: title, message: message}
}

// NewErrorModal creates a notice styled as an error.
func NewErrorModal(title, message string) NoticeModal {
	return NoticeModal{title: title, message: message, isError: true}
}

func (m NoticeModal) Update(msg tea.Msg) (NoticeModal, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc", "q", " ":
			m.dismissed = true
		}
	}
	return m, nil
}

// Dismissed reports whether the user closed the notice.
func (m NoticeModal) Dismissed() bool { return m.dismissed }

func (m NoticeModal) View() string {
	titleStyle := styles.ModalTitleStyle
	icon := styles.IconNotifyInfo
	if m.isError {
		titleStyle = styles.TextErrorStyle.Bold(true)
		icon = styles.IconNotifyError
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(icon+" "+m.title),
		"",
		styles.ConfirmMessageStyle.Width(min(lipgloss.Width(m.message), noticeMaxWidth)).Render(m.message),
		"",
		styles.ModalHelpStyle.Render("enter/esc close"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the notice centered over background.
func (m NoticeModal) Overlay(background string, width, height int) string {
	return center(background, m.View(), width, height)
}
