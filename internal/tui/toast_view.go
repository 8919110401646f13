package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/multipaste/internal/core/notify"
	"github.com/colonyops/multipaste/internal/core/styles"
)

// toastMaxLines caps how tall a single toast may grow.
const toastMaxLines = 4

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders toast notifications above the status bar.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack, oldest at top and newest at bottom.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t.notification))
	}
	return strings.Join(rendered, "\n")
}

func toastStyle(level notify.Level) (string, lipgloss.Style) {
	switch level {
	case notify.LevelError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

func renderToast(n notify.Notification) string {
	icon, style := toastStyle(n.Level)

	// border and padding take four columns
	body := ansi.Wordwrap(icon+" "+n.Message, toastWidth-4, "")
	if lines := strings.Split(body, "\n"); len(lines) > toastMaxLines {
		lines = lines[:toastMaxLines]
		lines[toastMaxLines-1] = ansi.Truncate(lines[toastMaxLines-1], toastWidth-5, "") + "…"
		body = strings.Join(lines, "\n")
	}
	return style.Width(toastWidth).Render(body)
}

// Overlay composites the toast stack over background in the lower-right
// corner, leaving the status bar visible.
func (v *ToastView) Overlay(background string, width, height int) string {
	content := v.View()
	if content == "" {
		return background
	}

	toastLayer := lipgloss.NewLayer(content)
	x := max(width-lipgloss.Width(content)-1, 0)
	y := max(height-lipgloss.Height(content)-1, 0)
	toastLayer.X(x).Y(y).Z(2)

	return lipgloss.NewCompositor(lipgloss.NewLayer(background), toastLayer).Render()
}
