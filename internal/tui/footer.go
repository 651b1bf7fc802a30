package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderHeader(title string, width int) string {
	left := headerAppStyle.Background(colorMantle).Render("cwmkit")
	right := lipgloss.NewStyle().Background(colorMantle).Render(" " + title)
	return renderBar(headerBarStyle, max(1, width), left+right, colorMantle)
}

func renderFooter(keys *KeyRegistry, scope string, width int) string {
	bindings := keys.BindingsForScope(scope)
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(keyName(b.Keys[0]), b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, width), line, bg)
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func renderStatusBar(status string, isErr bool, width int) string {
	msg := strings.TrimSpace(status)
	if msg == "" {
		msg = "Ready"
	}
	if isErr {
		return renderBar(statusErrBarStyle, max(1, width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
