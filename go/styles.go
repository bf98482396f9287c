package main

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#7f849c"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorRoot    lipgloss.Color = "#f38ba8"
	colorBox     lipgloss.Color = "#313244"
	colorCursor  lipgloss.Color = "#f9e2af"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	wireStyle     = lipgloss.NewStyle().Foreground(colorBorder)
	nutStyle      = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	noteStyle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	rootStyle     = lipgloss.NewStyle().Foreground(colorRoot).Bold(true)
	boxStyle      = lipgloss.NewStyle().Background(colorBox)
	cursorStyle   = lipgloss.NewStyle().Reverse(true).Foreground(colorCursor)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErr     = lipgloss.NewStyle().Foreground(colorError)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
