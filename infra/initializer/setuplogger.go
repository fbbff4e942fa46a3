package initializer

import (
	"log/slog"
	"os"

	"github.com/amirasaad/socialmedia/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	key   string
	icon  string
	color string
}

var levelStyles = []levelStyle{
	{level: log.DebugLevel, key: "debug", icon: "🐛", color: "#7E57C2"},
	{level: log.InfoLevel, key: "info", icon: "ℹ️", color: "#04B575"},
	{level: log.WarnLevel, key: "warn", icon: "⚠️", color: "#EE6FF8"},
	{level: log.ErrorLevel, key: "error", icon: "❌", color: "#FF6B6B"},
}

// setupLogger builds a charmbracelet handler from cfg, installs it as the
// slog default and returns it.
func setupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	for _, ls := range levelStyles {
		color := lipgloss.AdaptiveColor{Light: ls.color, Dark: ls.color}
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
		styles.Keys[ls.key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[ls.key] = lipgloss.NewStyle().Bold(true)
	}
	muted := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
	for _, key := range []string{"op", "prefix", "caller", "time"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(muted)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	handler := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
