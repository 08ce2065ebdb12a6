//go:build linux
// +build linux

package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// WallpaperCommand represents a detected wallpaper setter command
type WallpaperCommand struct {
	Name   string
	Binary string
	Args   []string // %s will be replaced with image path

	// Query reads back the current wallpaper; nil when the setter keeps no state
	Query func(ctx context.Context) (string, error)
}

var (
	// Ordered list of wallpaper commands to try (highest priority first)
	wallpaperCommands = []WallpaperCommand{
		// Hyprland - swww (recommended)
		{Name: "swww", Binary: "swww", Args: []string{"img", "%s"}, Query: querySwww},
		// Hyprland - hyprpaper
		{Name: "hyprpaper", Binary: "hyprctl", Args: []string{"hyprpaper", "wallpaper", ",%s"}, Query: queryHyprpaper},
		// swaybg (Sway/Wayland)
		{Name: "swaybg", Binary: "swaybg", Args: []string{"-i", "%s", "-m", "fill"}},
		// GNOME (dark theme)
		{Name: "gnome", Binary: "gsettings", Args: []string{"set", "org.gnome.desktop.background", "picture-uri-dark", "file://%s"}, Query: queryGnome},
		// Generic X11 - feh
		{Name: "feh", Binary: "feh", Args: []string{"--bg-fill", "%s"}, Query: queryFeh},
		// Generic X11 - nitrogen
		{Name: "nitrogen", Binary: "nitrogen", Args: []string{"--set-zoom-fill", "%s"}, Query: queryNitrogen},
	}
)

// LinuxExecutor handles wallpaper setting on Linux systems
type LinuxExecutor struct {
	logger  *zap.Logger
	command WallpaperCommand
}

// NewExecutor creates a new platform-specific wallpaper executor (Linux implementation)
func NewExecutor(logger *zap.Logger) (*LinuxExecutor, error) {
	cmd := detectCommand(logger)
	if cmd.Binary == "" {
		return nil, fmt.Errorf("no supported wallpaper command found on this system")
	}

	logger.Info("Wallpaper setter detected",
		zap.String("name", cmd.Name),
		zap.String("binary", cmd.Binary))

	return &LinuxExecutor{
		logger:  logger,
		command: cmd,
	}, nil
}

// detectCommand analyzes the environment to choose the best wallpaper command
func detectCommand(logger *zap.Logger) WallpaperCommand {
	desktop := os.Getenv("XDG_CURRENT_DESKTOP")
	session := os.Getenv("XDG_SESSION_TYPE")
	wayland := os.Getenv("WAYLAND_DISPLAY")
	hyprland := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")

	logger.Debug("Detecting wallpaper command",
		zap.String("desktop", desktop),
		zap.String("session", session),
		zap.String("wayland", wayland),
		zap.String("hyprland", hyprland))

	if hyprland != "" {
		if cmd, ok := firstAvailable("swww", "hyprpaper"); ok {
			return cmd
		}
	}

	if strings.Contains(strings.ToLower(desktop), "gnome") {
		if cmd, ok := firstAvailable("gnome"); ok {
			return cmd
		}
	}

	if wayland != "" || session == "wayland" {
		if cmd, ok := firstAvailable("swww", "swaybg"); ok {
			return cmd
		}
	}

	// Fallback: try all commands in order
	for _, cmd := range wallpaperCommands {
		if commandExists(cmd.Binary) {
			logger.Info("Using fallback wallpaper command", zap.String("name", cmd.Name))
			return cmd
		}
	}

	return WallpaperCommand{}
}

func firstAvailable(names ...string) (WallpaperCommand, bool) {
	for _, cmd := range wallpaperCommands {
		for _, name := range names {
			if cmd.Name == name && commandExists(cmd.Binary) {
				return cmd, true
			}
		}
	}
	return WallpaperCommand{}, false
}

// commandExists checks if a binary exists in PATH
func commandExists(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// SetWallpaper sets the desktop wallpaper to the specified image
func (e *LinuxExecutor) SetWallpaper(ctx context.Context, imagePath string) error {
	args := buildArgs(e.command.Args, imagePath)

	e.logger.Debug("Setting wallpaper",
		zap.String("command", e.command.Binary),
		zap.Strings("args", args),
		zap.String("path", imagePath))

	cmd := exec.CommandContext(ctx, e.command.Binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to set wallpaper with %s: %w (output: %s)",
			e.command.Name, err, string(output))
	}

	e.logger.Info("Wallpaper set successfully",
		zap.String("command", e.command.Name),
		zap.String("path", imagePath))

	return nil
}

// GetCurrentWallpaper asks the detected setter which image is showing
func (e *LinuxExecutor) GetCurrentWallpaper(ctx context.Context) (string, error) {
	if e.command.Query == nil {
		return "", fmt.Errorf("%s cannot report the current wallpaper", e.command.Name)
	}
	path, err := e.command.Query(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query wallpaper with %s: %w", e.command.Name, err)
	}
	if path == "" {
		return "", fmt.Errorf("%s reported no wallpaper", e.command.Name)
	}
	return path, nil
}

// buildArgs substitutes the image path into the command template
func buildArgs(template []string, imagePath string) []string {
	args := make([]string, len(template))
	for i, arg := range template {
		args[i] = strings.ReplaceAll(arg, "%s", imagePath)
	}
	return args
}

func runQuery(ctx context.Context, binary string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, binary, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func queryGnome(ctx context.Context) (string, error) {
	out, err := runQuery(ctx, "gsettings", "get", "org.gnome.desktop.background", "picture-uri-dark")
	if err != nil {
		return "", err
	}
	return parseGsettingsURI(out), nil
}

func querySwww(ctx context.Context) (string, error) {
	out, err := runQuery(ctx, "swww", "query")
	if err != nil {
		return "", err
	}
	return parseSwwwQuery(out), nil
}

func queryHyprpaper(ctx context.Context) (string, error) {
	out, err := runQuery(ctx, "hyprctl", "hyprpaper", "listactive")
	if err != nil {
		return "", err
	}
	return parseHyprpaperActive(out), nil
}

func queryFeh(ctx context.Context) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(home, ".fehbg"))
	if err != nil {
		return "", err
	}
	return parseFehbg(string(data)), nil
}

func queryNitrogen(ctx context.Context) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(home, ".config", "nitrogen", "bg-saved.cfg"))
	if err != nil {
		return "", err
	}
	return parseNitrogenConfig(string(data)), nil
}

// parseGsettingsURI turns 'file:///a/b.jpg' into /a/b.jpg
func parseGsettingsURI(out string) string {
	s := strings.Trim(strings.TrimSpace(out), "'\"")
	return strings.TrimPrefix(s, "file://")
}

// parseSwwwQuery reads the first "image: <path>" entry
func parseSwwwQuery(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if _, after, ok := strings.Cut(line, "image: "); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// parseHyprpaperActive reads the first "<monitor> = <path>" entry
func parseHyprpaperActive(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if _, after, ok := strings.Cut(line, "="); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// parseFehbg takes the last quoted argument of the feh invocation
func parseFehbg(script string) string {
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "feh ") {
			continue
		}
		end := strings.LastIndexByte(line, '\'')
		if end <= 0 {
			continue
		}
		start := strings.LastIndexByte(line[:end], '\'')
		if start < 0 {
			continue
		}
		return line[start+1 : end]
	}
	return ""
}

// parseNitrogenConfig reads the first file= entry
func parseNitrogenConfig(cfg string) string {
	for _, line := range strings.Split(cfg, "\n") {
		if path, ok := strings.CutPrefix(strings.TrimSpace(line), "file="); ok {
			return path
		}
	}
	return ""
}
