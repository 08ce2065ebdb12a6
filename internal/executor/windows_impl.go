//go:build windows
// +build windows

package executor

import (
	"context"
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	spiGetDeskWallpaper = 0x0073
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var procSystemParametersInfo = windows.NewLazySystemDLL("user32.dll").NewProc("SystemParametersInfoW")

// WindowsExecutor handles wallpaper setting on Windows systems
type WindowsExecutor struct {
	logger *zap.Logger
}

// NewExecutor creates a new platform-specific wallpaper executor (Windows implementation)
func NewExecutor(logger *zap.Logger) (*WindowsExecutor, error) {
	if err := procSystemParametersInfo.Find(); err != nil {
		return nil, fmt.Errorf("SystemParametersInfoW unavailable: %w", err)
	}
	logger.Info("Windows wallpaper setter initialized")
	return &WindowsExecutor{logger: logger}, nil
}

// SetWallpaper sets the desktop wallpaper through SystemParametersInfoW
func (e *WindowsExecutor) SetWallpaper(ctx context.Context, imagePath string) error {
	path, err := windows.UTF16PtrFromString(imagePath)
	if err != nil {
		return fmt.Errorf("invalid wallpaper path: %w", err)
	}

	ret, _, callErr := procSystemParametersInfo.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(path)),
		spifUpdateIniFile|spifSendChange,
	)
	if ret == 0 {
		return fmt.Errorf("failed to set wallpaper: %w", callErr)
	}

	e.logger.Info("Wallpaper set successfully", zap.String("path", imagePath))
	return nil
}

// GetCurrentWallpaper reads the wallpaper path from SystemParametersInfoW
func (e *WindowsExecutor) GetCurrentWallpaper(ctx context.Context) (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	ret, _, callErr := procSystemParametersInfo.Call(
		spiGetDeskWallpaper,
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&buf[0])),
		0,
	)
	if ret == 0 {
		return "", fmt.Errorf("failed to query wallpaper: %w", callErr)
	}

	path := windows.UTF16ToString(buf)
	if path == "" {
		return "", fmt.Errorf("no wallpaper is set")
	}
	return path, nil
}
