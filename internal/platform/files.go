package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// ExportDirName is the folder created under the user's documents for exports.
const ExportDirName = "D2Pad"

// DefaultExportDir returns the standard export directory for the user.
func DefaultExportDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Documents", ExportDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// UniqueExportPath builds a collision-free file path in dir for an export,
// combining a timestamp with a short unique suffix.
func UniqueExportPath(dir, base, ext string) string {
	stamp := time.Now().Format("20060102-150405")
	suffix := uuid.New().String()[:8]
	return filepath.Join(dir, fmt.Sprintf("%s-%s-%s%s", base, stamp, suffix, ext))
}

// RevealInFileManager opens the file in the system file manager and
// highlights it where the platform supports selection.
func RevealInFileManager(filePath string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, filePath).Start()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+filePath).Start()
	case OSLinux:
		// File selection is not standardized on Linux, so open the parent
		// directory instead.
		return exec.Command(XDGOpenCommand, filepath.Dir(filePath)).Start()
	default:
		return fmt.Errorf("revealing files is not supported on %s", runtime.GOOS)
	}
}
