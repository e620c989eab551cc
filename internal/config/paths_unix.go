//go:build !windows

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".bin2h", "config.yaml"),
		"/etc/bin2h/config.yaml",
	}
}
