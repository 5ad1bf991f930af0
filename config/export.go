package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExportConfig controls where the sweep table is written. An empty path
// disables export.
type ExportConfig struct {
	Path string `json:"path"`
}

// Validate checks the destination format when export is enabled.
func (c ExportConfig) Validate() error {
	if c.Path == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".json", ".csv":
		return nil
	}
	return fmt.Errorf("unsupported export format: %s", filepath.Ext(c.Path))
}
