// Package app contains the root model of the split layout TUI.
package app

import (
	"github.com/llehouerou/panes/internal/config"
)

// ConfigReloadedMsg carries the result of re-reading the config files.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// ConfigChangedMsg is sent when a watched config file changes on disk.
type ConfigChangedMsg struct{}
