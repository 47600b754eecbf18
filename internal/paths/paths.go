package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns ~/.dropdown, or $DROPDOWN_HOME when set.
func Dir() string {
	if d := os.Getenv("DROPDOWN_HOME"); d != "" {
		return d
	}
	return filepath.Join(home(), ".dropdown")
}

// DefinitionFile returns ~/.dropdown/dropdown.yaml.
func DefinitionFile() string {
	return filepath.Join(Dir(), "dropdown.yaml")
}

// DebugLog returns ~/.dropdown/debug.log.
func DebugLog() string {
	return filepath.Join(Dir(), "debug.log")
}
