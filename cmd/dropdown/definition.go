package main

import (
	"errors"
	"fmt"

	"github.com/ruminaider/dropdown/internal/config"
	"github.com/ruminaider/dropdown/internal/paths"
)

var definitionPath string

// resolvePath returns the --file value or the default definition location.
func resolvePath() string {
	if definitionPath != "" {
		return definitionPath
	}
	return paths.DefinitionFile()
}

// loadDefinition loads the definition named by --file.
func loadDefinition() (config.Definition, string, error) {
	path := resolvePath()
	def, err := config.Load(path)
	if errors.Is(err, config.ErrNotFound) && definitionPath == "" {
		return config.Definition{}, path, fmt.Errorf("%w\nRun \"dropdown init\" to create one", err)
	}
	return def, path, err
}
