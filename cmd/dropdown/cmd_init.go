package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/dropdown/internal/config"
	"github.com/spf13/cobra"
)

var initYes bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample definition file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvePath()
		if len(args) == 1 {
			path = args[0]
		}

		multiple, searchable, clearable := false, true, true
		if !initYes {
			features := []string{"searchable", "clearable"}
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewMultiSelect[string]().
						Title("Which features should the dropdown have?").
						Options(
							huh.NewOption("Multiple selection", "multiple"),
							huh.NewOption("Search box", "searchable"),
							huh.NewOption("Clear icon", "clearable"),
						).
						Value(&features),
				),
			).Run()
			if err != nil {
				return err
			}
			multiple, searchable, clearable = hasFeature(features, "multiple"), hasFeature(features, "searchable"), hasFeature(features, "clearable")

			if _, err := os.Stat(path); err == nil {
				var overwrite bool
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
							Value(&overwrite),
					),
				).Run()
				if err != nil {
					return err
				}
				if !overwrite {
					fmt.Fprintln(cmd.OutOrStdout(), "Left existing definition unchanged.")
					return nil
				}
			}
		}

		if err := writeDefinition(path, config.Sample(multiple, searchable, clearable)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "skip prompts and overwrite")
}

func hasFeature(features []string, name string) bool {
	for _, f := range features {
		if f == name {
			return true
		}
	}
	return false
}

// writeDefinition validates def and writes it to path, creating parent
// directories.
func writeDefinition(path string, def config.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	data, err := config.Marshal(def)
	if err != nil {
		return fmt.Errorf("encoding definition: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing definition: %w", err)
	}
	return nil
}
