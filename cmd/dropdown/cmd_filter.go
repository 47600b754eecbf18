package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/ruminaider/dropdown/internal/config"
	"github.com/ruminaider/dropdown/options"
	"github.com/ruminaider/dropdown/selection"
	"github.com/spf13/cobra"
)

var (
	filterQuery    string
	filterSelected string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the options the widget would show",
	Long:  "filter applies a search query and the current selection to the definition and prints the visible options without starting the interface.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def, _, err := loadDefinition()
		if err != nil {
			return err
		}
		selected := config.ParseValues(filterSelected)
		if !def.Multiple && len(selected) > 1 {
			return fmt.Errorf("single selection accepts one value, got %d", len(selected))
		}
		return runFilter(cmd.OutOrStdout(), def, filterQuery, selected)
	},
}

func init() {
	filterCmd.Flags().StringVarP(&filterQuery, "query", "q", "", "search text")
	filterCmd.Flags().StringVar(&filterSelected, "selected", "", "comma separated values treated as selected")
}

// runFilter projects the definition's options and writes them as a table.
func runFilter(w io.Writer, def config.Definition, query string, selected []string) error {
	if len(selected) > 0 {
		def.Value = selected
	}
	mode := def.Mode()
	list := def.List()
	value := def.InitialValue()

	match, _ := options.MatcherByName(def.Matcher)
	visible := options.Project(list, options.Query{
		Text:    query,
		Exclude: selection.Exclusions(mode, value),
		Matcher: match,
	})
	if options.LeafCount(visible) == 0 {
		_, err := fmt.Fprintln(w, def.NoOptions())
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"GROUP", "VALUE", "LABEL", "STATE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rowsOf(visible, value))
	table.Render()
	return nil
}

func rowsOf(visible options.List, value selection.Value) [][]string {
	var rows [][]string
	add := func(group string, o options.Option) {
		state := ""
		switch {
		case o.Disabled:
			state = "disabled"
		case value.Contains(o.Value):
			state = "selected"
		}
		rows = append(rows, []string{group, o.Value, o.Label, state})
	}
	for _, it := range visible {
		switch v := it.(type) {
		case options.Option:
			add("", v)
		case options.Group:
			for _, o := range v.Options {
				add(v.Label, o)
			}
		}
	}
	return rows
}
