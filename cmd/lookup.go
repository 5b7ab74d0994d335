package cmd

import (
	"fmt"

	"data-exporter/core/output"

	"github.com/spf13/cobra"
)

// enumCmd represents the enum command
var enumCmd = &cobra.Command{
	Use:   "enum <reference>",
	Short: "Resolve an enum reference",
	Long:  `Prints the display name of an enum reference such as E_InventorySlotType::NewEnumerator1.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		name, err := a.enums.ResolveEnumDisplayName(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

// stringsCmd represents the strings command
var stringsCmd = &cobra.Command{
	Use:   "strings <tableId>",
	Short: "Print every entry of a string table",
	Long:  `Prints a string table such as /Game/Localization/ST_Items.ST_Items as a JSON object.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		table, err := a.strings.ResolveAllStrings(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, table.Map())
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := output.EncodeJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func init() {
	RootCmd.AddCommand(enumCmd)
	RootCmd.AddCommand(stringsCmd)
}
