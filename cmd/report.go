package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report on the parsed game data",
}

// duplicatesCmd represents the report duplicates command
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "List items sharing a wiki name",
	Long:  `Lists documented items whose wiki name is already used by another item. Only the last of them appears in Items.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		duplicates, err := a.wiki.DuplicateNames(cmd.Context())
		if err != nil {
			return err
		}
		for _, d := range duplicates {
			a.logger.Warn("Duplicated item name",
				zap.String("name", d.Name),
				zap.String("item", d.RowName),
				zap.String("previous", d.Previous),
			)
		}
		if duplicates == nil {
			return printJSON(cmd, []any{})
		}
		return printJSON(cmd, duplicates)
	},
}

// tagsCmd represents the report tags command
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every gameplay tag used by an item",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		tags, err := a.wiki.GameplayTags(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, tags)
	},
}

func init() {
	reportCmd.AddCommand(duplicatesCmd)
	reportCmd.AddCommand(tagsCmd)
	RootCmd.AddCommand(reportCmd)
}
