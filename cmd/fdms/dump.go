package main

import (
	"flight-dashboard/internal/console"
	"fmt"

	"github.com/spf13/cobra"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the stored dashboard",
	Long:  `Loads the snapshot from the configured store and prints it as text (snapshot lines), json or yaml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		d, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}

		return console.WriteDump(cmd.OutOrStdout(), d.Records(), dumpFormat)
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", console.FormatText, "output format: text, json, yaml")
}
