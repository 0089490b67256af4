package main

import (
	"flight-dashboard/internal/adapters/flatfile"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored dashboard with a flat-file snapshot",
	Long: `Reads a snapshot in the line format
  bucketID flightID depHH depMM etaHH etaMM startHH startMM endHH endMM
and saves it into the configured store, replacing its contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, err := flatfile.NewStore(args[0]).Load(ctx)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.Save(ctx, d); err != nil {
			return fmt.Errorf("import: %w", err)
		}

		slog.InfoContext(ctx, "snapshot imported",
			slog.String("source", args[0]),
			slog.String("store", cfg.StoreBackend),
			slog.Int("flight_plans", d.Len()))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d flight-plans in %d buckets into the %s store.\n",
			d.Len(), d.BucketCount(), cfg.StoreBackend)
		return nil
	},
}
