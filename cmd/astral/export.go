package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the whole app state as JSON",
	Long:  "Serialize the persisted state to stdout or a file, in the same shape the persistence layer stores.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "",
		"Write to file instead of stdout")
	exportCmd.Flags().StringVar(&briefDBOverride, "db", "",
		"Database path (overrides config and ASTRAL_DB_PATH)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, blob, _, err := openLocalStore(ctx)
	if err != nil {
		return err
	}
	defer blob.Close()

	data, err := store.Export()
	if err != nil {
		return fmt.Errorf("export state: %w", err)
	}

	if exportOutputPath == "" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}

	if err := os.WriteFile(exportOutputPath, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "State written to %s (%d bytes)\n", exportOutputPath, len(data))
	return nil
}
