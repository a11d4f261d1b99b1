package cli

import (
	"github.com/spf13/cobra"

	"github.com/Eason-TWPlus/editor-calendar/internal/ops"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Dump the sheet to CSV (stdout if no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return ops.ExportCSVFile(ctx, store, args[0])
			}
			return ops.ExportCSV(ctx, store, cmd.OutOrStdout())
		},
	}
}
