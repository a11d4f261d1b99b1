package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eason-TWPlus/editor-calendar/internal/schedule"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check store connectivity, sheet schema, and row dates",
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

			snap, err := schedule.LoadSnapshot(ctx, store)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "store backend: %s\n", cfg.Store.Backend)
			fmt.Fprintf(out, "schema: ok\n")
			fmt.Fprintf(out, "tasks: %d\n", len(snap.Tasks))
			if len(snap.Invalid) == 0 {
				fmt.Fprintf(out, "invalid dates: none\n")
				return nil
			}
			fmt.Fprintf(out, "invalid dates: %d row(s) excluded from the calendar\n", len(snap.Invalid))
			for _, inv := range snap.Invalid {
				fmt.Fprintf(out, "  id=%s startDate=%q endDate=%q\n", inv.ID, inv.RawStart, inv.RawEnd)
			}
			return nil
		},
	}
}
