package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Eason-TWPlus/editor-calendar/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling board web server",
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

			// The store must be reachable before anything is shown;
			// an unreachable store aborts the session up front.
			if _, err := store.ReadAll(ctx); err != nil {
				return fmt.Errorf("row store unreachable: %w", err)
			}

			logger := log.Default()
			handler, err := web.NewHandler(web.Options{
				Config:        cfg,
				Store:         store,
				UseDiskStatic: web.UseDiskStaticByEnv(),
				Logger:        logger,
			})
			if err != nil {
				return err
			}

			logger.Printf("listening on http://localhost%s", cfg.ListenAddr)
			return http.ListenAndServe(cfg.ListenAddr, handler)
		},
	}
}
