package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/filumlabs/painpoint-agent/internal/db"
	"github.com/filumlabs/painpoint-agent/internal/history"
	"github.com/filumlabs/painpoint-agent/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis server",
	Long: `Starts the pain-point analysis server with a REST API, an analysis
history store, and a minimal web form for interactive use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		var store *history.Store
		if cfg.Server.HistoryDB != "" {
			database, err := db.Open(cfg.Server.HistoryDB)
			if err != nil {
				return fmt.Errorf("opening history database: %w", err)
			}
			defer database.Close()
			store = history.NewStore(database)
		}

		srv := server.New(cfg.Server, eng, cfg.MaxSolutions, store)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "painpoint server v%s starting on %s\n", Version, cfg.Server.Addr)
		fmt.Fprintf(os.Stderr, "  Catalog entries: %d\n", eng.Catalog().Len())
		if cfg.Server.HistoryDB != "" {
			fmt.Fprintf(os.Stderr, "  History database: %s\n", cfg.Server.HistoryDB)
		}

		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
