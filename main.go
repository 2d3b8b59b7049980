package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/election/cliparse"
	"github.com/danielhkuo/election/db"
	"github.com/danielhkuo/election/election"
	"github.com/danielhkuo/election/middleware"
	"github.com/danielhkuo/election/router"
	"github.com/danielhkuo/election/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg cliparse.Config

	cmd := &cobra.Command{
		Use:   "election",
		Short: "Election vote and tally server",
		Long:  `Casts citizens' votes against their quota and serves live tallies`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = cliparse.Resolve(cmd.Flags(), cfg)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete every vote, keeping citizens and candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, conn, err := openEngine(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			return engine.Reset(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tally",
		Short: "Print the current ranking, party totals and sex ratio",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, conn, err := openEngine(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			return printTally(cmd.Context(), cmd.OutOrStdout(), engine)
		},
	})

	return cmd
}

// openEngine connects to the configured database, makes sure the schema
// exists and builds the engine on top of it.
func openEngine(cfg cliparse.Config) (*election.Engine, *sql.DB, error) {
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, nil, err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	st, err := store.New(conn, cfg.DatabaseType)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	opts := []election.Option{election.WithLogSalt(cfg.LogSalt)}
	if cfg.SerializeQuota {
		opts = append(opts, election.WithSerializedQuota())
		slog.Info("Quota checks serialized per citizen")
	}

	return election.New(st, opts...), conn, nil
}

func serve(cfg cliparse.Config) error {
	engine, conn, err := openEngine(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	server := http.Server{
		Handler: middleware.CORS(router.NewRouter(engine, cfg)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	slog.Info("Server closed")
	return nil
}
