package main

import (
	"fmt"
	"os"
	"time"

	_ "taskboard/docs"
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/identity"
	"taskboard/internal/logger"
	"taskboard/internal/server"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// @title           Taskboard API
// @version         1.0
// @description     Projects, columns and tasks with drag-and-drop reordering.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskboard",
		Short:         "Kanban task board service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newTokenCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env)
			defer func() { _ = log.Sync() }()

			s, err := server.Init(cfg, log)
			if err != nil {
				log.Errorw("server initialization failed", "error", err)
				return err
			}
			return s.Run()
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|version]",
		Short:     "Manage the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env).Component("migrate")
			defer func() { _ = log.Sync() }()

			m := database.NewMigrator(cfg)
			switch args[0] {
			case "up":
				if err := m.Up(); err != nil {
					return err
				}
				log.Infow("migrations applied")
			case "down":
				if err := m.Down(); err != nil {
					return err
				}
				log.Infow("rolled back one migration")
			case "version":
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			}
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		name   string
		avatar string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			id := uuid.New()
			if userID != "" {
				if id, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("invalid --user-id: %w", err)
				}
			}

			issuer := auth.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
			token, err := issuer.GenerateToken(identity.Principal{
				ID:              id,
				Email:           email,
				DisplayNameHint: name,
				AvatarHint:      avatar,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "user id (random when empty)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&name, "name", "", "display name claim")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL claim")
	return cmd
}
