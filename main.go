package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/store"
)

// Version is set at build time with -ldflags.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio site with live section tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
		SilenceUsage: true,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the portfolio web server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		newContentCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
			},
		},
	)
	return root
}

func newContentCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Print the effective portfolio content as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			cs, err := loadContent(cfg)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cs.Document())
			}
			data, err := cs.YAML()
			if err != nil {
				return fmt.Errorf("encoding content: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return cmd
}

func loadContent(cfg *Config) (*content.Store, error) {
	if cfg.ContentFile == "" {
		return content.Default(), nil
	}
	return content.Load(cfg.ContentFile)
}

func runServe() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cs, err := loadContent(cfg)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	db, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	srv, err := newServer(cfg, db, cs, newSMTPMailer(cfg.SMTP, cfg.ContactEmail))
	if err != nil {
		return err
	}
	// Clean up old visitor data for privacy compliance (run in background)
	go srv.cleanupOldVisitorData()

	log.Printf("Tracking sections with the %q strategy", cfg.Tracker.Strategy)
	return srv.routes().Run(":" + cfg.Port)
}
