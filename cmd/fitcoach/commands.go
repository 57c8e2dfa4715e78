package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/fitcoach/internal/coach"
	"github.com/jask/fitcoach/internal/config"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/database"
	"github.com/jask/fitcoach/internal/service"
)

func (c *cli) historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled conversations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			convs, err := (&service.Journal{DB: db}).History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(convs) == 0 {
				fmt.Fprintln(out, "No conversations yet.")
				return nil
			}
			for _, conv := range convs {
				last := humanize.Time(conv.CreatedAt)
				if conv.LastMessageAt != nil {
					last = humanize.Time(*conv.LastMessageAt)
				}
				fmt.Fprintf(out, "%s  %-24s %-11s %-9s %s, %s\n",
					conv.ID, conv.Name, conv.Category, conv.Mode,
					english.Plural(conv.Messages, "message", ""), last)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum conversations to list")
	return cmd
}

func (c *cli) transcriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcript [conversation-id]",
		Short: "Print every message of one conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			conv, msgs, err := (&service.Journal{DB: db}).Transcript(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			loc := c.cfg.Location()
			fmt.Fprintf(out, "%s (%s, %s)\n", conv.Name, conv.Category, conv.Mode)
			for _, m := range msgs {
				who := "Coach"
				if m.Sender == coach.SenderUser {
					who = "You"
				}
				fmt.Fprintf(out, "[%s] %s: %s\n", m.Timestamp.In(loc).Format("2006-01-02 15:04"), who, m.Content)
			}
			return nil
		},
	}
}

func (c *cli) forgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget [conversation-id]",
		Short: "Delete one conversation and its messages from the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			if err := (&service.Journal{DB: db}).Forget(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Forgot %s.\n", args[0])
			return nil
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the chat journal (progress data and schema are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			db, err := c.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			maint := &service.MaintenanceService{DB: db}
			removed, err := maint.Reset(cmd.Context())
			if err != nil {
				return err
			}
			if err := maint.Compact(cmd.Context()); err != nil {
				c.logger.Warn("compact after reset failed", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", english.Plural(int(removed), "conversation", ""))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func (c *cli) initConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.opts.configPath
			if path == "" {
				path = config.Path()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg := c.cfg
			if len(cfg.Keys) == 0 {
				cfg.Keys = core.DefaultKeybindingsByAction(core.DefaultKeyBindings())
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// versionCmd prints the build version and the schema version of the
// configured database, without creating one.
func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and database schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "fitcoach "+version)
			if _, err := os.Stat(c.cfg.Database.Path); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(out, "schema none")
				return nil
			}
			v, ok, err := database.SchemaVersion(c.cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("schema version: %w", err)
			}
			if !ok {
				fmt.Fprintln(out, "schema none")
				return nil
			}
			fmt.Fprintf(out, "schema %d\n", v)
			return nil
		},
	}
}
