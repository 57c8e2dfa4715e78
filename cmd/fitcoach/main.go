package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/fitcoach/internal/app"
	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/coach"
	"github.com/jask/fitcoach/internal/config"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/database"
	"github.com/jask/fitcoach/internal/logging"
	"github.com/jask/fitcoach/internal/service"
)

var version = "dev"

type options struct {
	configPath string
	verbose    bool
	name       string
	category   string
	mode       string
}

// cli carries what PersistentPreRunE resolves for the subcommands.
type cli struct {
	opts   options
	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "fitcoach",
		Short: "FitCoach - a fitness coach in your terminal",
		Long: `FitCoach pairs a chat coach with a daily progress dashboard.

Run without arguments to open the app. Pass --name and --category to skip
the setup screen and start chatting straight away.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.opts.configPath, "config", "", "config file (default $FITCOACH_CONFIG or ~/.config/fitcoach/config.toml)")
	root.PersistentFlags().BoolVarP(&c.opts.verbose, "verbose", "v", false, "debug logging")
	root.Flags().StringVar(&c.opts.name, "name", "", "start a conversation with this name")
	root.Flags().StringVar(&c.opts.category, "category", "", "focus area for --name (workout, nutrition, cardio, goals, schedule, motivation)")
	root.Flags().StringVar(&c.opts.mode, "mode", "", "coaching style for --name (quick or detailed)")

	root.AddCommand(c.historyCmd(), c.transcriptCmd(), c.forgetCmd(), c.resetCmd(), c.initConfigCmd(), c.versionCmd())
	return root
}

func (c *cli) init() error {
	cfg, err := config.Load(c.opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level, c.opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.cfg, c.logger = cfg, logger
	return nil
}

func (c *cli) openDB(ctx context.Context) (*sql.DB, error) {
	return database.OpenMigrated(ctx, c.cfg.Database.Path)
}

// deepLink turns --name/--category/--mode into the triggers that carry the
// app from welcome straight into chat.
func deepLink(cat *catalog.Catalog, opts options) ([]core.Trigger, error) {
	if opts.name == "" && opts.category == "" && opts.mode == "" {
		return nil, nil
	}
	if opts.name == "" {
		return nil, errors.New("--name is required")
	}
	if opts.category == "" {
		return nil, errors.New("--category is required with --name")
	}
	category, err := cat.ResolveCategory(opts.category)
	if err != nil {
		return nil, err
	}
	mode := cat.DefaultMode
	if opts.mode != "" {
		md, ok := cat.Mode(opts.mode)
		if !ok {
			return nil, fmt.Errorf("unknown mode %q", opts.mode)
		}
		mode = md.ID
	}
	conv := core.Conversation{Name: opts.name, Category: category.ID, Mode: mode}
	if err := conv.Validate(); err != nil {
		return nil, err
	}
	return []core.Trigger{core.GetStarted(), core.Create(conv)}, nil
}

func (c *cli) runTUI(ctx context.Context) error {
	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	links, err := deepLink(cat, c.opts)
	if err != nil {
		return err
	}
	db, err := c.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.SeedDefaults(ctx, db, cat.SampleProgress); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	loc := c.cfg.Location()
	deps := app.Deps{
		Ctx:          ctx,
		Catalog:      cat,
		LoadProgress: (&service.ProgressStore{DB: db}).Load,
		BotOptions: []coach.Option{
			coach.WithDelay(c.cfg.Coach.TypingDelay),
			coach.WithClock(func() time.Time { return time.Now().In(loc) }),
		},
		MarkdownStyle:     c.cfg.UI.MarkdownStyle,
		AnimationDuration: c.cfg.Progress.AnimationDuration,
		AnimationFrames:   c.cfg.Progress.AnimationFrames,
	}
	if c.cfg.Journal.Enabled {
		deps.Recorder = &service.Journal{DB: db}
	}

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), c.cfg.Keys))
	m := core.NewModel(app.Pages(deps), keys, core.NewCommandRegistry(nil),
		core.WithLogger(c.logger),
		core.WithNavPosition(core.ParseNavPosition(c.cfg.UI.NavPosition)),
	)
	app.ConfigureModel(&m)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if err := config.Watch(c.opts.configPath,
		func(next config.Config) {
			p.Send(core.SettingsChangedMsg{
				NavPosition: core.ParseNavPosition(next.UI.NavPosition),
				TypingDelay: next.Coach.TypingDelay,
			})
		},
		func(err error) { c.logger.Warn("config reload failed", zap.Error(err)) },
	); err != nil {
		c.logger.Debug("config watch disabled", zap.Error(err))
	}
	go func() {
		for _, t := range links {
			p.Send(core.NavigateMsg{Trigger: t})
		}
	}()

	c.logger.Info("starting", zap.String("version", version), zap.String("db", c.cfg.Database.Path), zap.Bool("journal", c.cfg.Journal.Enabled))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
