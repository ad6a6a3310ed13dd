package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/models"
	"github.com/noah-isme/skpi-portal/internal/repository"
	"github.com/noah-isme/skpi-portal/internal/service"
	"github.com/noah-isme/skpi-portal/internal/tui"
	"github.com/noah-isme/skpi-portal/pkg/config"
	"github.com/noah-isme/skpi-portal/pkg/logger"
)

var (
	roleFlag string
	menuFlag string
	logFile  string
	verbose  bool

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "skpi-tui",
	Short: "Terminal SKPI dashboard with simulated roles",
	Long: `skpi-tui renders the SKPI dashboard in the terminal.

Switch roles with 1-3 or tab, move through the sidebar with the arrow keys
and open a menu with enter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logFile == "" {
			log = zap.NewNop()
			return nil
		}
		level := "info"
		if verbose {
			level = "debug"
		}
		var err error
		log, err = logger.Build(logger.Options{Production: true, Level: level, Format: "json", OutputPaths: []string{logFile}})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := newModel(cmd.Context())
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one dashboard frame for --role and --menu and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := newModel(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), model.View())
		return err
	},
}

func newModel(ctx context.Context) (tui.Model, error) {
	role, ok := models.ParseRole(roleFlag)
	if !ok {
		return tui.Model{}, fmt.Errorf("unknown role %q", roleFlag)
	}
	cfg, err := config.Load()
	if err != nil {
		return tui.Model{}, fmt.Errorf("load config: %w", err)
	}
	panels := service.NewPanelService(service.PanelServiceParams{
		Samples: repository.NewSampleRepository(),
		Logger:  log,
		Config: service.PanelServiceConfig{
			NotificationCount: cfg.Dashboard.NotificationCount,
			AvatarURL:         cfg.Dashboard.AvatarURL,
		},
	})
	model := tui.New(ctx, panels, role, log)
	if menuFlag != "" {
		model.OpenMenu(menuFlag)
	}
	log.Info("terminal dashboard ready", zap.String("role", string(role)), zap.String("menu", model.Selection().ActiveMenu))
	return model, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", string(models.DefaultRole), "initial role (student, department, operator)")
	rootCmd.PersistentFlags().StringVar(&menuFlag, "menu", "", "initial menu id, defaults to the role's first entry")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write structured logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug level logging")
	rootCmd.AddCommand(renderCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
