package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/config"
	"github.com/independencecare/chatdesk/internal/logger"
	"github.com/independencecare/chatdesk/internal/widget"
)

type chatOptions struct {
	endpoint string
	offline  bool
	name     string
	contact  string
	reason   string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "widget",
		Short:        "Terminal front end for the Independence Care contact widget",
		SilenceUsage: true,
	}
	root.AddCommand(newChatCmd())
	return root
}

func newChatCmd() *cobra.Command {
	var opts chatOptions

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Fill in the contact form and chat with Rosella",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			applyChatOptions(cfg, opts)

			logr, err := logger.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = logr.Sync() }()

			var backend widget.Backend
			if !opts.offline {
				backend = widget.NewClient(cfg.Widget)
				logr.Debug("widget backend", zap.String("endpoint", cfg.Widget.Endpoint))
			}
			session := widget.NewSession(widget.NewResponder(backend, nil, logr))

			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.endpoint, "endpoint", "", "chat backend URL (overrides WIDGET_ENDPOINT)")
	flags.BoolVar(&opts.offline, "offline", false, "answer every message locally")
	flags.StringVar(&opts.name, "name", "", "your name")
	flags.StringVar(&opts.contact, "contact", "", "your contact number")
	flags.StringVar(&opts.reason, "reason", "", "reason for contacting us")
	flags.StringVar(&opts.logLevel, "log-level", "error", "log level while chatting")

	return cmd
}

// applyChatOptions layers command flags over the environment. Logs go to
// stderr since the conversation owns stdout.
func applyChatOptions(cfg *config.Config, opts chatOptions) {
	if opts.endpoint != "" {
		cfg.Widget.Endpoint = opts.endpoint
	}
	cfg.Log.Level = opts.logLevel
	cfg.Log.Console = "stderr"
}
