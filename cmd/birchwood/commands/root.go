package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"birchwood/internal/app"
)

var (
	backendURL string
	configPath string
	logLevel   string
	timeout    time.Duration
	refreshes  int

	appCtx *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "birchwood",
		Short:        "Birchwood Fishing & Camping in your terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(app.LoadOptions{
				ConfigPath: configPath,
				Overrides: app.Config{
					BaseURL:  backendURL,
					Timeout:  timeout,
					LogLevel: logLevel,
				},
			})
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w.App()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&backendURL, "backend", "", "content service base URL (env "+app.EnvBackendURL+")")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.birchwood/config.jsonc)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "off|error|warn|info|debug|trace")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default 15s)")
	root.PersistentFlags().IntVar(&refreshes, "refresh", 0, "pull to refresh this many times after loading")

	root.AddCommand(homeCmd(), campingCmd(), fishingCmd(), contactCmd(), galleryCmd())
	return root
}

// mountAndRefresh loads a screen and then applies --refresh.
func mountAndRefresh[T any](ctx context.Context, mount, refresh func(context.Context) T) T {
	st := mount(ctx)
	for i := 0; i < refreshes; i++ {
		st = refresh(ctx)
	}
	return st
}
