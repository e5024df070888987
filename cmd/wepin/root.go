package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wepin/wepin-common-go/internal/config"
	"github.com/wepin/wepin-common-go/internal/logger"
	"github.com/wepin/wepin-common-go/internal/output"
	"github.com/wepin/wepin-common-go/pkg/sdkurl"
	"github.com/wepin/wepin-common-go/pkg/werrors"
	"go.uber.org/zap"
)

// app holds the state shared by every subcommand once the root pre-run has
// loaded the configuration.
type app struct {
	configPath string
	format     string

	cfg      *config.Config
	resolver *sdkurl.Resolver
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "wepin",
		Short:             "Wepin SDK helper utilities",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config File Path")
	root.PersistentFlags().StringVarP(&a.format, "format", "o", "", "Output format: "+fmt.Sprint(output.AvailableFormatterNames()))

	root.AddCommand(
		urlsCommand(a),
		keyTypeCommand(a),
		balanceCommand(a),
		errorsCommand(a),
		readyCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewParser().Load(a.configPath)
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.Environment); err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	ctx := logger.WithFields(cmd.Context(), zap.String("command", cmd.Name()))
	cmd.SetContext(ctx)

	opts, err := cfg.ResolverOptions(logger.Sugar(ctx))
	if err != nil {
		return err
	}
	resolver, err := sdkurl.NewResolver(opts...)
	if err != nil {
		return fmt.Errorf("could not build url resolver: %w", err)
	}

	a.cfg = cfg
	a.resolver = resolver
	logger.Debug(ctx, "configuration loaded", zap.String("environment", cfg.Environment))
	return nil
}

func (a *app) outputFormat() string {
	if a.format != "" {
		return a.format
	}
	return a.cfg.OutputFormat
}

func (a *app) render(cmd *cobra.Command, doc *output.Document) error {
	return output.Render(cmd.OutOrStdout(), a.outputFormat(), doc)
}

// appKey picks the positional argument, falling back to the configured key.
func (a *app) appKey(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if a.cfg.AppKey != "" {
		return a.cfg.AppKey, nil
	}
	return "", werrors.Newf(werrors.CodeInvalidParameter, "app key is required (argument, app_key or WEPIN_APP_KEY)")
}
