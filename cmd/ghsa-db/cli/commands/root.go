package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/application"
	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/cli/options"
)

var _ options.Interface = &rootConfig{}

type rootConfig struct {
	options.Import `yaml:"import" json:"import" mapstructure:"import"`
}

func (o *rootConfig) AddFlags(flags *pflag.FlagSet) {
	options.AddAllFlags(flags, &o.Import)
}

func (o *rootConfig) BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	return options.BindAllFlags(flags, v, &o.Import)
}

func Root(app *application.Application) *cobra.Command {
	cfg := rootConfig{
		Import: options.DefaultImport(),
	}
	appCfg := app.Config

	cmd := &cobra.Command{
		Use:     application.Name,
		Short:   "import an OSV advisory corpus into a queryable sqlite DB",
		Version: application.ReadBuildInfo().Version,
		Args:    cobra.NoArgs,
		PreRunE: app.Setup(&cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), async(func() error {
				return runImport(importConfig{
					Import: cfg.Import,
				})
			}))
		},
	}

	commonConfiguration(cmd, &cfg)

	cmd.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\n", application.Name))

	flags := cmd.PersistentFlags()

	flags.StringVarP(&appCfg.ConfigPath, "config", "c", "", "path to the application config")
	flags.CountVarP(&appCfg.Log.Verbosity, "verbose", "v", "increase verbosity (-v = debug, -vv = trace)")
	flags.BoolVarP(&appCfg.Log.Quiet, "quiet", "q", false, "suppress all logging output")

	return cmd
}
