package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/application"
	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/cli/options"
	"github.com/ghsa-tools/ghsa-db/pkg/process"
)

var _ options.Interface = &importConfig{}

type importConfig struct {
	options.Import `yaml:"import" json:"import" mapstructure:"import"`
}

func (o *importConfig) AddFlags(flags *pflag.FlagSet) {
	options.AddAllFlags(flags, &o.Import)
}

func (o *importConfig) BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	return options.BindAllFlags(flags, v, &o.Import)
}

func Import(app *application.Application) *cobra.Command {
	cfg := importConfig{
		Import: options.DefaultImport(),
	}

	cmd := &cobra.Command{
		Use:     "import",
		Short:   "import an OSV advisory corpus into a sqlite DB",
		Args:    cobra.NoArgs,
		PreRunE: app.Setup(&cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), async(func() error {
				return runImport(cfg)
			}))
		},
	}

	commonConfiguration(cmd, &cfg)

	return cmd
}

func runImport(cfg importConfig) error {
	// make the db dir if it does not already exist
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("unable to make db dir: %w", err)
			}
		}
	}

	_, err := process.Import(process.ImportConfig{
		Source:  cfg.Source,
		DBPath:  cfg.Path,
		Workers: cfg.Workers,
	})
	return err
}
