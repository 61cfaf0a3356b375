package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/anchore/go-logger/adapter/logrus"
	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/cli/options"
	"github.com/ghsa-tools/ghsa-db/internal"
	"github.com/ghsa-tools/ghsa-db/internal/log"
)

const Name = internal.ApplicationName

type Application struct {
	Config *Config
}

func New() *Application {
	return &Application{
		Config: &Config{},
	}
}

// Setup returns a PreRunE that binds flags and config to viper, loads the
// application config, and stands up the logger before the command runs.
func (a *Application) Setup(opts options.Interface) func(cmd *cobra.Command, args []string) error {
	v := newViper()
	return func(cmd *cobra.Command, _ []string) error {
		// bind command options to viper
		if opts != nil {
			if err := opts.BindFlags(cmd.Flags(), v); err != nil {
				return err
			}
		}

		if err := a.Config.BindFlags(cmd.Root().PersistentFlags(), v); err != nil {
			return fmt.Errorf("unable to bind persistent flags: %w", err)
		}

		if err := a.Config.Load(v); err != nil {
			return fmt.Errorf("invalid application config: %w", err)
		}

		// setup command config...
		if opts != nil {
			if err := v.Unmarshal(opts); err != nil {
				return fmt.Errorf("unable to unmarshal command configuration for cmd=%q: %w", strings.TrimSpace(cmd.CommandPath()), err)
			}
		}

		if err := setupLogger(a.Config); err != nil {
			return err
		}

		logVersion()
		logConfiguration(a.Config, opts)

		return nil
	}
}

func (a Application) Run(ctx context.Context, errs <-chan error) error {
	select {
	case err := <-errs:
		if err != nil {
			log.Error(err.Error())
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func logConfiguration(app *Config, opts interface{}) {
	var optsStr string

	if opts != nil {
		// yaml is pretty human friendly (at least when compared to json)
		if cfgBytes, err := yaml.Marshal(&opts); err != nil {
			optsStr = fmt.Sprintf("%+v", opts)
		} else {
			optsStr = string(cfgBytes)
		}
	}

	log.Debugf("config:\n%+v", app.String()+"\n"+optsStr)
}

func logVersion() {
	versionInfo := ReadBuildInfo()
	log.Infof("%s version: %+v", Name, versionInfo.Version)
}

func setupLogger(app *Config) error {
	cfg := logrus.Config{
		EnableConsole: !app.Log.Quiet,
		FileLocation:  app.Log.FileLocation,
		Level:         app.Log.Level,
	}

	l, err := logrus.New(cfg)
	if err != nil {
		return err
	}

	log.Set(l)

	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetEnvPrefix(strings.ToUpper(strings.ReplaceAll(Name, "-", "_")))
	v.AutomaticEnv()
	return v
}
