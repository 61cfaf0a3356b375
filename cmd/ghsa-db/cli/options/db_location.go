package options

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var _ Interface = &DBLocation{}

type DBLocation struct {
	// bound options
	Path string `yaml:"db" json:"db" mapstructure:"db"`

	// unbound options
	// (none)
}

func DefaultDBLocation() DBLocation {
	return DBLocation{
		Path: "./advisories.db",
	}
}

func (o *DBLocation) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(
		&o.Path,
		"db", "d", o.Path,
		"path of the sqlite database to write",
	)
}

func (o *DBLocation) BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	// set default values for bound struct items
	if err := Bind(v, "import.db", flags.Lookup("db")); err != nil {
		return err
	}

	// set default values for non-bound struct items
	// (none)

	return nil
}
