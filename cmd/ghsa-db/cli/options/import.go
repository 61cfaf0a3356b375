package options

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var _ Interface = &Import{}

type Import struct {
	DBLocation `yaml:",inline" mapstructure:",squash"` // note: json will anonymously embed the struct if there is no tag (like yaml inline)

	// bound options
	Source  string `yaml:"source" json:"source" mapstructure:"source"`
	Workers int    `yaml:"workers" json:"workers" mapstructure:"workers"`
}

func DefaultImport() Import {
	return Import{
		DBLocation: DefaultDBLocation(),
		Source:     "./advisories",
		Workers:    0, // 0 = one worker per CPU
	}
}

func (o *Import) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(
		&o.Source,
		"source", "s", o.Source,
		"directory tree of OSV advisory JSON documents",
	)

	flags.IntVarP(
		&o.Workers,
		"workers", "", o.Workers,
		"number of parse workers (default: one per CPU)",
	)

	o.DBLocation.AddFlags(flags)
}

func (o *Import) BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	// set default values for bound struct items
	if err := Bind(v, "import.source", flags.Lookup("source")); err != nil {
		return err
	}
	if err := Bind(v, "import.workers", flags.Lookup("workers")); err != nil {
		return err
	}

	return o.DBLocation.BindFlags(flags, v)
}
