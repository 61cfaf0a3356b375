package options

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Interface is implemented by every option group so that commands can compose
// them.
type Interface interface {
	AddFlags(flags *pflag.FlagSet)
	BindFlags(flags *pflag.FlagSet, v *viper.Viper) error
}

func AddAllFlags(flags *pflag.FlagSet, objects ...Interface) {
	for _, o := range objects {
		o.AddFlags(flags)
	}
}

func BindAllFlags(flags *pflag.FlagSet, v *viper.Viper, objects ...Interface) error {
	for _, o := range objects {
		if err := o.BindFlags(flags, v); err != nil {
			return err
		}
	}
	return nil
}

func Bind(v *viper.Viper, key string, flag *pflag.Flag) error {
	return v.BindPFlag(key, flag)
}
