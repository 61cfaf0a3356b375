package commands

import (
	"github.com/spf13/cobra"

	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/cli/options"
)

func async(f func() error) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)
		if err := f(); err != nil {
			errs <- err
		}
	}()

	return errs
}

func commonConfiguration(cmd *cobra.Command, opts options.Interface) {
	if opts != nil {
		opts.AddFlags(cmd.Flags())
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
