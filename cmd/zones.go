package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// zonesCmd prints the zones the webhook manages.
var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the in-scope Unbound zones",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, engine, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		zones, err := engine.Zones(cmd.Context())
		if err != nil {
			return err
		}

		l.Info("In-scope zones",
			zap.Strings("filters", engine.DomainFilters()),
			zap.Strings("zones", zones),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(zonesCmd)
}
