package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// recordsCmd prints the enabled host overrides of the in-scope zones.
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List enabled host overrides in the managed zones",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, engine, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		records, err := engine.ListRecords(cmd.Context())
		if err != nil {
			return err
		}

		for _, ep := range records {
			l.Info("Record",
				zap.String("dns_name", ep.DNSName),
				zap.String("type", ep.RecordType),
				zap.Strings("targets", ep.Targets),
			)
		}
		l.Info("Listed records", zap.Int("count", len(records)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(recordsCmd)
}
