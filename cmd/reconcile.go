package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"unbound-webhook/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/external-dns/plan"
)

var (
	changesFile    string
	dryRunChanges  bool
	yesConfirm     bool
	confirmInput   io.Reader = os.Stdin
	confirmMessage io.Writer = os.Stdout
)

// reconcileCmd applies a change-set file outside of external-dns.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Apply an external-dns change-set file to Unbound",
	Long: `Lists the current host overrides, classifies the change-set against them
and applies the resulting creates, updates and deletes.

The file holds a plan.Changes document, the body external-dns POSTs to /records.

Examples:
  # Show what would change
  reconcile --file changes.json --dry-run

  # Apply with interactive confirmation
  reconcile --file changes.json

  # Apply non-interactively
  reconcile --file changes.json --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&changesFile, "file", "f", "", "Change-set JSON file")
	reconcileCmd.Flags().BoolVar(&dryRunChanges, "dry-run", false, "Only print the planned actions")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm changes (non-interactive)")
	_ = reconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	changes, err := readChanges(changesFile)
	if err != nil {
		return err
	}

	_, l, engine, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	// Listing fills the record cache the classifier reads from.
	l.Info("Listing current records...")
	if _, err := engine.ListRecords(ctx); err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	cs, err := engine.Plan(ctx, changes)
	if err != nil {
		return fmt.Errorf("failed to plan changes: %w", err)
	}
	printChangeSet(l, cs)

	if cs.IsEmpty() {
		l.Info("No actions required.")
		return nil
	}
	if dryRunChanges {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirmChanges() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying actions...")
	reports, err := engine.Apply(ctx, cs)
	if err != nil {
		return fmt.Errorf("failed to apply changes: %w", err)
	}

	var processed uint
	for _, r := range reports {
		processed += r.Processed
	}
	l.Info("Successfully executed actions", zap.Uint("count", processed))
	return nil
}

func readChanges(path string) (*plan.Changes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read change-set: %w", err)
	}
	var changes plan.Changes
	if err := json.Unmarshal(data, &changes); err != nil {
		return nil, fmt.Errorf("failed to parse change-set: %w", err)
	}
	return &changes, nil
}

// printChangeSet logs the planned actions.
func printChangeSet(l *zap.Logger, cs *reconcile.ChangeSet) {
	l.Info("Planned actions",
		zap.Int("creates", len(cs.Creates)),
		zap.Int("updates", len(cs.Updates)),
		zap.Int("deletes", len(cs.Deletes)),
	)

	groups := []struct {
		op    reconcile.Operation
		items []reconcile.DesiredRecord
	}{
		{reconcile.OperationCreate, cs.Creates},
		{reconcile.OperationUpdate, cs.Updates},
		{reconcile.OperationDelete, cs.Deletes},
	}
	for _, g := range groups {
		for _, rec := range g.items {
			l.Info("Action",
				zap.String("type", string(g.op)),
				zap.String("fqdn", rec.FQDN()),
				zap.String("record_type", rec.RecordType),
				zap.String("target", rec.Target),
			)
		}
	}
}

// confirmChanges prompts the user for confirmation or uses --yes flag.
func confirmChanges() bool {
	if yesConfirm {
		fmt.Fprintln(confirmMessage, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(confirmMessage, "\n⚠️  Type 'yes' to apply these changes: ")
	response, err := bufio.NewReader(confirmInput).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
