package reconcile

// Config holds reconciliation settings.
type Config struct {
	// DomainFilters restricts the zones in scope. Empty means every zone.
	DomainFilters []string `mapstructure:"domain_filters" default:""`
}
