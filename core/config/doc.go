// Package config provides configuration management for the Unbound webhook.
//
// It utilizes Viper for loading configuration from an optional config.yaml,
// environment variables and a .env file. Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
//   - Server: listen host, port and optional API key
//   - Log: logging level and format
//   - OPNsense: API base URL, key/secret and TLS options
//   - Reconcile: domain filters restricting the managed zones
//
// Nested keys map to environment variables by replacing dots with
// underscores, e.g. OPNSENSE_BASE_URL or RECONCILE_DOMAIN_FILTERS
// (comma separated).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
package config
