// Package config provides configuration management for the Word Duel server.
//
// The config package handles:
//   - Loading server configurations from JSON files
//   - Configuration validation
//   - A built-in default configuration
//
// Configuration Format:
//
// Server configurations are stored as JSON files in the configs
// directory. Each configuration defines:
//   - The pre-provisioned lobby pool (list of lobby identifiers)
//   - Human-readable message strings for the error taxonomy
//
// The default configuration provisions two lobbies, lobby-1 and lobby-2,
// with the stock message wording. Message strings left blank in a loaded
// file are filled from the defaults.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := manager.Current()
//	registry := session.NewManager(cfg.Lobbies)
package config
