// Package config provides yard layout configuration management.
//
// The config package handles:
//   - Loading yard layouts from JSON files
//   - Layout validation and verification
//   - Default layout management
//   - Layout discovery and listing
//
// Configuration Format:
//
// Yard layouts are stored as JSON files in the configs directory. Each
// layout defines:
//   - World dimensions and slot geometry (dock and yard spaces)
//   - The exit gate zone and spawn points
//   - Speed tuning for trucks and the worker
//   - Day clock parameters and the truck admission policy
//   - Tier tables mapping space-upgrade levels to unlocked slots
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific layout
//	layout, err := manager.LoadConfig("tutorial")
//
//	// Get the default layout
//	layout = manager.GetDefault()
//
//	// List available layouts
//	layouts, err := manager.ListConfigs()
//
// All layouts are validated with engine.ValidateYardConfig before use.
package config
