// Package config provides configuration management for jukebook.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Sensible defaults when no settings file exists
//
// Settings cover the data file locations, the enrichment engine's query
// budget and pacing, the preview cache behavior, and the external player
// used by the TUI.
//
//	settings, err := config.Load("~/.config/jukebook/settings.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(settings.QueryBudget) // 15 by default
package config
