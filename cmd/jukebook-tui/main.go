package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/calloway/jukebook/internal/config"
	"github.com/calloway/jukebook/internal/mentions"
	"github.com/calloway/jukebook/internal/tui"
)

func main() {
	var (
		dataFlag   = flag.String("data", "", "Path to the JSON data file (overrides config)")
		configFlag = flag.String("config", "", "Path to config file")
	)

	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *dataFlag != "" {
		settings.DataPath = *dataFlag
	}

	records, err := mentions.Load(settings.DataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run jukebook-enrich first to build the data file.")
		os.Exit(1)
	}

	if err := tui.Run(settings, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
