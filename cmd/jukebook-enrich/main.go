package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calloway/jukebook/internal/config"
	"github.com/calloway/jukebook/internal/enrich"
	httpclient "github.com/calloway/jukebook/internal/http"
	"github.com/calloway/jukebook/internal/itunes"
	"github.com/calloway/jukebook/internal/mentions"
	"github.com/calloway/jukebook/internal/model"
	"github.com/calloway/jukebook/internal/preview"
	"github.com/calloway/jukebook/internal/progress"
)

func main() {
	// Command line flags
	var (
		csvFlag      = flag.String("csv", "", "Path to the curated CSV (overrides config)")
		dataFlag     = flag.String("data", "", "Path to the JSON data file (overrides config)")
		configFlag   = flag.String("config", "", "Path to config file")
		parseFlag    = flag.Bool("parse", false, "Re-parse the CSV instead of loading the data file")
		budgetFlag   = flag.Int("budget", 0, "Query budget per run (overrides config)")
		yesFlag      = flag.Bool("yes", false, "Non-interactive: accept exact matches only, never prompt")
		previewsFlag = flag.Bool("previews", false, "Download preview clips for enriched records")
		playlistFlag = flag.Bool("playlist", false, "Write an M3U playlist of the preview cache")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *csvFlag != "" {
		settings.CSVPath = *csvFlag
	}
	if *dataFlag != "" {
		settings.DataPath = *dataFlag
	}
	if *budgetFlag > 0 {
		settings.QueryBudget = *budgetFlag
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	onProgress := progress.Printer(*verboseFlag)

	// Parse the CSV on request or when the data file does not exist
	// yet; otherwise pick up the persisted record set.
	records, err := loadRecords(settings, *parseFlag, onProgress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d records from %s\n\n", len(records), settings.DataPath)

	decide := enrich.StdinDecider(os.Stdin, os.Stdout)
	if *yesFlag {
		decide = enrich.AcceptExactOnly
	}

	client := itunes.NewClient(
		httpclient.NewClient(time.Duration(settings.SearchTimeout*float64(time.Second))),
		settings.SearchLimit,
	)
	engine := enrich.NewEngine(client, decide, settings.QueryBudget,
		time.Duration(settings.QueryPauseMillis)*time.Millisecond, onProgress)

	engine.Run(ctx, records)

	// The whole set is rewritten every run, changed or not.
	if err := mentions.Save(settings.DataPath, records); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", settings.DataPath, err)
		os.Exit(1)
	}
	fmt.Printf("\nSaved %s\n", settings.DataPath)

	if *previewsFlag {
		fmt.Println("\nSyncing preview cache...")
		manager := preview.NewManager(settings, onProgress)
		if err := manager.Sync(ctx, records); err != nil {
			if ctx.Err() != nil {
				fmt.Println("\nCancelled.")
				os.Exit(130)
			}
			fmt.Fprintf(os.Stderr, "Error syncing previews: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadRecords(settings *config.Settings, reparse bool, onProgress progress.Func) ([]*model.Mention, error) {
	if !reparse {
		if _, err := os.Stat(settings.DataPath); err == nil {
			return mentions.Load(settings.DataPath)
		}
	}

	parser := mentions.NewParser(onProgress)
	records, err := parser.ParseFile(settings.CSVPath)
	if err != nil {
		return nil, err
	}
	if err := mentions.Save(settings.DataPath, records); err != nil {
		return nil, err
	}
	return records, nil
}
