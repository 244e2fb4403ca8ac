package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/calloway/jukebook/internal/config"
	"github.com/calloway/jukebook/internal/enrich"
	httpclient "github.com/calloway/jukebook/internal/http"
	"github.com/calloway/jukebook/internal/itunes"
	"github.com/calloway/jukebook/internal/mentions"
)

// jukebook-lookup probes the search service for a single record and
// prints every candidate with its match tier. Diagnostic only: nothing
// is written back to the data file.
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
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		usage(len(records))
	}
	index, err := strconv.Atoi(flag.Arg(0))
	if err != nil || index < 0 || index >= len(records) {
		usage(len(records))
	}

	record := records[index]
	fmt.Printf("Record %s: %s\n", record.ID, record.Label())
	if record.Album != "" {
		fmt.Printf("Expected album: %s\n", record.Album)
	}
	fmt.Println()

	client := itunes.NewClient(
		httpclient.NewClient(time.Duration(settings.SearchTimeout*float64(time.Second))),
		settings.SearchLimit,
	)
	candidates, err := client.Search(context.Background(), record.Artist, record.Title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if len(candidates) == 0 {
		fmt.Println("No results.")
		return
	}

	for i, c := range candidates {
		tag := enrich.MatchCandidate(c, record.Album)
		preview := "no preview"
		if c.PreviewURL != "" {
			preview = "preview"
		}
		fmt.Printf("%2d. [%-7s] %s - %s (%s) [%s]\n", i+1, tag, c.ArtistName, c.TrackName, c.CollectionName, preview)
		fmt.Printf("    %s\n", c.ViewURL)
	}

	selected, tag, _ := enrich.SelectCandidate(candidates, record.Album)
	fmt.Printf("\nEngine would select: %s - %s (%s match)\n", selected.ArtistName, selected.TrackName, tag)
}

func usage(count int) {
	fmt.Fprintln(os.Stderr, "Usage: jukebook-lookup [flags] <index>")
	fmt.Fprintf(os.Stderr, "  <index> selects a record by position, 0 to %d\n\n", count-1)
	flag.PrintDefaults()
	os.Exit(1)
}
