// Package mentions handles the song mention data: parsing the curated
// CSV into records and persisting the record set as ordered JSON.
//
// # Parsing
//
//	parser := mentions.NewParser(progress.Printer(false))
//	records, err := parser.ParseFile("songs.csv")
//
// The CSV columns are, in fixed order: title, artist, album, year,
// page(s), character(s), context. The header row is always skipped and
// the context column is not retained. Parsing is best-effort: malformed
// numeric fields become sentinel zeros with a warning instead of
// failing the batch.
//
// # Persistence
//
//	records, err := mentions.Load("songs.json")
//	err = mentions.Save("songs.json", records)
//
// The JSON file is both the enrichment engine's input/output and the
// browser's sole data source. Order is significant: it is the timeline.
package mentions
