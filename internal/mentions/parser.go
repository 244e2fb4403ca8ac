package mentions

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/calloway/jukebook/internal/model"
	"github.com/calloway/jukebook/internal/progress"
)

// Column order of the curated CSV. The context column is read but not
// retained in the output record.
const (
	colTitle = iota
	colArtist
	colAlbum
	colYear
	colPages
	colCharacters
	colContext
	columnCount
)

// Parser turns raw CSV rows into song mention records.
//
// The curated file is hand-maintained, so the parser is deliberately
// forgiving: a malformed year or page yields a sentinel value and a
// warning rather than failing the whole file. Ids are assigned as a
// 1-based running counter in encounter order, independent of any
// numbering inside the file.
//
// Example usage:
//
//	parser := mentions.NewParser(progress.Printer(false))
//	records, err := parser.ParseFile("songs.csv")
type Parser struct {
	nextID     int
	onProgress progress.Func
}

// NewParser creates a Parser. onProgress may be nil.
func NewParser(onProgress progress.Func) *Parser {
	return &Parser{onProgress: onProgress}
}

// ParseFile reads the whole CSV file and returns one record per data
// row, in file order. The first row is always treated as a header and
// skipped.
func (p *Parser) ParseFile(path string) ([]*model.Mention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	var records []*model.Mention
	for i, line := range lines {
		if i == 0 {
			continue // header row
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, p.ParseRow(line))
	}

	p.onProgress.Emit(progress.LevelInfo, "Parsed %d song mentions from %s", len(records), path)
	return records, nil
}

// ParseRow turns one raw CSV row into a record and assigns the next
// running id. Field splitting honors quoted fields containing commas.
func (p *Parser) ParseRow(row string) *model.Mention {
	fields := splitRow(row)
	p.nextID++

	m := &model.Mention{
		ID:         strconv.Itoa(p.nextID),
		Title:      parsePlaceholder(field(fields, colTitle)),
		Artist:     field(fields, colArtist),
		Album:      parsePlaceholder(field(fields, colAlbum)),
		Characters: splitCharacters(field(fields, colCharacters)),
	}

	m.Year = p.parseNumber(field(fields, colYear), "year", m.ID)
	m.Page = p.parseFirstPage(field(fields, colPages), m.ID)

	return m
}

// splitRow splits a CSV row on commas, honoring quoted fields. A quote
// toggles inside-field mode; commas inside quotes are literal and the
// quotes themselves are not part of the field value.
func splitRow(row string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range row {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())

	return fields
}

// field returns the trimmed field at index i, or "" when the row is
// short.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// parsePlaceholder maps the em-dash placeholder to an absent value.
func parsePlaceholder(value string) string {
	if value == model.Placeholder {
		return ""
	}
	return value
}

// splitCharacters splits the comma-separated character list, trimming
// each name and dropping entries that are empty after trimming.
func splitCharacters(value string) []string {
	var characters []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			characters = append(characters, part)
		}
	}
	return characters
}

// parseNumber parses an integer field, returning the 0 sentinel and a
// warning when the text does not parse. One bad row must not fail the
// batch.
func (p *Parser) parseNumber(value, name, id string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		p.onProgress.Emit(progress.LevelWarning, "Record %s: unparseable %s %q, keeping 0", id, name, value)
		return 0
	}
	return n
}

// parseFirstPage parses the page field, which may carry a
// comma-separated list for mentions recurring across pages. Only the
// first page is retained; the discarded tail is reported so the loss
// stays visible.
func (p *Parser) parseFirstPage(value, id string) int {
	pages := strings.Split(value, ",")
	if len(pages) > 1 {
		p.onProgress.Emit(progress.LevelVerbose, "Record %s: keeping first of pages %q", id, value)
	}
	return p.parseNumber(strings.TrimSpace(pages[0]), "page", id)
}
