// Package model defines the core data structure shared by every part
// of jukebook: the song mention record.
//
// # Mention
//
// Mention represents one song or album referenced in the book:
//
//	m := &model.Mention{Title: "Thirteen", Artist: "Big Star", Page: 104}
//	fmt.Println(m.Label()) // "Big Star - Thirteen"
//
// Records are created once by the CSV parser, mutated in place by the
// enrichment engine, and read-only once loaded into the browser. The
// order of records in the data file is the timeline order.
package model
