// Package dictionary builds a message-type keyed field dictionary by
// scraping SWIFT's published field-reference pages. It is an external
// collaborator: wire.Message never references a Dictionary value, and
// nothing in the wire package imports this package.
package dictionary

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Row describes one field entry in a message type's published field
// table. Qualifier is optional — some message types omit the column
// entirely, matching spec.md's qualifier? notation.
type Row struct {
	Status    string
	Tag       string
	Name      string
	Qualifier string
	Link      string
}

// Dictionary is the field reference for every message type ingested so
// far, keyed by message type (e.g. "103").
type Dictionary map[string][]Row

// ExtractRows parses one field-reference HTML page and returns its table
// rows. It tolerates a missing qualifier column by leaving Qualifier
// empty rather than failing, and skips any row it cannot make sense of
// instead of aborting the whole page.
func ExtractRows(html string) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("dictionary: parse field table: %w", err)
	}

	var rows []Row
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 3 {
			return // header row or malformed row
		}

		row := Row{
			Status: strings.TrimSpace(cells.Eq(0).Text()),
			Tag:    strings.TrimSpace(cells.Eq(1).Text()),
			Name:   strings.TrimSpace(cells.Eq(2).Text()),
		}
		if row.Tag == "" {
			return
		}
		if cells.Length() >= 4 {
			row.Qualifier = strings.TrimSpace(cells.Eq(3).Text())
		}
		if href, ok := tr.Find("a").Attr("href"); ok {
			row.Link = href
		}
		rows = append(rows, row)
	})
	return rows, nil
}
