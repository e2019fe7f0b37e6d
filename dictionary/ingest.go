package dictionary

import (
	"context"
	"fmt"
)

// Loader fetches the field-reference HTML page for one message type.
// htcache.Cache satisfies this interface; tests substitute a fake.
type Loader interface {
	Get(ctx context.Context, url string) (string, error)
}

// baseURL is the root the original Rust loader joined category links
// against (original_source/src/definition/index_processor.rs's
// load_index); kept as a package variable rather than a constant so a
// future CLI flag can override it without touching this file.
var baseURL = "https://www2.swift.com/knowledgecentre/publications/"

// Ingest fetches and parses the field-reference page for each message
// type in messageTypes, merging their rows into a single Dictionary.
// Rows are merged last-write-wins per tag within a message type — the
// original's index_processor.rs does not specify merge semantics beyond
// "collect everything found", so later pages in messageTypes win ties.
func Ingest(ctx context.Context, loader Loader, messageTypes []string) (Dictionary, error) {
	dict := make(Dictionary, len(messageTypes))

	for _, mt := range messageTypes {
		url := fmt.Sprintf("%sstandards_mt%s/2_1/field_table.htm", baseURL, mt)

		html, err := loader.Get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("dictionary: ingest %s: %w", mt, err)
		}

		rows, err := ExtractRows(html)
		if err != nil {
			return nil, fmt.Errorf("dictionary: ingest %s: %w", mt, err)
		}

		dict[mt] = mergeByTag(dict[mt], rows)
	}

	return dict, nil
}

// mergeByTag folds fresh into existing, with fresh rows overwriting any
// existing row sharing the same Tag.
func mergeByTag(existing, fresh []Row) []Row {
	if len(existing) == 0 {
		return fresh
	}

	byTag := make(map[string]Row, len(existing)+len(fresh))
	var order []string
	for _, r := range existing {
		if _, seen := byTag[r.Tag]; !seen {
			order = append(order, r.Tag)
		}
		byTag[r.Tag] = r
	}
	for _, r := range fresh {
		if _, seen := byTag[r.Tag]; !seen {
			order = append(order, r.Tag)
		}
		byTag[r.Tag] = r
	}

	merged := make([]Row, 0, len(order))
	for _, tag := range order {
		merged = append(merged, byTag[tag])
	}
	return merged
}
