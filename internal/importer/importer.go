package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"burgerhouse/internal/domain"
)

type MenuWriter interface {
	Upsert(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}

// CSVImporter reads a menu CSV export and inserts/updates menu items.
// Expected columns: name, description, price_cents, image_url.
type CSVImporter struct {
	reader *csv.Reader
	menu   MenuWriter
}

func NewCSVImporter(r io.Reader, menu MenuWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		menu:   menu,
	}
}

// Run parses CSV rows and upserts menu items, returning how many were saved.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		item, ok, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if !ok {
			continue
		}

		if _, err := i.menu.Upsert(ctx, item); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", item.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.MenuItem, bool, error) {
	name := field(record, index, "name")
	if name == "" {
		return domain.MenuItem{}, false, nil
	}

	rawPrice := field(record, index, "price_cents")
	price, err := strconv.ParseInt(rawPrice, 10, 64)
	if err != nil {
		return domain.MenuItem{}, false, fmt.Errorf("parse price for %s: %w", name, err)
	}
	if price < 0 {
		return domain.MenuItem{}, false, fmt.Errorf("negative price for %s", name)
	}

	return domain.MenuItem{
		ID:          name,
		Name:        name,
		Description: field(record, index, "description"),
		PriceCents:  price,
		ImageURL:    field(record, index, "image_url"),
	}, true, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
