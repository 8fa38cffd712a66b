package importer

import (
	"context"
	"strings"
	"testing"

	"burgerhouse/internal/domain"
)

type stubMenuRepo struct {
	items []domain.MenuItem
}

func (s *stubMenuRepo) Upsert(_ context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	s.items = append(s.items, item)
	return &item, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `name,description,price_cents,image_url
Classic Burger,Hambúrguer artesanal com cheddar,3290,https://example.com/classic.jpg
Bacon Supreme,Muito bacon,3890,
,,,
Veggie Special,Hambúrguer de grão de bico,3490,https://example.com/veggie.jpg`

	repo := &stubMenuRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 items imported, got %d", count)
	}
	if len(repo.items) != 3 {
		t.Fatalf("expected 3 items saved, got %d", len(repo.items))
	}

	first := repo.items[0]
	if first.ID != "Classic Burger" || first.Name != "Classic Burger" || first.PriceCents != 3290 {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if repo.items[1].ImageURL != "" {
		t.Fatalf("expected empty image url, got %q", repo.items[1].ImageURL)
	}
}

func TestCSVImporter_ColumnOrderIndependent(t *testing.T) {
	csvData := `price_cents,name,image_url,description
3290,Classic Burger,,Artesanal`

	repo := &stubMenuRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 || repo.items[0].PriceCents != 3290 || repo.items[0].Description != "Artesanal" {
		t.Fatalf("unexpected import result: %+v", repo.items)
	}
}

func TestCSVImporter_BadPrice(t *testing.T) {
	csvData := `name,description,price_cents,image_url
Classic Burger,Artesanal,abc,`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubMenuRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected parse error for bad price")
	}
}
