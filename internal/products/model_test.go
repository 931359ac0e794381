package products

import "testing"

func TestNameIndexFallsBackToRawID(t *testing.T) {
	nameOf := NameIndex([]Product{
		{ID: 1, Name: "Mug"},
		{ID: 2, Name: "Candle"},
	})
	if got := nameOf(2); got != "Candle" {
		t.Fatalf("got %q", got)
	}
	if got := nameOf(99); got != "#99" {
		t.Fatalf("deleted products must render as the raw id, got %q", got)
	}
}

func TestCover(t *testing.T) {
	if got := (Product{}).Cover(); got != "" {
		t.Fatalf("no images means no cover, got %q", got)
	}
	p := Product{Images: []string{"a.png", "b.png"}}
	if got := p.Cover(); got != "a.png" {
		t.Fatalf("cover = %q", got)
	}
}
