package products

import "fmt"

// Product is a catalogue entry. Images are ordered; the first one is the
// cover shown in listings.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Cover returns the first image reference, or "" when none exist.
func (p Product) Cover() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// NameIndex returns a display-name lookup over the catalogue. Ids with no
// catalogue entry render as the raw id; history referencing a deleted
// product must still display.
func NameIndex(list []Product) func(int64) string {
	byID := make(map[int64]string, len(list))
	for _, p := range list {
		byID[p.ID] = p.Name
	}
	return func(id int64) string {
		if name, ok := byID[id]; ok {
			return name
		}
		return fmt.Sprintf("#%d", id)
	}
}

// NextID returns max existing id + 1. Ids are never reused after deletion.
func NextID(list []Product) int64 {
	var max int64
	for _, p := range list {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
