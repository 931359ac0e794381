package query

import (
	"sort"
	"strings"
	"time"
)

// All is the reserved filter value that matches every record.
const All = "all"

// DefaultPageSize applies when a state carries no page size.
const DefaultPageSize = 20

// State captures one view's filter/sort/page selection. Each view owns its
// own instance; nothing here is global.
type State struct {
	Query      string
	Filters    map[string]string
	SortKey    string
	Descending bool
	Page       int // 1-based
	PageSize   int
}

// Binding tells the pipeline how to read a record: which strings the text
// query matches against, how each categorical filter reads its field (stored
// or derived), and how each sort key compares two records.
type Binding[T any] struct {
	Text    func(T) []string
	Fields  map[string]func(T) string
	Compare map[string]func(a, b T) int
}

// Result is one page of records plus pagination metadata.
type Result[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Run filters, sorts, and paginates items. It is pure: the input slice is
// never mutated and identical inputs always produce identical output. An
// out-of-range page yields an empty Items slice; clamping the page number
// back into range is the caller's job.
func Run[T any](items []T, st State, b Binding[T]) Result[T] {
	out := make([]T, 0, len(items))
	q := strings.ToLower(strings.TrimSpace(st.Query))
	for _, item := range items {
		if q != "" && b.Text != nil && !matchesText(b.Text(item), q) {
			continue
		}
		if !matchesFilters(item, st.Filters, b.Fields) {
			continue
		}
		out = append(out, item)
	}

	if st.SortKey != "" {
		if cmp, ok := b.Compare[st.SortKey]; ok {
			sort.SliceStable(out, func(i, j int) bool {
				if st.Descending {
					return cmp(out[i], out[j]) > 0
				}
				return cmp(out[i], out[j]) < 0
			})
		}
	}

	total := len(out)
	page, size := st.Page, st.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Items:      out[start:end],
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}

func matchesText(candidates []string, q string) bool {
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters map[string]string, fields map[string]func(T) string) bool {
	for name, want := range filters {
		if want == "" || want == All {
			continue
		}
		acc, ok := fields[name]
		if !ok {
			continue
		}
		if acc(item) != want {
			return false
		}
	}
	return true
}

// CompareStrings orders strings case-insensitively.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareTimes orders instants chronologically.
func CompareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
