package products

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type listQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type listResult struct {
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Data       []Product `json:"data"`
}

func parseListQuery(q url.Values) listQuery {
	return listQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     positiveInt(q.Get("page"), defaultPage),
		Limit:    positiveInt(q.Get("limit"), defaultLimit),
	}
}

func positiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// apply filters the snapshot by category and search, then slices out the
// requested page. An out-of-range page yields an empty data slice, not an
// error.
func (q listQuery) apply(snapshot []Product) listResult {
	filtered := filterProducts(snapshot, q.Category, q.Search)

	total := len(filtered)
	totalPages := total / q.Limit
	if total%q.Limit != 0 {
		totalPages++
	}

	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start < 0 || start > total {
		start = total
	}
	if end < start || end > total {
		end = total
	}

	return listResult{
		Total:      total,
		Page:       q.Page,
		TotalPages: totalPages,
		Data:       filtered[start:end],
	}
}

// filterProducts combines both filters: category matches exactly, search
// matches case-insensitively against name or description.
func filterProducts(items []Product, category, search string) []Product {
	out := make([]Product, 0, len(items))
	needle := strings.ToLower(search)
	for _, p := range items {
		if category != "" && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}
