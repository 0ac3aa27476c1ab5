package products

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQuery(t *testing.T) {
	q := parseListQuery(url.Values{})
	assert.Equal(t, listQuery{Page: 1, Limit: 10}, q)

	q = parseListQuery(url.Values{"page": {"abc"}, "limit": {"-5"}})
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)

	q = parseListQuery(url.Values{"page": {"0"}, "limit": {"2.5"}})
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)

	q = parseListQuery(url.Values{
		"page": {"3"}, "limit": {"2"},
		"category": {"Audio"}, "search": {"mouse"},
	})
	assert.Equal(t, listQuery{Category: "Audio", Search: "mouse", Page: 3, Limit: 2}, q)
}

func queryFixture() []Product {
	return []Product{
		{ID: "a", Name: "Keyboard", Description: "mechanical switches", Price: 1, Category: "Peripherals", InStock: true},
		{ID: "b", Name: "Mouse", Description: "Wireless ergonomic", Price: 1, Category: "Accessories", InStock: true},
		{ID: "c", Name: "Headset", Description: "wireless on-ear", Price: 1, Category: "Audio", InStock: false},
		{ID: "d", Name: "Mousepad", Description: "cloth surface", Price: 1, Category: "Accessories", InStock: true},
	}
}

func ids(items []Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestListQueryPagination(t *testing.T) {
	fix := queryFixture()

	t.Run("defaults fit on one page", func(t *testing.T) {
		res := listQuery{Page: 1, Limit: 10}.apply(fix)
		assert.Equal(t, 4, res.Total)
		assert.Equal(t, 1, res.TotalPages)
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(res.Data))
	})

	t.Run("total pages rounds up", func(t *testing.T) {
		res := listQuery{Page: 1, Limit: 3}.apply(fix)
		assert.Equal(t, 2, res.TotalPages)
		assert.Equal(t, []string{"a", "b", "c"}, ids(res.Data))
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		res := listQuery{Page: 2, Limit: 3}.apply(fix)
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, []string{"d"}, ids(res.Data))
	})

	t.Run("out of range page is empty, not an error", func(t *testing.T) {
		res := listQuery{Page: 9, Limit: 3}.apply(fix)
		assert.Equal(t, 4, res.Total)
		require.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		res := listQuery{Page: 1, Limit: 10}.apply(nil)
		assert.Equal(t, 0, res.Total)
		assert.Equal(t, 0, res.TotalPages)
		require.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})
}

func TestListQueryFilters(t *testing.T) {
	fix := queryFixture()

	t.Run("category is exact and case-sensitive", func(t *testing.T) {
		res := listQuery{Category: "Accessories", Page: 1, Limit: 10}.apply(fix)
		assert.Equal(t, []string{"b", "d"}, ids(res.Data))

		res = listQuery{Category: "accessories", Page: 1, Limit: 10}.apply(fix)
		assert.Empty(t, res.Data)
	})

	t.Run("search is case-insensitive over name and description", func(t *testing.T) {
		res := listQuery{Search: "WIRELESS", Page: 1, Limit: 10}.apply(fix)
		assert.Equal(t, []string{"b", "c"}, ids(res.Data))

		res = listQuery{Search: "mouse", Page: 1, Limit: 10}.apply(fix)
		assert.Equal(t, []string{"b", "d"}, ids(res.Data))
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		res := listQuery{Category: "Accessories", Search: "wireless", Page: 1, Limit: 10}.apply(fix)
		assert.Equal(t, []string{"b"}, ids(res.Data))

		res = listQuery{Category: "Audio", Search: "mouse", Page: 1, Limit: 10}.apply(fix)
		assert.Empty(t, res.Data)
	})

	t.Run("pagination runs on the filtered set", func(t *testing.T) {
		res := listQuery{Category: "Accessories", Page: 2, Limit: 1}.apply(fix)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 2, res.TotalPages)
		assert.Equal(t, []string{"d"}, ids(res.Data))
	})
}
