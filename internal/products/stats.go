package products

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type statsResult struct {
	TotalProducts int            `json:"totalProducts"`
	InStock       int            `json:"inStock"`
	OutOfStock    int            `json:"outOfStock"`
	Categories    categoryCounts `json:"categories"`
}

// categoryCounts counts records per category and marshals its keys in
// first-occurrence order. encoding/json sorts plain map keys, which would
// reorder the object.
type categoryCounts struct {
	keys   []string
	counts map[string]int
}

func (c *categoryCounts) add(category string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	if _, ok := c.counts[category]; !ok {
		c.keys = append(c.keys, category)
	}
	c.counts[category]++
}

func (c categoryCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.counts[k]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func computeStats(snapshot []Product) statsResult {
	st := statsResult{TotalProducts: len(snapshot)}
	for _, p := range snapshot {
		if p.InStock {
			st.InStock++
		} else {
			st.OutOfStock++
		}
		st.Categories.add(p.Category)
	}
	return st
}
