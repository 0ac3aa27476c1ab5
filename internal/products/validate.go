package products

import (
	"encoding/json"
	"io"
	"net/http"

	"ProductHub/pkg/kit"
)

const maxBodyBytes = 1 << 20

// productInput is a decoded create/update body. Name and Price are always
// set once validation passes; the pointer fields are nil when the body left
// them out or carried the wrong JSON type.
type productInput struct {
	Name        string
	Price       float64
	Description *string
	Category    *string
	InStock     *bool
}

// decodeProductInput reads a write body and applies the field rules, in
// order. Unknown fields and a client-supplied id are ignored; description,
// category and inStock are kept only when they carry the right JSON type.
func decodeProductInput(w http.ResponseWriter, r *http.Request) (productInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return productInput{}, kit.Validation("request body must be valid JSON")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return productInput{}, kit.Validation("request body must be a single JSON object")
	}

	name, ok := raw["name"].(string)
	if !ok || name == "" {
		return productInput{}, kit.Validation("name is required")
	}
	// A zero price reads as missing, same as null or an empty string.
	if isFalsy(raw["price"]) {
		return productInput{}, kit.Validation("price is required")
	}
	price, ok := raw["price"].(float64)
	if !ok || price <= 0 {
		return productInput{}, kit.Validation("price must be a positive number")
	}

	in := productInput{Name: name, Price: price}
	if v, ok := raw["description"].(string); ok {
		in.Description = &v
	}
	if v, ok := raw["category"].(string); ok {
		in.Category = &v
	}
	if v, ok := raw["inStock"].(bool); ok {
		in.InStock = &v
	}
	return in, nil
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}

// newProduct builds a record from the input, filling absent optional fields
// with the create defaults.
func (in productInput) newProduct(id string) Product {
	p := Product{
		ID:       id,
		Name:     in.Name,
		Price:    in.Price,
		Category: DefaultCategory,
		InStock:  true,
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	return p
}

// mergeInto overwrites name and price and takes each optional field from the
// input when present, otherwise from prev. Unlike create, absent fields keep
// their stored values rather than resetting to defaults.
func (in productInput) mergeInto(prev Product) Product {
	p := prev
	p.Name = in.Name
	p.Price = in.Price
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	return p
}
