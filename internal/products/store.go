package products

// Product is the one record kind the service manages. A stored record is
// always fully populated; write requests fill the gaps with defaults.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

const DefaultCategory = "Uncategorized"

// Store holds products in insertion order. Implementations serialize all
// mutations behind one critical section; handlers never coordinate.
type Store interface {
	List() []Product
	Get(id string) (Product, bool)
	Append(p Product)
	Replace(id string, p Product) (Product, bool)
	Remove(id string) bool
	Len() int
}
