package catalog

// Catalog is a read-only lookup of products by id.
type Catalog struct {
	products map[string]*Product
}

// NewCatalog indexes products by id. A later product with the same id replaces an
// earlier one; nil entries are skipped.
func NewCatalog(products ...*Product) Catalog {
	index := make(map[string]*Product, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		index[p.ID()] = p
	}
	return Catalog{products: index}
}

// Product returns the product with the given id.
func (c Catalog) Product(id string) (*Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

func (c Catalog) Len() int {
	return len(c.products)
}
