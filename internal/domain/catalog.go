package domain

// Catalog is the fixed, ordered product list loaded at startup.
// It is never mutated after construction.
type Catalog struct {
	products []Product
}

// NewCatalog creates a catalog holding a copy of the given products
func NewCatalog(products []Product) *Catalog {
	owned := make([]Product, len(products))
	copy(owned, products)
	return &Catalog{products: owned}
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Products returns the products in catalog order.
// The returned slice is a copy; callers may reorder it freely.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
