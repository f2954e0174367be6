// Package catalog lists the bottled water products that can be ordered.
package catalog

// Product is a sellable bottle size. Price is per bottle, in Currency.
type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string
	Currency    string
	Price       int
}

const DefaultProductID = "500ml"

var products = []Product{
	{
		ID:          "500ml",
		Name:        "500ml Bottle",
		Description: "Perfect for events, offices and on-the-go hydration.",
		SKU:         "MW-500ML",
		Currency:    "PKR",
		Price:       35,
	},
	{
		ID:          "1.5L",
		Name:        "1.5L Bottle",
		Description: "Ideal for restaurants, homes and long meetings.",
		SKU:         "MW-15L",
		Currency:    "PKR",
		Price:       45,
	},
}

// All returns a copy of the catalog in display order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Lookup returns the product with the given id. Unknown ids fall back to
// the default product; ok reports whether id matched exactly.
func Lookup(id string) (p Product, ok bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	p, _ = find(DefaultProductID)
	return p, false
}

func find(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Total returns the price of quantity bottles of p.
func (p Product) Total(quantity int) int {
	return p.Price * quantity
}
