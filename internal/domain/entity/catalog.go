// Package entity defines the core business entities for the domain layer.
package entity

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Category represents a product category. Each category carries a fixed
// tax rate.
type Category string

const (
	CategoryCosmetics Category = "Cosmetics"
	CategoryGroceries Category = "Groceries"
	CategoryDrinks    Category = "Drinks"
)

// Categories lists all known categories in receipt order.
var Categories = []Category{CategoryCosmetics, CategoryGroceries, CategoryDrinks}

// TaxRate returns the fixed tax rate for the category.
func (c Category) TaxRate() decimal.Decimal {
	switch c {
	case CategoryCosmetics:
		return decimal.NewFromFloat(0.12)
	case CategoryGroceries:
		return decimal.NewFromFloat(0.05)
	case CategoryDrinks:
		return decimal.NewFromFloat(0.18)
	}
	return decimal.Zero
}

// SectionHeading returns the upper-case heading used for the category's
// receipt section.
func (c Category) SectionHeading() string {
	switch c {
	case CategoryCosmetics:
		return "COSMETICS"
	case CategoryGroceries:
		return "GROCERIES"
	case CategoryDrinks:
		return "DRINKS"
	}
	return string(c)
}

// TotalsLabel returns the singular label used for the category's tax and
// total lines on the receipt ("Cosmetic Tax:", "Cosmetic Total:").
func (c Category) TotalsLabel() string {
	switch c {
	case CategoryCosmetics:
		return "Cosmetic"
	case CategoryGroceries:
		return "Grocery"
	case CategoryDrinks:
		return "Drink"
	}
	return string(c)
}

// Valid reports whether the category is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCosmetics, CategoryGroceries, CategoryDrinks:
		return true
	}
	return false
}

// Product represents an immutable catalog product.
type Product struct {
	Name      string
	Category  Category
	UnitPrice decimal.Decimal
}

// Catalog is an immutable mapping of product name to product, preserving
// the definition order of products within each category.
type Catalog struct {
	products map[string]Product
	order    map[Category][]string
}

// NewCatalog builds a catalog from the given products. Product names
// must be unique and prices positive.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make(map[string]Product, len(products)),
		order:    make(map[Category][]string),
	}
	for _, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog product with empty name")
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("catalog product %q has unknown category %q", p.Name, p.Category)
		}
		if !p.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("catalog product %q has non-positive price", p.Name)
		}
		if _, exists := c.products[p.Name]; exists {
			return nil, fmt.Errorf("duplicate catalog product %q", p.Name)
		}
		c.products[p.Name] = p
		c.order[p.Category] = append(c.order[p.Category], p.Name)
	}
	return c, nil
}

// Lookup returns the product with the given name.
func (c *Catalog) Lookup(name string) (Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

// ProductNames returns the product names of a category in definition order.
func (c *Catalog) ProductNames(category Category) []string {
	names := make([]string, len(c.order[category]))
	copy(names, c.order[category])
	return names
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// catalogFile is the on-disk JSON shape of a catalog.
type catalogFile struct {
	Products []struct {
		Name     string          `json:"name"`
		Category Category        `json:"category"`
		Price    decimal.Decimal `json:"price"`
	} `json:"products"`
}

// LoadCatalog reads a catalog from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	products := make([]Product, 0, len(file.Products))
	for _, p := range file.Products {
		products = append(products, Product{Name: p.Name, Category: p.Category, UnitPrice: p.Price})
	}
	return NewCatalog(products)
}

// DefaultCatalog returns the built-in product catalog.
func DefaultCatalog() *Catalog {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	catalog, err := NewCatalog([]Product{
		{Name: "Bath Soap", Category: CategoryCosmetics, UnitPrice: price(25)},
		{Name: "Face Cream", Category: CategoryCosmetics, UnitPrice: price(80)},
		{Name: "Face Wash", Category: CategoryCosmetics, UnitPrice: price(120)},
		{Name: "Hair Spray", Category: CategoryCosmetics, UnitPrice: price(180)},
		{Name: "Hair Gel", Category: CategoryCosmetics, UnitPrice: price(140)},
		{Name: "Body Lotion", Category: CategoryCosmetics, UnitPrice: price(180)},

		{Name: "Rice", Category: CategoryGroceries, UnitPrice: price(50)},
		{Name: "Dal", Category: CategoryGroceries, UnitPrice: price(100)},
		{Name: "Oil", Category: CategoryGroceries, UnitPrice: price(120)},
		{Name: "Wheat", Category: CategoryGroceries, UnitPrice: price(40)},
		{Name: "Sugar", Category: CategoryGroceries, UnitPrice: price(45)},
		{Name: "Tea", Category: CategoryGroceries, UnitPrice: price(140)},

		{Name: "Red Bull", Category: CategoryDrinks, UnitPrice: price(120)},
		{Name: "Hurricane", Category: CategoryDrinks, UnitPrice: price(90)},
		{Name: "Blue Bull", Category: CategoryDrinks, UnitPrice: price(100)},
		{Name: "Ocean", Category: CategoryDrinks, UnitPrice: price(85)},
		{Name: "Monster", Category: CategoryDrinks, UnitPrice: price(110)},
		{Name: "Coca Cola", Category: CategoryDrinks, UnitPrice: price(60)},
	})
	if err != nil {
		panic("default catalog is invalid: " + err.Error())
	}
	return catalog
}
