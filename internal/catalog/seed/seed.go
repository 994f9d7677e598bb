// Package seed holds the products a fresh catalog starts with.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var productsYAML []byte

type product struct {
	ID          uuid.UUID       `yaml:"id"`
	Name        string          `yaml:"name"`
	Category    []string        `yaml:"category"`
	Description string          `yaml:"description"`
	ImageFile   string          `yaml:"imageFile"`
	Price       decimal.Decimal `yaml:"price"`
}

func Products() ([]domain.Product, error) {
	return parse(productsYAML)
}

func parse(data []byte) ([]domain.Product, error) {
	var raw []product
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for i, p := range raw {
		if p.ID == uuid.Nil {
			return nil, fmt.Errorf("product[%d] has no id", i)
		}
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("product[%s] price must be positive", p.ID)
		}
		products = append(products, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			ImageFile:   p.ImageFile,
			Price:       p.Price,
		})
	}

	return products, nil
}
