package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар каталога.
type Product struct {
	ID          int64
	ProductCode string
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal
	Unit        string
	Status      ProductStatus
	JdProductID string
	Timestamps
	Blame
}

// NewProduct создаёт товар в продаже с нулевой ценой.
func NewProduct() *Product {
	return &Product{
		Price:  decimal.Zero,
		Status: ProductStatusOnSale,
	}
}

func (p *Product) String() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ProductCode
}

// IsOnSale сообщает, что товар в продаже.
func (p *Product) IsOnSale() bool { return p.Status.IsOnSale() }

// IsOffShelf сообщает, что товар снят с продажи.
func (p *Product) IsOffShelf() bool { return p.Status.IsOffShelf() }

// IsOutOfStock сообщает, что товара нет в наличии.
func (p *Product) IsOutOfStock() bool { return p.Status.IsOutOfStock() }

func (v ProductStatus) IsOnSale() bool     { return v == ProductStatusOnSale }
func (v ProductStatus) IsOffShelf() bool   { return v == ProductStatusOffShelf }
func (v ProductStatus) IsOutOfStock() bool { return v == ProductStatusOutOfStock }

// Отслеживаемые поля товара.
const (
	ProductFieldCode     = "productCode"
	ProductFieldName     = "name"
	ProductFieldCategory = "category"
	ProductFieldPrice    = "price"
	ProductFieldStatus   = "status"
)

// ProductChange описывает изменение одного отслеживаемого поля товара.
type ProductChange struct {
	ID        int64
	ProductID int64
	Field     string
	OldValue  string
	NewValue  string
	ChangedBy string
	ChangedAt time.Time
}

// DiffProduct возвращает изменения отслеживаемых полей между двумя версиями товара.
func DiffProduct(prev, next *Product) []ProductChange {
	type field struct {
		name          string
		before, after string
	}
	fields := []field{
		{ProductFieldCode, prev.ProductCode, next.ProductCode},
		{ProductFieldName, prev.Name, next.Name},
		{ProductFieldCategory, prev.Category, next.Category},
		{ProductFieldPrice, FormatAmount(prev.Price), FormatAmount(next.Price)},
		{ProductFieldStatus, string(prev.Status), string(next.Status)},
	}

	var changes []ProductChange
	for _, f := range fields {
		if f.before == f.after {
			continue
		}
		changes = append(changes, ProductChange{
			ProductID: next.ID,
			Field:     f.name,
			OldValue:  f.before,
			NewValue:  f.after,
			ChangedBy: next.UpdatedBy,
			ChangedAt: next.UpdateTime,
		})
	}
	return changes
}
