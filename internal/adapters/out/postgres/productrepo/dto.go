// Package productrepo implements the product catalog on top of the
// product_info table.
package productrepo

import (
	"time"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID        string          `gorm:"type:varchar(32);primaryKey"`
	Name      string          `gorm:"type:varchar(64);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock     int             `gorm:"not null;check:chk_product_info_stock,stock >= 0"`
	Status    int             `gorm:"type:smallint;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductDTO) TableName() string {
	return "product_info"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:     p.ID(),
		Name:   p.Name(),
		Price:  p.Price().Amount(),
		Stock:  p.Stock(),
		Status: int(p.Status()),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(dto.ID, dto.Name, price, dto.Stock, product.Status(dto.Status))
}
