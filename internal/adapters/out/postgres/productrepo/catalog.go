package productrepo

import (
	"context"
	"errors"
	"fmt"

	"seller/internal/core/domain/model/product"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductCatalog implements ports.ProductCatalog. Bound to a transaction,
// it takes row locks on every product whose stock it changes.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Add stores a new product.
func (c *GormProductCatalog) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return c.db.WithContext(ctx).Create(&dto).Error
}

func (c *GormProductCatalog) Lookup(ctx context.Context, productID string) (*product.Product, error) {
	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", product.ErrProductNotFound, productID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AdjustStock runs in a nested transaction (a savepoint when the catalog is
// already bound to one), so a failing adjustment undoes the earlier ones.
func (c *GormProductCatalog) AdjustStock(ctx context.Context, adjustments []product.StockAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, adj := range adjustments {
			if err := adjustOne(tx, adj); err != nil {
				return err
			}
		}
		return nil
	})
}

func adjustOne(tx *gorm.DB, adj product.StockAdjustment) error {
	var dto ProductDTO
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", adj.ProductID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", product.ErrProductNotFound, adj.ProductID)
		}
		return err
	}

	p, err := toDomain(dto)
	if err != nil {
		return err
	}

	if err = p.ApplyStockDelta(adj.Delta); err != nil {
		return err
	}

	return tx.Model(&ProductDTO{}).Where("id = ?", p.ID()).Update("stock", p.Stock()).Error
}
