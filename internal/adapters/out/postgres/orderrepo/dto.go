// Package orderrepo persists order aggregates in the order_master and
// order_detail tables.
package orderrepo

import (
	"time"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is an order header row. Lines are stored in order_detail and
// removed with their header.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerName    string          `gorm:"type:varchar(32);not null"`
	BuyerPhone   string          `gorm:"type:varchar(32);not null"`
	BuyerAddress string          `gorm:"type:varchar(128);not null"`
	BuyerID      string          `gorm:"type:varchar(64);not null;index:idx_order_master_buyer_created,priority:1"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       int             `gorm:"type:smallint;not null"`
	PayStatus    int             `gorm:"type:smallint;not null"`
	CreatedAt    time.Time       `gorm:"not null;index:idx_order_master_buyer_created,priority:2"`
	UpdatedAt    time.Time       `gorm:"not null"`
	Lines        []LineDTO       `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "order_master"
}

// LineDTO is an order_detail row. Position keeps the lines in cart order.
type LineDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   string          `gorm:"type:varchar(32);not null"`
	ProductName string          `gorm:"type:varchar(64);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
}

func (LineDTO) TableName() string {
	return "order_detail"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	buyer := aggregate.Buyer()
	lines := aggregate.Lines()

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		BuyerName:    buyer.Name(),
		BuyerPhone:   buyer.Phone(),
		BuyerAddress: buyer.Address(),
		BuyerID:      buyer.ID(),
		TotalAmount:  aggregate.Total().Amount(),
		Status:       int(aggregate.Status()),
		PayStatus:    int(aggregate.PayStatus()),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Lines:        make([]LineDTO, 0, len(lines)),
	}

	for i, l := range lines {
		dto.Lines = append(dto.Lines, LineDTO{
			ID:          l.ID().Bytes(),
			OrderID:     l.OrderID().Bytes(),
			Position:    i,
			ProductID:   l.ProductID(),
			ProductName: l.ProductName(),
			UnitPrice:   l.UnitPrice().Amount(),
			Quantity:    l.Quantity(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := order.NewBuyer(dto.BuyerName, dto.BuyerPhone, dto.BuyerAddress, dto.BuyerID)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		buyer,
		total,
		order.Status(dto.Status),
		order.PayStatus(dto.PayStatus),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		lines,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, orderID, dto.ProductID, dto.ProductName, price, dto.Quantity)
}
