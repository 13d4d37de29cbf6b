// Package payment holds the refund adapter of the seller service.
package payment

import (
	"context"

	"seller/internal/core/domain/model/order"

	log "github.com/sirupsen/logrus"
)

// LoggingRefundService records refunds without calling a payment provider.
// It accepts every request; a gateway-backed implementation replaces it once
// a provider is chosen.
type LoggingRefundService struct {
	logger *log.Entry
}

func NewLoggingRefundService(logger *log.Entry) *LoggingRefundService {
	return &LoggingRefundService{logger: logger.WithField("component", "refund_service")}
}

func (s *LoggingRefundService) Refund(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.logger.WithContext(ctx).WithFields(log.Fields{
		"order_id": aggregate.ID().String(),
		"buyer_id": aggregate.Buyer().ID(),
		"amount":   aggregate.Total().String(),
	}).Info("refund issued")
	return nil
}
