package jobs

import (
	"context"
	"errors"
	"time"

	"seller/internal/core/application/usecases/commands"
	"seller/internal/core/application/usecases/queries"
	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// PaymentTimeoutBatchSize caps the number of orders canceled in one tick.
const PaymentTimeoutBatchSize = 100

// ExpiredOrdersFinder lists New orders still waiting for payment.
type ExpiredOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetExpiredUnpaidOrdersQuery) ([]kernel.UUID, error)
}

// OrderCanceler cancels a single order.
type OrderCanceler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
}

// PaymentTimeoutJob cancels orders that stayed unpaid for longer than timeout.
// Runs at the start of every minute.
type PaymentTimeoutJob struct {
	finder   ExpiredOrdersFinder
	canceler OrderCanceler
	timeout  time.Duration
	cron     *cron.Cron
	now      func() time.Time
	logger   *log.Entry
}

// NewPaymentTimeoutJob creates the job. Orders created more than timeout ago
// that are still New and unpaid are canceled through canceler, which returns
// their goods to stock.
func NewPaymentTimeoutJob(
	finder ExpiredOrdersFinder,
	canceler OrderCanceler,
	timeout time.Duration,
	logger *log.Entry,
) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		finder:   finder,
		canceler: canceler,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.WithField("component", "payment_timeout_job"),
	}
}

// Start schedules the job to run every minute.
func (j *PaymentTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("timeout", j.timeout.String()).Info("Payment timeout job started (running every minute)")
	return nil
}

// Run performs one pass and returns the number of canceled orders.
func (j *PaymentTimeoutJob) Run(ctx context.Context) int {
	query, err := queries.NewGetExpiredUnpaidOrdersQuery(j.now().Add(-j.timeout), PaymentTimeoutBatchSize)
	if err != nil {
		j.logger.WithError(err).Error("Payment timeout job failed to build query")
		return 0
	}

	ids, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.WithError(err).Error("Payment timeout job failed to list expired orders")
		return 0
	}

	canceled := 0
	for _, id := range ids {
		entry := j.logger.WithField("order_id", id.String())

		cmd, cmdErr := commands.NewCancelOrderCommand(id)
		if cmdErr != nil {
			entry.WithError(cmdErr).Error("Payment timeout job got an invalid order id")
			continue
		}

		if _, cancelErr := j.canceler.Handle(ctx, cmd); cancelErr != nil {
			// Paid, finished or canceled since the query ran
			if errors.Is(cancelErr, order.ErrOrderStatusInvalid) || errors.Is(cancelErr, order.ErrOrderNotFound) {
				entry.WithError(cancelErr).Debug("Payment timeout job skipped order")
				continue
			}
			entry.WithError(cancelErr).Error("Payment timeout job failed to cancel order")
			continue
		}

		entry.Info("Order canceled after payment timeout")
		canceled++
	}

	return canceled
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *PaymentTimeoutJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Payment timeout job stopped")
}
