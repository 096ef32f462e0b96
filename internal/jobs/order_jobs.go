package jobs

import (
	"context"

	"prokat-rental/internal/logger"
)

// ActivateOrders moves pending orders whose rental has started to active
func (jr *JobRunner) ActivateOrders() {
	jr.runWithRecovery("ActivateOrders", func() {
		count, err := jr.orders.ActivateStartedOrders(context.Background(), jr.now().UTC())
		if err != nil {
			logger.Error("Failed to activate orders", "error", err)
			return
		}
		logger.Info("Activated orders", "count", count)
	})
}

// CompleteOrders closes active orders whose rental has ended and returns
// their equipment to the catalog
func (jr *JobRunner) CompleteOrders() {
	jr.runWithRecovery("CompleteOrders", func() {
		count, err := jr.orders.CompleteFinishedOrders(context.Background(), jr.now().UTC())
		if err != nil {
			logger.Error("Failed to complete orders", "error", err)
			return
		}
		logger.Info("Completed orders", "count", count)
	})
}
