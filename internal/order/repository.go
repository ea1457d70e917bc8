package order

import (
	"context"
	"database/sql"
	"fmt"

	"kasir-be/internal/apperr"
	"kasir-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// UpdateStatus writes the reconciled status onto the order row. An
// unknown order_id matches zero rows and is not an error: Midtrans may
// replay notifications for orders that were created elsewhere.
func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		status, orderID,
	)
	if err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}

	rows, _ := res.RowsAffected()
	log.Info("order status updated", zap.Int64("rows_affected", rows))

	return nil
}
