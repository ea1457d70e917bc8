package order

// Status is the internal order-status vocabulary. Midtrans transaction
// states are folded into these three values by payment.MapStatus.
type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
	StatusCancelled      Status = "cancelled"

	// StatusNotFound is reported by the status poller when the gateway
	// has no transaction for the order. It is never persisted.
	StatusNotFound Status = "not_found"
)
