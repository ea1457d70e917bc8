package payment

import "kasir-be/internal/order"

// Midtrans transaction states. Fraud status only matters for capture.
const (
	TxCapture    = "capture"
	TxSettlement = "settlement"
	TxCancel     = "cancel"
	TxDeny       = "deny"
	TxExpire     = "expire"
	TxPending    = "pending"

	FraudAccept    = "accept"
	FraudChallenge = "challenge"
)

// MapStatus reconciles a Midtrans (transaction_status, fraud_status)
// pair into the internal order status. Both the webhook receiver and
// the status poller must go through this single definition.
//
// A capture is only paid when the fraud screen accepted it; a
// challenged or unscreened capture stays pending until reviewed.
// Unrecognized states fall back to pending_payment rather than
// guessing a terminal state.
func MapStatus(transactionStatus, fraudStatus string) order.Status {
	switch transactionStatus {
	case TxCapture:
		if fraudStatus == FraudAccept {
			return order.StatusPaid
		}
		return order.StatusPendingPayment

	case TxSettlement:
		return order.StatusPaid

	case TxCancel, TxDeny, TxExpire:
		return order.StatusCancelled

	case TxPending:
		return order.StatusPendingPayment

	default:
		return order.StatusPendingPayment
	}
}
