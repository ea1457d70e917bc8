package payment

import "encoding/json"

// Notification is the JSON body Midtrans pushes to the webhook
// endpoint. Only order_id, transaction_status and fraud_status drive
// reconciliation; the rest is carried for signature checks and logs.
type Notification struct {
	TransactionType   string `json:"transaction_type,omitempty"`
	TransactionTime   string `json:"transaction_time,omitempty"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id,omitempty"`
	StatusMessage     string `json:"status_message,omitempty"`
	StatusCode        string `json:"status_code,omitempty"`
	SignatureKey      string `json:"signature_key,omitempty"`
	SettlementTime    string `json:"settlement_time,omitempty"`
	PaymentType       string `json:"payment_type,omitempty"`
	OrderID           string `json:"order_id"`
	MerchantID        string `json:"merchant_id,omitempty"`
	GrossAmount       string `json:"gross_amount,omitempty"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	Currency          string `json:"currency,omitempty"`
}

// SnapSession is the gateway's answer to a session-creation call,
// kept verbatim. A Snap token is a checkout attempt, not a payment
// confirmation, so nothing here is persisted.
type SnapSession struct {
	StatusCode int
	Body       json.RawMessage
}

// TransactionStatus is the parsed result of a status lookup, with the
// raw body retained for the caller's diagnostics payload.
type TransactionStatus struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`

	Raw json.RawMessage `json:"-"`
}
