package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"kasir-be/internal/apperr"
	"kasir-be/internal/logger"
	"kasir-be/internal/order"
	"kasir-be/internal/payment"

	"go.uber.org/zap"
)

const actionCheckStatus = "check_status"

// Handler carries the two collaborators every entry point needs: the
// Midtrans gateway client and the order store.
type Handler struct {
	Gateway payment.Gateway
	Orders  order.Repository
}

func New(gateway payment.Gateway, orders order.Repository) *Handler {
	return &Handler{
		Gateway: gateway,
		Orders:  orders,
	}
}

// paymentRequest is the consolidated body for /payment. Historical
// clients disagree on the order-id spelling, so both are accepted.
type paymentRequest struct {
	OrderID      string  `json:"order_id"`
	OrderIDCamel string  `json:"orderId"`
	Amount       float64 `json:"amount"`
	Action       string  `json:"action"`
}

func (r *paymentRequest) orderID() string {
	if r.OrderID != "" {
		return r.OrderID
	}
	return r.OrderIDCamel
}

// PaymentHandler serves POST /payment. action == "check_status"
// selects the status poll; any other or absent action creates a Snap
// checkout session.
func (h *Handler) PaymentHandler(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		respondOK(w)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(r, w, fmt.Errorf("%w: invalid JSON body", apperr.ErrValidation))
		return
	}

	if req.Action == actionCheckStatus {
		h.checkStatus(w, r, &req)
		return
	}
	h.createSession(w, r, &req)
}

// createSession opens a checkout session with the gateway and relays
// the gateway's body and status code untouched. A session is not a
// payment confirmation, so nothing is written to the order store.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request, req *paymentRequest) {
	orderID := req.orderID()
	if orderID == "" {
		respondError(r, w, fmt.Errorf("%w: missing order_id", apperr.ErrValidation))
		return
	}
	if req.Amount <= 0 {
		respondError(r, w, fmt.Errorf("%w: amount must be positive", apperr.ErrValidation))
		return
	}

	sess, err := h.Gateway.CreateSnapSession(r.Context(), orderID, req.Amount)
	if err != nil {
		respondError(r, w, err)
		return
	}

	// Success is always 200 regardless of the gateway's own 2xx flavor
	// (Snap answers with 201); only failures relay the gateway status.
	status := sess.StatusCode
	if status >= 200 && status < 300 {
		status = http.StatusOK
	}
	respondRaw(w, status, sess.Body)
}

// checkStatus polls the gateway for the transaction's current state.
// A gateway 404 is a normal outcome: the transaction simply does not
// exist yet. The store is only written when the computed status left
// pending_payment, so a stale poll cannot regress a paid order.
func (h *Handler) checkStatus(w http.ResponseWriter, r *http.Request, req *paymentRequest) {
	orderID := req.orderID()
	if orderID == "" {
		respondError(r, w, fmt.Errorf("%w: missing order_id", apperr.ErrValidation))
		return
	}

	ts, err := h.Gateway.GetTransactionStatus(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperr.ErrTransactionNotFound) {
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"status": order.StatusNotFound,
			})
			return
		}
		respondError(r, w, err)
		return
	}

	status := payment.MapStatus(ts.TransactionStatus, ts.FraudStatus)

	if status != order.StatusPendingPayment {
		if err := h.Orders.UpdateStatus(r.Context(), orderID, status); err != nil {
			respondError(r, w, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":        status,
		"midtrans_data": ts.Raw,
	})
}

// WebhookHandler serves POST /webhook/payment, the endpoint Midtrans
// pushes asynchronous notifications to. The computed status is written
// unconditionally; a non-matching order_id updates zero rows silently.
func (h *Handler) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		respondOK(w)
		return
	}

	log := logger.FromCtx(r.Context())

	var n payment.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		respondError(r, w, fmt.Errorf("%w: invalid JSON body", apperr.ErrValidation))
		return
	}

	log.Info("Received Midtrans notification",
		zap.String("order_id", n.OrderID),
		zap.String("transaction_status", n.TransactionStatus),
		zap.String("fraud_status", n.FraudStatus),
		zap.String("payment_type", n.PaymentType),
	)

	if n.OrderID == "" {
		respondError(r, w, fmt.Errorf("%w: missing order_id in notification", apperr.ErrValidation))
		return
	}

	if err := h.Gateway.VerifySignature(&n); err != nil {
		respondError(r, w, err)
		return
	}

	status := payment.MapStatus(n.TransactionStatus, n.FraudStatus)

	log.Info("Updating order status",
		zap.String("order_id", n.OrderID),
		zap.String("status", string(status)),
	)

	if err := h.Orders.UpdateStatus(r.Context(), n.OrderID, status); err != nil {
		respondError(r, w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "OK",
		"status":  status,
	})
}
