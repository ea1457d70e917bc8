package payment

import (
	"bytes"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kasir-be/internal/apperr"
	"kasir-be/internal/logger"

	"go.uber.org/zap"
)

const (
	sandboxSnapURL = "https://app.sandbox.midtrans.com"
	sandboxAPIURL  = "https://api.sandbox.midtrans.com"

	productionSnapURL = "https://app.midtrans.com"
	productionAPIURL  = "https://api.midtrans.com"
)

type Gateway interface {
	CreateSnapSession(ctx context.Context, orderID string, grossAmount float64) (*SnapSession, error)
	GetTransactionStatus(ctx context.Context, orderID string) (*TransactionStatus, error)
	VerifySignature(n *Notification) error
}

type midtransGateway struct {
	serverKey       string
	snapBaseURL     string
	apiBaseURL      string
	verifySignature bool
	httpClient      *http.Client
}

// NewMidtransGateway builds the gateway client. env == "production"
// selects the live Midtrans hosts, anything else the sandbox.
func NewMidtransGateway(serverKey, env string, verifySignature bool) Gateway {
	if serverKey == "" {
		logger.L().Warn("Midtrans server key is empty")
	}

	snapURL, apiURL := sandboxSnapURL, sandboxAPIURL
	if env == "production" {
		snapURL, apiURL = productionSnapURL, productionAPIURL
	}

	return &midtransGateway{
		serverKey:       serverKey,
		snapBaseURL:     snapURL,
		apiBaseURL:      apiURL,
		verifySignature: verifySignature,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- CreateSnapSession -----------------

// CreateSnapSession opens a Snap checkout session. The gateway's body
// and HTTP status are handed back verbatim, including on a non-2xx
// answer: the front-end consumes Midtrans error payloads directly.
func (m *midtransGateway) CreateSnapSession(ctx context.Context, orderID string, grossAmount float64) (*SnapSession, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.Float64("gross_amount", grossAmount),
	)

	if m.serverKey == "" {
		return nil, fmt.Errorf("%w: MIDTRANS_SERVER_KEY not configured", apperr.ErrConfiguration)
	}

	body := map[string]interface{}{
		"transaction_details": map[string]interface{}{
			"order_id":     orderID,
			"gross_amount": grossAmount,
		},
		"credit_card": map[string]interface{}{
			"secure": true,
		},
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal snap request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.snapBaseURL+"/snap/v1/transactions", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(m.serverKey, "")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/json")

	log.Info("Sending snap session request to Midtrans")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Error("Midtrans request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperr.ErrGateway, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read midtrans response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Midtrans returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
	} else {
		log.Info("Snap session created", zap.Int("status", resp.StatusCode))
	}

	return &SnapSession{
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(bodyBytes),
	}, nil
}

// ----------------- GetTransactionStatus -----------------

func (m *midtransGateway) GetTransactionStatus(ctx context.Context, orderID string) (*TransactionStatus, error) {
	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID))

	if m.serverKey == "" {
		return nil, fmt.Errorf("%w: MIDTRANS_SERVER_KEY not configured", apperr.ErrConfiguration)
	}

	url := fmt.Sprintf("%s/v2/%s/status", m.apiBaseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		log.Error("Failed building request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(m.serverKey, "")
	req.Header.Add("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Error("Request to Midtrans failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperr.ErrGateway, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read midtrans response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		log.Warn("Transaction not found on gateway")
		return nil, apperr.ErrTransactionNotFound
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Midtrans returned error",
			zap.Int("http_status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: %s", apperr.ErrGateway, string(bodyBytes))
	}

	var ts TransactionStatus
	if err := json.Unmarshal(bodyBytes, &ts); err != nil {
		log.Error("Failed decoding status response", zap.Error(err))
		return nil, err
	}
	ts.Raw = json.RawMessage(bodyBytes)

	log.Info("Transaction status fetched",
		zap.String("transaction_status", ts.TransactionStatus),
		zap.String("fraud_status", ts.FraudStatus),
	)

	return &ts, nil
}

// ----------------- Verify Signature -----------------

// VerifySignature checks the notification's signature_key, which
// Midtrans derives as sha512(order_id + status_code + gross_amount +
// server_key). Verification is opt-in and disabled by default.
func (m *midtransGateway) VerifySignature(n *Notification) error {
	if !m.verifySignature {
		return nil
	}

	if m.serverKey == "" {
		return fmt.Errorf("%w: MIDTRANS_SERVER_KEY not configured", apperr.ErrConfiguration)
	}

	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + m.serverKey))
	expected := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) != 1 {
		return fmt.Errorf("%w: invalid webhook signature", apperr.ErrValidation)
	}
	return nil
}
