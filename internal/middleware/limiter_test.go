package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimitMiddleware(next)

	t.Run("AllowsWithinBurst", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/payment", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		for i := 0; i < burstStrict; i++ {
			w := httptest.NewRecorder()
			limited.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i)
		}
	})

	t.Run("BlocksBeyondBurst", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/payment", nil)
		req.RemoteAddr = "10.0.0.2:1234"

		var last int
		for i := 0; i < burstStrict+2; i++ {
			w := httptest.NewRecorder()
			limited.ServeHTTP(w, req)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("WebhookToleratesRetryBursts", func(t *testing.T) {
		// Gateway notification retries arrive in bursts from few IPs;
		// a strict-tier burst must not 429 them.
		req := httptest.NewRequest("POST", "/webhook/payment", nil)
		req.RemoteAddr = "10.0.0.4:1234"

		for i := 0; i < burstStrict+2; i++ {
			w := httptest.NewRecorder()
			limited.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "notification %d should pass", i)
		}
	})

	t.Run("SeparateBucketsPerIP", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("POST", "/payment", nil)
			req.RemoteAddr = fmt.Sprintf("10.0.1.%d:1234", i)
			w := httptest.NewRecorder()
			limited.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("PreflightNeverLimited", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/payment", nil)
		req.RemoteAddr = "10.0.0.3:1234"

		for i := 0; i < burstStrict*3; i++ {
			w := httptest.NewRecorder()
			limited.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestResolveRateTier(t *testing.T) {
	t.Run("StrictForPaymentInitiation", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/payment", nil)
		limit, burst, tier := resolveRateTier(req)
		assert.Equal(t, limitStrict, limit)
		assert.Equal(t, burstStrict, burst)
		assert.Equal(t, "strict", tier)
	})

	t.Run("GeneralForWebhook", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/webhook/payment", nil)
		limit, burst, tier := resolveRateTier(req)
		assert.Equal(t, limitGeneral, limit)
		assert.Equal(t, burstGeneral, burst)
		assert.Equal(t, "general", tier)
	})

	t.Run("GeneralOtherwise", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		limit, burst, tier := resolveRateTier(req)
		assert.Equal(t, limitGeneral, limit)
		assert.Equal(t, burstGeneral, burst)
		assert.Equal(t, "general", tier)
	})
}
