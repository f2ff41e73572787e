package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig(baseURL string) Config {
	return Config{
		KeyID:     "rzp_test_key",
		KeySecret: "test_secret",
		BaseURL:   baseURL,
		Currency:  "INR",
		Timeout:   2 * time.Second,
	}
}

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestClient_CreateOrder(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "test_secret", pass)

		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "order_Myx7abc123",
			"amount": 50000,
			"status": "created",
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	orderID, err := client.CreateOrder(context.Background(), 50000, "INR", "donation_ref")
	assert.NoError(t, err)
	assert.Equal(t, "order_Myx7abc123", orderID)

	assert.Equal(t, float64(50000), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
	assert.Equal(t, "donation_ref", gotBody["receipt"])
	assert.Equal(t, float64(1), gotBody["payment_capture"])
}

func TestClient_CreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.CreateOrder(context.Background(), 50000, "INR", "donation_ref")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_CreateOrder_ConnectionRefused(t *testing.T) {
	// Closed server: transport-level failure, not an HTTP status.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.CreateOrder(context.Background(), 50000, "INR", "donation_ref")
	assert.Error(t, err)
}

func TestClient_VerifySignature(t *testing.T) {
	client := NewClient(testConfig("http://unused"))

	valid := sign("order_Myx7abc123", "pay_Nzt9def456", "test_secret")

	assert.NoError(t, client.VerifySignature("order_Myx7abc123", "pay_Nzt9def456", valid))

	// Deterministic: same inputs, same outcome.
	for i := 0; i < 3; i++ {
		assert.NoError(t, client.VerifySignature("order_Myx7abc123", "pay_Nzt9def456", valid))
	}

	err := client.VerifySignature("order_Myx7abc123", "pay_Nzt9def456", "tampered")
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// Signature over a different payment id must not validate.
	err = client.VerifySignature("order_Myx7abc123", "pay_other", valid)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// Different secret yields a different signature.
	other := NewClient(Config{KeySecret: "other_secret"})
	err = other.VerifySignature("order_Myx7abc123", "pay_Nzt9def456", valid)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestClient_FetchPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/pay_Nzt9def456", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Payment{
			ID:       "pay_Nzt9def456",
			Amount:   50000,
			Currency: "INR",
			Status:   "captured",
			OrderID:  "order_Myx7abc123",
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	p, err := client.FetchPayment(context.Background(), "pay_Nzt9def456")
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), p.Amount)
	assert.Equal(t, "captured", p.Status)
}

func TestClient_FetchPayment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.FetchPayment(context.Background(), "pay_unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
