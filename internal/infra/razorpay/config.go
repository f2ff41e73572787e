package razorpay

import (
	"os"
	"time"
)

type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Currency  string
	Timeout   time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		BaseURL:   getEnvOrDefault("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		Currency:  getEnvOrDefault("RAZORPAY_CURRENCY", "INR"),
		Timeout:   10 * time.Second,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
