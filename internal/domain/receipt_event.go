package domain

import "time"

// ReceiptEvent is what the mail worker consumes to send a donation receipt.
type ReceiptEvent struct {
	DonationID uint64    `json:"donationId"`
	DonorName  string    `json:"donorName"`
	DonorEmail string    `json:"donorEmail"`
	Amount     string    `json:"amount"`
	PaymentID  string    `json:"paymentId"`
	OrderID    string    `json:"orderId"`
	PaidAt     time.Time `json:"paidAt"`
}
