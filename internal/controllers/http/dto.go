package http

type DonateRequest struct {
	DonorName  string `json:"donor_name" binding:"required"`
	DonorEmail string `json:"donor_email" binding:"required,email"`
	DonorPhone string `json:"donor_phone" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

type CallbackRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type CallbackResponse struct {
	Status     string `json:"status"`
	DonationID uint64 `json:"donation_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
