package razorpay

import "context"

type ClientInterface interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) error
	FetchPayment(ctx context.Context, paymentID string) (*Payment, error)
}

var _ ClientInterface = (*Client)(nil)
