package services

import (
	"donation-service/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

func CreateMockDonation(id uint64, orderID string, amount string, status domain.DonationStatus) *domain.Donation {
	return &domain.Donation{
		ID:         id,
		OrderID:    orderID,
		DonorName:  TestDonorName,
		DonorEmail: TestDonorEmail,
		DonorPhone: TestDonorPhone,
		Amount:     decimal.RequireFromString(amount),
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

const (
	TestDonationID = uint64(1)
	TestOrderID    = "order_Myx7abc123"
	TestPaymentID  = "pay_Nzt9def456"
	TestSignature  = "deadbeefsignature"
	TestDonorName  = "Asha Verma"
	TestDonorEmail = "asha@example.com"
	TestDonorPhone = "9876543210"
	TestKeyID      = "rzp_test_key"
	TestCurrency   = "INR"
)
