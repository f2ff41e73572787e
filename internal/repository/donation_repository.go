package repository

import (
	"donation-service/internal/domain"
)

type DonationRepository interface {
	Save(donation *domain.Donation) error
	FindByID(id uint64) (*domain.Donation, error)
	FindByOrderID(orderID string) (*domain.Donation, error)
	// MarkSuccess and MarkFailed apply a terminal transition only while the
	// row is still pending. The bool reports whether this caller won the
	// transition.
	MarkSuccess(orderID, paymentID, signature string) (bool, error)
	MarkFailed(orderID, paymentID, signature string) (bool, error)
}
