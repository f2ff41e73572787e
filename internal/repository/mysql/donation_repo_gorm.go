package mysql

import (
	"errors"
	"log"

	"donation-service/internal/domain"
	"donation-service/internal/repository"

	"gorm.io/gorm"
)

type donationRepo struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepo{db: db}
}

func (r *donationRepo) Save(donation *domain.Donation) error {
	result := r.db.Create(donation)
	if result.Error != nil {
		log.Printf("Database save error: %v", result.Error)
		return result.Error
	}

	if donation.ID == 0 {
		log.Printf("WARNING: Donation saved but ID is still 0. Rows affected: %d", result.RowsAffected)
		return errors.New("failed to assign donation ID")
	}

	return nil
}

func (r *donationRepo) FindByID(id uint64) (*domain.Donation, error) {
	var d domain.Donation
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *donationRepo) FindByOrderID(orderID string) (*domain.Donation, error) {
	var d domain.Donation
	if err := r.db.Where("order_id = ?", orderID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByOrderID error: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *donationRepo) MarkSuccess(orderID, paymentID, signature string) (bool, error) {
	return r.transition(orderID, domain.StatusSuccess, paymentID, signature)
}

func (r *donationRepo) MarkFailed(orderID, paymentID, signature string) (bool, error) {
	return r.transition(orderID, domain.StatusFailed, paymentID, signature)
}

// transition is a compare-and-set on status: the update only applies while
// the row is still pending, so concurrent callbacks for the same order
// resolve to exactly one winner.
func (r *donationRepo) transition(orderID string, status domain.DonationStatus, paymentID, signature string) (bool, error) {
	result := r.db.Model(&domain.Donation{}).
		Where("order_id = ? AND status = ?", orderID, domain.StatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"payment_id": paymentID,
			"signature":  signature,
		})
	if result.Error != nil {
		log.Printf("transition to %s error: %v", status, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
