package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"donation-service/internal/domain"
	rabbit "donation-service/internal/infra/rabbitmq"
	"donation-service/internal/infra/razorpay"
	"donation-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrSignatureInvalid   = errors.New("signature verification failed")
	ErrAmountMismatch     = errors.New("amount mismatch")
	ErrOrderNotFound      = errors.New("donation order not found")
)

const receiptRoutingKey = "donation.receipt"

// Checkout is everything the donor-facing page needs to open the gateway's
// payment widget for a freshly created order.
type Checkout struct {
	OrderID       string `json:"razorpay_order_id"`
	KeyID         string `json:"razorpay_key_id"`
	AmountPaise   int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Currency      string `json:"currency"`
	DonationID    uint64 `json:"donation_id"`
}

type DonationService struct {
	repo      repository.DonationRepository
	gateway   razorpay.ClientInterface
	publisher rabbit.PublisherInterface
	keyID     string
	currency  string
}

func NewDonationService(r repository.DonationRepository, g razorpay.ClientInterface, pub rabbit.PublisherInterface, keyID, currency string) *DonationService {
	return &DonationService{
		repo:      r,
		gateway:   g,
		publisher: pub,
		keyID:     keyID,
		currency:  currency,
	}
}

// CreateDonation validates the requested amount, registers an order with the
// gateway, and persists a pending donation. The gateway call happens first so
// a gateway failure never leaves an orphaned pending row.
func (s *DonationService) CreateDonation(ctx context.Context, donorName, donorEmail, donorPhone, amount string) (*Checkout, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil || !parsed.IsPositive() {
		return nil, ErrInvalidAmount
	}

	amountPaise := parsed.Shift(2).Round(0).IntPart()
	receipt := "donation_" + uuid.NewString()

	orderID, err := s.gateway.CreateOrder(ctx, amountPaise, s.currency, receipt)
	if err != nil {
		log.Printf("gateway order create failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	donation := &domain.Donation{
		OrderID:    orderID,
		DonorName:  donorName,
		DonorEmail: donorEmail,
		DonorPhone: donorPhone,
		Amount:     parsed,
		Status:     domain.StatusPending,
	}

	if err := s.repo.Save(donation); err != nil {
		return nil, err
	}

	return &Checkout{
		OrderID:       orderID,
		KeyID:         s.keyID,
		AmountPaise:   amountPaise,
		AmountDisplay: parsed.StringFixed(2),
		Currency:      s.currency,
		DonationID:    donation.ID,
	}, nil
}

// VerifyPayment reconciles a gateway callback against the stored order:
// signature first, then the gateway-reported amount against the amount
// captured at creation. Either check failing moves the order to failed; only
// the caller that wins the pending->success transition sends the receipt.
func (s *DonationService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*domain.Donation, error) {
	donation, err := s.repo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrOrderNotFound
	}

	if donation.Status.Terminal() {
		log.Printf("verification replay for order %s already in status %s", orderID, donation.Status)
		return donation, nil
	}

	if err := s.gateway.VerifySignature(orderID, paymentID, signature); err != nil {
		log.Printf("SECURITY: signature verification failed for order %s", orderID)
		if _, ferr := s.repo.MarkFailed(orderID, paymentID, signature); ferr != nil {
			log.Printf("failed to mark order %s failed: %v", orderID, ferr)
		}
		return donation, ErrSignatureInvalid
	}

	payment, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		log.Printf("gateway payment fetch failed for order %s: %v", orderID, err)
		return donation, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if payment.Amount != donation.AmountInPaise() {
		log.Printf("SECURITY: amount mismatch for order %s: gateway reported %d, expected %d", orderID, payment.Amount, donation.AmountInPaise())
		if _, ferr := s.repo.MarkFailed(orderID, paymentID, signature); ferr != nil {
			log.Printf("failed to mark order %s failed: %v", orderID, ferr)
		}
		return donation, ErrAmountMismatch
	}

	won, err := s.repo.MarkSuccess(orderID, paymentID, signature)
	if err != nil {
		return nil, err
	}
	if !won {
		// A concurrent callback got there first.
		current, err := s.repo.FindByOrderID(orderID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrOrderNotFound
		}
		return current, nil
	}

	donation.Status = domain.StatusSuccess
	donation.PaymentID = paymentID
	donation.Signature = signature

	s.sendReceipt(ctx, donation)

	return donation, nil
}

// GetDonation looks up a donation for the thank-you page.
func (s *DonationService) GetDonation(ctx context.Context, id uint64) (*domain.Donation, error) {
	donation, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrOrderNotFound
	}
	return donation, nil
}

// sendReceipt hands the donation to the mail worker. Failures are logged
// only: the payment already succeeded, so the verification response must not
// depend on the receipt.
func (s *DonationService) sendReceipt(ctx context.Context, donation *domain.Donation) {
	evt := domain.ReceiptEvent{
		DonationID: donation.ID,
		DonorName:  donation.DonorName,
		DonorEmail: donation.DonorEmail,
		Amount:     donation.Amount.StringFixed(2),
		PaymentID:  donation.PaymentID,
		OrderID:    donation.OrderID,
		PaidAt:     time.Now(),
	}

	if err := s.publisher.Publish(ctx, receiptRoutingKey, evt); err != nil {
		log.Printf("Failed to publish receipt event for donation %d: %v", donation.ID, err)
	}
}
