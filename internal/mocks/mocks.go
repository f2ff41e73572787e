package mocks

import (
	"context"

	"donation-service/internal/domain"
	"donation-service/internal/infra/razorpay"

	"github.com/stretchr/testify/mock"
)

type MockDonationRepository struct {
	mock.Mock
}

type MockGatewayClient struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockDonationRepository) Save(donation *domain.Donation) error {
	args := m.Called(donation)
	return args.Error(0)
}

func (m *MockDonationRepository) FindByID(id uint64) (*domain.Donation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) FindByOrderID(orderID string) (*domain.Donation, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) MarkSuccess(orderID, paymentID, signature string) (bool, error) {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0), args.Error(1)
}

func (m *MockDonationRepository) MarkFailed(orderID, paymentID, signature string) (bool, error) {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0), args.Error(1)
}

func (m *MockGatewayClient) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	args := m.Called(ctx, amountPaise, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *MockGatewayClient) VerifySignature(orderID, paymentID, signature string) error {
	args := m.Called(orderID, paymentID, signature)
	return args.Error(0)
}

func (m *MockGatewayClient) FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*razorpay.Payment), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data interface{}) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
