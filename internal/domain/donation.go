package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	StatusPending DonationStatus = "pending"
	StatusSuccess DonationStatus = "success"
	StatusFailed  DonationStatus = "failed"
)

// Terminal reports whether the status can no longer transition.
func (s DonationStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

type Donation struct {
	ID         uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    string          `json:"orderId" gorm:"column:order_id;type:varchar(100);uniqueIndex;not null"`
	DonorName  string          `json:"donorName" gorm:"type:varchar(100);not null"`
	DonorEmail string          `json:"donorEmail" gorm:"type:varchar(254);not null"`
	DonorPhone string          `json:"donorPhone" gorm:"type:varchar(15);not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status     DonationStatus  `json:"status" gorm:"type:enum('pending','success','failed');default:'pending'"`
	PaymentID  string          `json:"paymentId" gorm:"column:payment_id;type:varchar(100)"`
	Signature  string          `json:"-" gorm:"type:varchar(200)"`
	CreatedAt  time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// AmountInPaise converts the stored amount to the gateway's minor currency
// unit. Exact for two-decimal amounts, rounded otherwise.
func (d *Donation) AmountInPaise() int64 {
	return d.Amount.Shift(2).Round(0).IntPart()
}
