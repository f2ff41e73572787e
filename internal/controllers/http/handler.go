package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"donation-service/internal/domain"
	"donation-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	service *services.DonationService
	rdb     *redis.Client
}

func NewHandler(s *services.DonationService, rdb *redis.Client) *Handler {
	return &Handler{service: s, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/donate", h.Donate)
	r.POST("/payment/callback", h.PaymentCallback)
	r.GET("/donations/:id", h.GetDonation)
}

func (h *Handler) Donate(c *gin.Context) {
	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	checkout, err := h.service.CreateDonation(ctx, req.DonorName, req.DonorEmail, req.DonorPhone, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Amount"})
		case errors.Is(err, services.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, checkout)
}

func (h *Handler) PaymentCallback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, CallbackResponse{Status: "error", Error: err.Error()})
		return
	}

	ctx := c.Request.Context()

	donation, err := h.service.VerifyPayment(ctx, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, CallbackResponse{Status: "error", Error: "donation order not found"})
		case errors.Is(err, services.ErrSignatureInvalid):
			h.invalidateCache(donation)
			c.JSON(http.StatusOK, CallbackResponse{Status: "failed", DonationID: donation.ID, Error: "Signature verification failed"})
		case errors.Is(err, services.ErrAmountMismatch):
			h.invalidateCache(donation)
			c.JSON(http.StatusOK, CallbackResponse{Status: "failed", DonationID: donation.ID, Error: "Amount mismatch"})
		case errors.Is(err, services.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, CallbackResponse{Status: "error", Error: "payment gateway unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, CallbackResponse{Status: "error", Error: err.Error()})
		}
		return
	}

	h.invalidateCache(donation)

	if donation.Status == domain.StatusSuccess {
		c.JSON(http.StatusOK, CallbackResponse{Status: "success", DonationID: donation.ID})
		return
	}
	c.JSON(http.StatusOK, CallbackResponse{Status: "failed", DonationID: donation.ID})
}

func (h *Handler) GetDonation(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
		return
	}

	cacheKey := "donation:" + idStr

	ctx := context.Background()
	b, err := h.rdb.Get(ctx, cacheKey).Result()
	if err == nil {
		var cached map[string]any
		_ = json.Unmarshal([]byte(b), &cached)
		c.JSON(http.StatusOK, cached)
		return
	}

	donation, err := h.service.GetDonation(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The thank-you page only shows completed donations.
	if donation.Status != domain.StatusSuccess {
		c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
		return
	}

	data, _ := json.Marshal(donation)
	h.rdb.Set(ctx, cacheKey, data, 10*time.Second)

	c.JSON(http.StatusOK, donation)
}

func (h *Handler) invalidateCache(donation *domain.Donation) {
	if donation == nil {
		return
	}
	cacheKey := "donation:" + strconv.FormatUint(donation.ID, 10)
	h.rdb.Del(context.Background(), cacheKey)
}
