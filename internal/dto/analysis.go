package dto

import "github.com/thedev2003/amount-detector/internal/models"

type TextRequest struct {
	Text string `json:"text" example:"Invoice Total: 5000 INR. Paid amount 2000, balance due is 3000."`
}

type AnalysisResponse struct {
	Currency string          `json:"currency" example:"INR"`
	Amounts  []models.Amount `json:"amounts"`
	Status   string          `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
