package dto

import "github.com/trial-marketplace/backend/internal/models"

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type SelectionResponse struct {
	SelectedCount int64 `json:"selected_count"`
	RejectedCount int64 `json:"rejected_count"`
}
