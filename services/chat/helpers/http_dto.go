package helpers

import "procurv/internal/chat"

// Request/Response DTOs
type ChatTurnRequest struct {
	Text         string      `json:"text" binding:"required"`
	ContextSlots *chat.Slots `json:"context_slots"`
}

type SummarizeRequest struct {
	Question        string  `json:"question"`
	Round           int     `json:"round"`
	WinnerName      string  `json:"winner_name"`
	WinnerPrice     float64 `json:"winner_price"`
	WinnerCompliant bool    `json:"winner_compliant"`
	RunnerUpName    string  `json:"runner_up_name"`
	RunnerUpPrice   float64 `json:"runner_up_price"`
	PriceGap        float64 `json:"price_gap"`
	ComplianceNotes string  `json:"compliance_notes"`
}

type SummarizeResponse struct {
	Message string `json:"message"`
}

type LeadRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

type LeadResponse struct {
	Email string `json:"email"`
}
