package handler

import (
	"context"
	"fmt"
	"net/http"

	"procurv/internal/chat"
	auctionhelpers "procurv/services/auction/helpers"
	"procurv/services/chat/helpers"
	"procurv/utils"

	"github.com/gin-gonic/gin"
)

type ChatServiceInterface interface {
	Turn(ctx context.Context, text string, prior chat.Slots) (chat.TurnResult, error)
	Summarize(ctx context.Context, req chat.SummarizeRequest) string
}

type ChatHandler struct {
	service ChatServiceInterface
}

func NewChatHandler(service ChatServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// ChatTurnHandler handles POST /chat
func (h *ChatHandler) ChatTurnHandler(c *gin.Context) {
	var req helpers.ChatTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		auctionhelpers.HandleBindError(c, "ChatTurnHandler", err)
		return
	}

	var prior chat.Slots
	if req.ContextSlots != nil {
		prior = *req.ContextSlots
	}

	result, err := h.service.Turn(c.Request.Context(), req.Text, prior)
	if err != nil {
		status, message := auctionhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ChatTurnHandler: turn failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "chat turn processed successfully")
	auctionhelpers.LogSuccess("ChatTurnHandler", "chat turn processed successfully", map[string]any{
		"action": result.Action,
	})
}

// SummarizeHandler handles POST /chat/summarize
func (h *ChatHandler) SummarizeHandler(c *gin.Context) {
	var req helpers.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		auctionhelpers.HandleBindError(c, "SummarizeHandler", err)
		return
	}

	message := h.service.Summarize(c.Request.Context(), chat.SummarizeRequest{
		Question:        req.Question,
		Round:           req.Round,
		WinnerName:      req.WinnerName,
		WinnerPrice:     req.WinnerPrice,
		WinnerCompliant: req.WinnerCompliant,
		RunnerUpName:    req.RunnerUpName,
		RunnerUpPrice:   req.RunnerUpPrice,
		PriceGap:        req.PriceGap,
		ComplianceNotes: req.ComplianceNotes,
	})

	utils.JSONResponse(c, http.StatusOK, helpers.SummarizeResponse{Message: message}, "summary generated successfully")
}

// StoreLeadHandler handles POST /leads; the demo only records the lead in
// the log stream
func (h *ChatHandler) StoreLeadHandler(c *gin.Context) {
	var req helpers.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		auctionhelpers.HandleBindError(c, "StoreLeadHandler", err)
		return
	}

	source := req.Source
	if source == "" {
		source = "unknown"
	}
	utils.Info("lead captured", map[string]any{
		"email":      req.Email,
		"source":     source,
		"user_agent": c.Request.UserAgent(),
		"ip":         c.ClientIP(),
	})

	utils.JSONResponse(c, http.StatusOK, helpers.LeadResponse{Email: req.Email}, "email stored successfully")
}
