package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	auction "procurv/internal/auctionService"
	model "procurv/internal/models"
	"procurv/services/auction/helpers"
	"procurv/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(req model.Requirements) (string, error)
	StartAuction(auctionID string, rows []map[string]any, vendorCount int) (auction.StartView, error)
	GetStatus(auctionID string) (auction.StatusView, error)
	GetResults(auctionID string) (auction.ResultsView, error)
	GetPurchaseOrderHTML(auctionID string) (string, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	requirements := model.Requirements{
		Item:           req.Item,
		Quantity:       req.Quantity,
		Budget:         req.Budget,
		MaxBudget:      req.MaxBudget,
		DeliveryDays:   req.DeliveryDays,
		WarrantyMonths: req.WarrantyMonths,
	}

	auctionID, err := h.service.CreateAuction(requirements)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler": "CreateAuctionHandler",
			"item":    req.Item,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.CreateAuctionResponse{
		AuctionID: auctionID,
		Summary: helpers.CreateAuctionSummary{
			Item:           requirements.Item,
			Quantity:       requirements.Quantity,
			Budget:         requirements.BudgetCeiling(),
			DeliveryDays:   requirements.DeliveryDays,
			WarrantyMonths: requirements.WarrantyMonths,
		},
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auctionID,
		"item":       requirements.Item,
		"quantity":   requirements.Quantity,
	})
}

// StartAuctionHandler handles POST /auctions/:auction_id/start
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.StartAuctionRequest
	// an empty body means "use the catalog"
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	view, err := h.service.StartAuction(auctionID, req.Vendors, req.VendorCount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("StartAuctionHandler: failed to start auction", map[string]any{
			"handler":    "StartAuctionHandler",
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{
		"auction_id":   auctionID,
		"vendor_count": view.VendorCount,
	})
}

// GetStatusHandler handles GET /auctions/:auction_id/status
func (h *AuctionHandler) GetStatusHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	view, err := h.service.GetStatus(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetStatusHandler: error retrieving status", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction status retrieved successfully")
}

// GetResultsHandler handles GET /auctions/:auction_id/results
func (h *AuctionHandler) GetResultsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	view, err := h.service.GetResults(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetResultsHandler: error retrieving results", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction results retrieved successfully")
	helpers.LogSuccess("GetResultsHandler", "auction results retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"winner_id":  view.Winner.ID,
		"final_bid":  view.Winner.FinalBid,
	})
}

// GetPurchaseOrderHandler handles GET /auctions/:auction_id/po and serves
// the purchase order as a downloadable HTML document
func (h *AuctionHandler) GetPurchaseOrderHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	doc, err := h.service.GetPurchaseOrderHTML(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPurchaseOrderHandler: error rendering purchase order", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="purchase-order.html"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
	helpers.LogSuccess("GetPurchaseOrderHandler", "purchase order rendered", map[string]any{
		"auction_id": auctionID,
	})
}
