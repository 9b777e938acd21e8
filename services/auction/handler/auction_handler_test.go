package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"procurv/internal/auctionerrors"
	auction "procurv/internal/auctionService"
	model "procurv/internal/models"
	"procurv/internal/purchaseorder"
	"procurv/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", handler.CreateAuctionHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_requirements",
			requestBody: helpers.CreateAuctionRequest{
				Item:           "office chairs",
				Quantity:       40,
				Budget:         120,
				DeliveryDays:   30,
				WarrantyMonths: 12,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction(model.Requirements{
						Item:           "office chairs",
						Quantity:       40,
						Budget:         120,
						DeliveryDays:   30,
						WarrantyMonths: 12,
					}).
					Return("auction-1", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "auction-1", data["auction_id"])
				summary := data["summary"].(map[string]any)
				require.Equal(t, "office chairs", summary["item"])
				require.Equal(t, 40.0, summary["quantity"])
				require.Equal(t, 120.0, summary["budget"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_item",
			requestBody: helpers.CreateAuctionRequest{
				Quantity:     10,
				Budget:       100,
				DeliveryDays: 14,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "zero_quantity",
			requestBody: helpers.CreateAuctionRequest{
				Item:         "desks",
				Quantity:     0,
				Budget:       100,
				DeliveryDays: 14,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_delivery_days",
			requestBody: helpers.CreateAuctionRequest{
				Item:     "desks",
				Quantity: 10,
				Budget:   100,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_invalid_requirements",
			requestBody: helpers.CreateAuctionRequest{
				Item:         "desks",
				Quantity:     10,
				DeliveryDays: 14,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction(model.Requirements{Item: "desks", Quantity: 10, DeliveryDays: 14}).
					Return("", auctionerrors.ErrInvalidRequirements)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid requirements",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.CreateAuctionRequest{
				Item:         "desks",
				Quantity:     10,
				Budget:       100,
				DeliveryDays: 14,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateAuction(gomock.Any()).
					Return("", errors.New("store failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test StartAuctionHandler
func TestStartAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/start", handler.StartAuctionHandler)

	uploadedRows := []map[string]any{
		{"name": "Apex Office Supply", "base_price": 118.0},
		{"name": "Nimbus Workplace", "base_price": 112.0},
	}

	tests := []struct {
		name           string
		auctionID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_uploaded_vendors",
			auctionID:   "auction-1",
			requestBody: helpers.StartAuctionRequest{Vendors: uploadedRows},
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("auction-1", uploadedRows, 0).
					Return(auction.StartView{
						AuctionID:   "auction-1",
						VendorCount: 2,
						Vendors: []auction.VendorSummary{
							{ID: "v1", Name: "Apex Office Supply"},
							{ID: "v2", Name: "Nimbus Workplace"},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction started successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "auction-1", data["auction_id"])
				require.Equal(t, 2.0, data["vendor_count"])
				vendorList := data["vendors"].([]any)
				require.Len(t, vendorList, 2)
			},
		},
		{
			name:        "success_empty_body_uses_catalog",
			auctionID:   "auction-2",
			requestBody: nil,
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("auction-2", nil, 0).
					Return(auction.StartView{AuctionID: "auction-2", VendorCount: 4}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction started successfully",
		},
		{
			name:        "success_vendor_count_only",
			auctionID:   "auction-3",
			requestBody: helpers.StartAuctionRequest{VendorCount: 3},
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("auction-3", nil, 3).
					Return(auction.StartView{AuctionID: "auction-3", VendorCount: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction started successfully",
		},
		{
			name:           "invalid_json",
			auctionID:      "auction-1",
			requestBody:    `{invalid`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "auction_not_found",
			auctionID:   "missing",
			requestBody: nil,
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("missing", nil, 0).
					Return(auction.StartView{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name:        "already_started",
			auctionID:   "auction-1",
			requestBody: nil,
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("auction-1", nil, 0).
					Return(auction.StartView{}, auctionerrors.ErrAlreadyStarted)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "auction already started",
		},
		{
			name:        "invalid_vendor_rows",
			auctionID:   "auction-1",
			requestBody: helpers.StartAuctionRequest{Vendors: []map[string]any{{"price": 10.0}}},
			mockSetup: func() {
				mockService.EXPECT().
					StartAuction("auction-1", []map[string]any{{"price": 10.0}}, 0).
					Return(auction.StartView{}, auctionerrors.ErrInvalidVendorRow)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid vendor row",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case nil:
				reqBody = nil
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/"+tc.auctionID+"/start", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetStatusHandler
func TestGetStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/status", handler.GetStatusHandler)

	liveStatus := auction.StatusView{
		AuctionID: "auction-1",
		Status:    model.StatusLive,
		Round:     3,
		TotalBids: 9,
		Leader:    &auction.LeaderView{ID: "v1", Name: "Apex Office Supply", Bid: 104.2, IsCompliant: true},
		Vendors: []auction.VendorStatusView{
			{ID: "v1", Name: "Apex Office Supply", CurrentBid: 104.2, IsCompliant: true, ComplianceScore: 18, BidHistory: []float64{118, 110.5, 104.2}},
			{ID: "v2", Name: "Nimbus Workplace", CurrentBid: 108.9, IsCompliant: false, ComplianceScore: 8, BidHistory: []float64{112, 108.9}},
		},
	}

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:      "success_live_auction",
			auctionID: "auction-1",
			mockSetup: func() {
				mockService.EXPECT().GetStatus("auction-1").Return(liveStatus, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction status retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "auction-1", data["auction_id"])
				require.Equal(t, "live", data["status"])
				require.Equal(t, 3.0, data["round"])
				leader := data["leader"].(map[string]any)
				require.Equal(t, "v1", leader["id"])
				require.Equal(t, 104.2, leader["bid"])
				vendorList := data["vendors"].([]any)
				require.Len(t, vendorList, 2)
			},
		},
		{
			name:      "auction_not_found",
			auctionID: "missing",
			mockSetup: func() {
				mockService.EXPECT().GetStatus("missing").Return(auction.StatusView{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name:      "service_generic_error",
			auctionID: "auction-1",
			mockSetup: func() {
				mockService.EXPECT().GetStatus("auction-1").Return(auction.StatusView{}, errors.New("store failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions/"+tc.auctionID+"/status", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetResultsHandler
func TestGetResultsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/results", handler.GetResultsHandler)

	endedResults := auction.ResultsView{
		Winner: auction.WinnerView{
			ID:              "v1",
			Name:            "Apex Office Supply",
			FinalBid:        101.4,
			IsCompliant:     true,
			WarrantyMonths:  12,
			MaxDeliveryDays: 21,
		},
		Rationale: "Apex Office Supply won the auction with a final bid of $101.40.",
		Summary:   auction.ResultsSummary{TotalRounds: 10, TotalBids: 27, Duration: 20 * time.Second},
		PO: purchaseorder.PODetails{
			PONumber:   "PO-483920-X7Q",
			VendorName: "Apex Office Supply",
			Item:       "office chairs",
			Quantity:   40,
			UnitPrice:  101.4,
			TotalPrice: 4056,
		},
	}

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:      "success_ended_auction",
			auctionID: "auction-1",
			mockSetup: func() {
				mockService.EXPECT().GetResults("auction-1").Return(endedResults, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction results retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				winner := data["winner"].(map[string]any)
				require.Equal(t, "v1", winner["id"])
				require.Equal(t, 101.4, winner["final_bid"])
				require.Equal(t, true, winner["is_compliant"])
				require.Contains(t, data["rationale"], "Apex Office Supply")
				po := data["po_details"].(map[string]any)
				require.Equal(t, "PO-483920-X7Q", po["po_number"])
				require.Equal(t, 4056.0, po["total_price"])
			},
		},
		{
			name:      "auction_not_ended",
			auctionID: "auction-2",
			mockSetup: func() {
				mockService.EXPECT().GetResults("auction-2").Return(auction.ResultsView{}, auctionerrors.ErrAuctionNotEnded)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "auction has not ended yet",
		},
		{
			name:      "auction_not_found",
			auctionID: "missing",
			mockSetup: func() {
				mockService.EXPECT().GetResults("missing").Return(auction.ResultsView{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions/"+tc.auctionID+"/results", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetPurchaseOrderHandler
func TestGetPurchaseOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/po", handler.GetPurchaseOrderHandler)

	t.Run("success_serves_html_attachment", func(t *testing.T) {
		doc := "<!DOCTYPE html>\n<html><body>PO-483920-X7Q</body></html>"
		mockService.EXPECT().GetPurchaseOrderHTML("auction-1").Return(doc, nil)

		req := httptest.NewRequest(http.MethodGet, "/auctions/auction-1/po", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `attachment; filename="purchase-order.html"`, w.Header().Get("Content-Disposition"))
		require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		require.Equal(t, doc, w.Body.String())
	})

	t.Run("auction_not_ended", func(t *testing.T) {
		mockService.EXPECT().GetPurchaseOrderHTML("auction-2").Return("", auctionerrors.ErrAuctionNotEnded)

		req := httptest.NewRequest(http.MethodGet, "/auctions/auction-2/po", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "auction has not ended yet")
	})

	t.Run("auction_not_found", func(t *testing.T) {
		mockService.EXPECT().GetPurchaseOrderHTML("missing").Return("", auctionerrors.ErrAuctionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auctions/missing/po", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
