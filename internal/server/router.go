package server

import (
	auctionhandler "procurv/services/auction/handler"
	chathandler "procurv/services/chat/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionSvc auctionhandler.AuctionServiceInterface, chatSvc chathandler.ChatServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionSvc)
	chatHandler := chathandler.NewChatHandler(chatSvc)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.POST("/:auction_id/start", auctionHandler.StartAuctionHandler)
		auctions.GET("/:auction_id/status", auctionHandler.GetStatusHandler)
		auctions.GET("/:auction_id/results", auctionHandler.GetResultsHandler)
		auctions.GET("/:auction_id/po", auctionHandler.GetPurchaseOrderHandler)
	}

	chat := router.Group("/chat")
	{
		chat.POST("", chatHandler.ChatTurnHandler)
		chat.POST("/summarize", chatHandler.SummarizeHandler)
	}

	router.POST("/leads", chatHandler.StoreLeadHandler)

	return router
}
