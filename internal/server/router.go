package server

import (
	handler "agentvault/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auction := router.Group("/auction")
	{
		auction.GET("/status", auctionHandler.GetStatusHandler)
		auction.GET("/items", auctionHandler.ListItemsHandler)
		auction.POST("/advance", auctionHandler.AdvancePhaseHandler)
		auction.POST("/close", auctionHandler.CloseEarlyHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	items := router.Group("/items")
	{
		items.GET("/:item_id/bids", auctionHandler.GetTopBidsHandler)
	}

	teams := router.Group("/teams")
	{
		teams.GET("/:team_id/balance", auctionHandler.GetTeamBalanceHandler)
		teams.GET("/:team_id/bids", auctionHandler.GetTeamBidsHandler)
		teams.POST("/:team_id/credits", auctionHandler.CreditCoinsHandler)
		teams.PUT("/:team_id/progress", auctionHandler.UpdateTeamProgressHandler)
	}

	return router
}
