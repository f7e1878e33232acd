package router

import (
	"github.com/gin-gonic/gin"

	"jencrm_backend/internal/handlers"
)

// SetupClientRoutes sets up the client routes. Clients expose full CRUD.
func SetupClientRoutes(apiGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := apiGroup.Group("/clients")
	{
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupDealRoutes sets up the deal routes. Deals are create/read only.
func SetupDealRoutes(apiGroup *gin.RouterGroup, dealHandler *handlers.DealHandler) {
	dealRoutes := apiGroup.Group("/deals")
	{
		dealRoutes.GET("", dealHandler.GetDeals)
		dealRoutes.POST("", dealHandler.CreateDeal)
		dealRoutes.GET("/:id", dealHandler.GetDealByID)
	}
}
