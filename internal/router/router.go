package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"jencrm_backend/internal/handlers"
	"jencrm_backend/internal/repositories"
	"jencrm_backend/internal/services"
)

// Setup initializes the routing for the application. The database handle is
// injected here and threaded through repositories; nothing holds it globally.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	clientRepo := repositories.NewClientRepository(db)
	dealRepo := repositories.NewDealRepository(db)

	// Initialize Services
	clientService := services.NewClientService(clientRepo)
	dealService := services.NewDealService(dealRepo)

	// Initialize Handlers
	healthHandler := handlers.NewHealthHandler(db)
	clientHandler := handlers.NewClientHandler(clientService)
	dealHandler := handlers.NewDealHandler(dealService)

	engine.GET("/", healthHandler.Root)
	engine.GET("/health", healthHandler.Health)

	api := engine.Group("/api")
	{
		SetupClientRoutes(api, clientHandler)
		SetupDealRoutes(api, dealHandler)
	}
}
