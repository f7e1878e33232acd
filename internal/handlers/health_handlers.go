package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"jencrm_backend/internal/database"
)

// StatusMessage is the body of the root and health endpoints.
type StatusMessage struct {
	Message  string `json:"message"`
	DBStatus string `json:"db_status"`
}

// HealthHandler reports service liveness and database connectivity.
type HealthHandler struct {
	db *sql.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles GET /. It is static and performs no database round-trip.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, StatusMessage{
		Message:  "JenCRM API is running",
		DBStatus: "not checked",
	})
}

// Health handles GET /health with a database round-trip.
func (h *HealthHandler) Health(c *gin.Context) {
	status := database.HealthCheck(c.Request.Context(), h.db)

	dbStatus := "connected"
	if !status.Healthy {
		dbStatus = "error: " + status.Reason
	}
	c.JSON(http.StatusOK, StatusMessage{
		Message:  "Health check",
		DBStatus: dbStatus,
	})
}
