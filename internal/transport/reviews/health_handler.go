package reviews

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthProbeTimeout = 5 * time.Second

type HealthHandler struct {
	db        DBPinger
	customers CustomerDirectory
	inventory InventoryStore
}

func NewHealthHandler(db DBPinger, customers CustomerDirectory, inventory InventoryStore) *HealthHandler {
	return &HealthHandler{
		db:        db,
		customers: customers,
		inventory: inventory,
	}
}

type HealthResponse struct {
	Status           string `json:"status"`
	Database         string `json:"database"`
	CustomerService  string `json:"customer_service"`
	InventoryService string `json:"inventory_service"`
}

// Check GET HealthRoute. Состояние локальной базы и обоих апстримов.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:           "healthy",
		Database:         "connected",
		CustomerService:  "healthy",
		InventoryService: "healthy",
	}

	if err := h.db.Ping(ctx); err != nil {
		resp.Database = "unavailable: " + err.Error()
		resp.Status = "unhealthy"
	}
	if err := h.customers.Health(ctx); err != nil {
		resp.CustomerService = "unavailable: " + err.Error()
		resp.Status = "unhealthy"
	}
	if err := h.inventory.Health(ctx); err != nil {
		resp.InventoryService = "unavailable: " + err.Error()
		resp.Status = "unhealthy"
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
