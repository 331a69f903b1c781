package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storyprint-backend/internal/models"
	"storyprint-backend/internal/state"
)

// Fixed checkout pricing shown at confirmation. There is no payment
// processing behind it.
const (
	bookPriceCents = 2990
	priceCurrency  = "EUR"
)

type OrdersHandler struct {
	app *state.App
}

func NewOrdersHandler(app *state.App) *OrdersHandler {
	return &OrdersHandler{app: app}
}

// Place godoc
// @Summary     Place an order
// @Description Creates a pending order for a project and marks the project as ordered. The
// @Description address is free text; only non-emptiness is checked. Ordering twice creates two
// @Description distinct orders.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.PlaceOrderRequest true "Project and delivery address"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *OrdersHandler) Place(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if strings.TrimSpace(req.Address) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "address is required",
			Message: "provide a non-empty delivery address",
		})
		return
	}

	projectID := req.ProjectID
	if projectID == "" {
		active, err := h.app.Active()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "no project selected",
				Message: "provide project_id or open a project first",
			})
			return
		}
		projectID = active.ID
	}

	order, _, err := h.app.PlaceOrder(projectID, req.Address)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{
		Order:        order,
		PriceCents:   bookPriceCents,
		Currency:     priceCurrency,
		ShippingFree: true,
	})
}

// List godoc
// @Summary     List orders
// @Description Returns all orders, newest first.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Router      /orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.OrderListResponse{Orders: h.app.Orders()})
}

// Get godoc
// @Summary     Get an order
// @Description Returns a single order by its ID.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID"
// @Success     200 {object} models.Order
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	order, err := h.app.Order(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// Pipeline godoc
// @Summary     Order fulfillment pipeline
// @Description Returns the fixed fulfillment sequence for an order. The sequence is
// @Description illustrative: only the first stage is ever completed, as orders do not
// @Description transition automatically.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID"
// @Success     200 {object} models.PipelineResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id}/pipeline [get]
func (h *OrdersHandler) Pipeline(c *gin.Context) {
	order, err := h.app.Order(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	}

	c.JSON(http.StatusOK, models.PipelineResponse{
		OrderID: order.ID,
		Steps: []models.PipelineStep{
			{Key: models.OrderStatusPending, Label: "Eingegangen", Completed: true},
			{Key: models.OrderStatusPrinting, Label: "Wird gedruckt"},
			{Key: models.OrderStatusShipped, Label: "Versendet"},
			{Key: models.OrderStatusDelivered, Label: "Zugestellt"},
		},
	})
}
