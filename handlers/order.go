package handlers

import (
	"errors"
	"net/http"

	"delivery-marketplace-api/models"
	"delivery-marketplace-api/statemachine"
	"delivery-marketplace-api/storage"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	VendorID        string             `json:"vendorId" binding:"required"`
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerAddress string             `json:"customerAddress" binding:"required"`
	Items           []models.OrderItem `json:"items" binding:"required,min=1"`
	TotalAmount     float64            `json:"totalAmount" binding:"required,gt=0"`
}

// CreateOrder places a new order against a vendor. Orders start pending with
// no driver; a driver is only assigned at dispatch.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	order, err := h.store.CreateOrder(models.Order{
		VendorID:        req.VendorID,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Status:          models.StatusPending,
	})
	if err != nil {
		h.serverError(c, "Failed to create order", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		h.serverError(c, "Failed to get order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) GetVendorOrders(c *gin.Context) {
	orders, err := h.store.GetOrdersByVendor(c.Param("id"))
	if err != nil {
		h.serverError(c, "Failed to get orders", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) GetDriverOrders(c *gin.Context) {
	orders, err := h.store.GetOrdersByDriver(c.Param("id"))
	if err != nil {
		h.serverError(c, "Failed to get orders", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrder merges a partial update. Status changes are checked against
// the transition table, and a driver can only be attached once the order is
// ready for dispatch.
func (h *Handler) UpdateOrder(c *gin.Context) {
	var upd models.OrderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	order, err := h.store.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		h.serverError(c, "Failed to update order", err)
		return
	}

	newStatus := order.Status
	if upd.Status != nil && *upd.Status != order.Status {
		if err := statemachine.CanTransition(order.Status, *upd.Status); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message":         err.Error(),
				"currentStatus":   order.Status,
				"validNextStates": statemachine.ValidTransitionsFrom(order.Status),
			})
			return
		}
		newStatus = *upd.Status
	}

	if upd.DriverID != nil && newStatus != models.StatusReady && newStatus != models.StatusDelivering {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A driver can only be assigned once the order is ready for dispatch"})
		return
	}
	if newStatus == models.StatusDelivering && order.DriverID == nil && upd.DriverID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A driver must be assigned before the order can be dispatched"})
		return
	}

	order, err = h.store.UpdateOrder(order.ID, upd)
	if err != nil {
		h.serverError(c, "Failed to update order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetStateMachineInfo documents the order lifecycle for API consumers
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	out := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses": []models.OrderStatus{
			models.StatusPending,
			models.StatusPreparing,
			models.StatusReady,
			models.StatusDelivering,
			models.StatusCompleted,
			models.StatusCancelled,
		},
		"transitions": out,
	})
}
