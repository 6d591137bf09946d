package handlers

import (
	"errors"
	"net/http"

	"delivery-marketplace-api/models"
	"delivery-marketplace-api/storage"

	"github.com/gin-gonic/gin"
)

type CreateDriverRequest struct {
	UserID        string             `json:"userId" binding:"required"`
	FullName      string             `json:"fullName" binding:"required,min=2"`
	PhoneNumber   string             `json:"phoneNumber" binding:"required,min=10"`
	VehicleType   models.VehicleType `json:"vehicleType" binding:"required,oneof=bike keke car van"`
	VehicleNumber string             `json:"vehicleNumber" binding:"required"`
	VehicleColor  string             `json:"vehicleColor" binding:"required"`
}

// CreateDriver completes driver onboarding: profile plus the owning user's
// onboarding flag. New drivers start available with zero earnings.
func (h *Handler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	driver, err := h.store.CreateDriver(models.Driver{
		UserID:        req.UserID,
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		VehicleColor:  req.VehicleColor,
		IsAvailable:   true,
	})
	if err != nil {
		h.serverError(c, "Failed to create driver profile", err)
		return
	}

	complete := true
	if _, err := h.store.UpdateUser(req.UserID, models.UserUpdate{OnboardingComplete: &complete}); err != nil {
		h.serverError(c, "Failed to create driver profile", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func (h *Handler) GetDriver(c *gin.Context) {
	driver, err := h.store.GetDriver(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found"})
			return
		}
		h.serverError(c, "Failed to get driver", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

func (h *Handler) UpdateDriver(c *gin.Context) {
	var upd models.DriverUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	driver, err := h.store.UpdateDriver(c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found"})
			return
		}
		h.serverError(c, "Failed to update driver", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}
