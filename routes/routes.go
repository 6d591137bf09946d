package routes

import (
	"delivery-marketplace-api/handlers"
	"delivery-marketplace-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	api := r.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/signin", h.SignIn)

		// Vendors
		api.GET("/vendors", h.ListVendors)
		api.POST("/vendors", h.CreateVendor)
		api.GET("/vendors/:id", h.GetVendor)
		api.PATCH("/vendors/:id", h.UpdateVendor)
		api.GET("/vendors/:id/products", h.GetVendorProducts)
		api.GET("/vendors/:id/orders", h.GetVendorOrders)

		// Products
		api.POST("/products", h.CreateProduct)
		api.PATCH("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		// Drivers
		api.POST("/drivers", h.CreateDriver)
		api.GET("/drivers/:id", h.GetDriver)
		api.PATCH("/drivers/:id", h.UpdateDriver)
		api.GET("/drivers/:id/orders", h.GetDriverOrders)

		// Orders
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.PATCH("/orders/:id", h.UpdateOrder)

		// Uploads (503 when no blob backend is configured)
		api.POST("/uploads", h.UploadFile)

		// Order lifecycle info (great for docs/Postman)
		api.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", h.Me)
	}
}
