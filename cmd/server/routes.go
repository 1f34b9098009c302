package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authhandler "induparts-system/internal/auth/handler"
	cataloghandler "induparts-system/internal/catalog/handler"
	customerhandler "induparts-system/internal/customerorders/handler"
	"induparts-system/internal/database"
	inventoryhandler "induparts-system/internal/inventory/handler"
	"induparts-system/internal/middleware"
	reportshandler "induparts-system/internal/reports/handler"
	supplierhandler "induparts-system/internal/supplierorders/handler"
)

type serverDeps struct {
	secret    []byte
	rateLimit string
	auth      *authhandler.AuthHTTPHandler
	catalog   *cataloghandler.CatalogHTTPHandler
	inventory *inventoryhandler.InventoryHTTPHandler
	customers *customerhandler.CustomerOrderHTTPHandler
	suppliers *supplierhandler.SupplierOrderHTTPHandler
	reports   *reportshandler.ReportsHTTPHandler
	features  database.Features
}

func newRouter(deps serverDeps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(deps.rateLimit))

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.auth.Login)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(deps.secret))
	{
		protected.POST("/auth/change-password", deps.auth.ChangePassword)

		catalog := protected.Group("/catalog")
		{
			catalog.GET("", deps.catalog.List)
			catalog.POST("", deps.catalog.Upsert)
			catalog.DELETE("/:ref", deps.catalog.Delete)
		}

		inventory := protected.Group("/inventory")
		{
			inventory.GET("", deps.inventory.List)
			inventory.POST("", deps.inventory.Provision)
			inventory.PUT("/stock", deps.inventory.SetStock)
			inventory.PUT("/stock-min", deps.inventory.SetStockMin)
		}

		customers := protected.Group("/orders/customers")
		{
			customers.GET("", deps.customers.List)
			customers.POST("", deps.customers.Create)
			customers.PUT("/:id/status", deps.customers.SetStatus)
			customers.GET("/:id/line-items", deps.customers.ListLineItems)
			customers.POST("/:id/line-items", deps.customers.AddLineItem)
			customers.DELETE("/line-items/:detailID", deps.customers.RemoveLineItem)
		}

		suppliers := protected.Group("/orders/suppliers")
		{
			suppliers.GET("", deps.suppliers.List)
			suppliers.POST("", deps.suppliers.Create)
			suppliers.PUT("/:id/status", deps.suppliers.SetStatus)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/catalog", deps.reports.Catalog)
			reports.GET("/inventory", deps.reports.Inventory)
			reports.GET("/customer-orders", deps.reports.CustomerOrders)
			reports.GET("/supplier-orders", deps.reports.SupplierOrders)
		}
	}

	r.GET("/health", healthCheckHandler(deps.features))

	return r
}

func healthCheckHandler(features database.Features) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"line_items": features.LineItems,
			"timestamp":  time.Now(),
		})
	}
}
