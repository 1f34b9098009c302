package main

import (
	"github.com/sirupsen/logrus"

	"induparts-system/config"
	authhandler "induparts-system/internal/auth/handler"
	authrepo "induparts-system/internal/auth/repository"
	authservice "induparts-system/internal/auth/service"
	"induparts-system/internal/cache"
	cataloghandler "induparts-system/internal/catalog/handler"
	catalogrepo "induparts-system/internal/catalog/repository"
	catalogservice "induparts-system/internal/catalog/service"
	customerhandler "induparts-system/internal/customerorders/handler"
	customerrepo "induparts-system/internal/customerorders/repository"
	customerservice "induparts-system/internal/customerorders/service"
	"induparts-system/internal/database"
	inventoryhandler "induparts-system/internal/inventory/handler"
	inventoryrepo "induparts-system/internal/inventory/repository"
	inventoryservice "induparts-system/internal/inventory/service"
	reportshandler "induparts-system/internal/reports/handler"
	reportsservice "induparts-system/internal/reports/service"
	supplierhandler "induparts-system/internal/supplierorders/handler"
	supplierrepo "induparts-system/internal/supplierorders/repository"
	supplierservice "induparts-system/internal/supplierorders/service"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.LoadConfig()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db, cfg.ProvisionLineItems); err != nil {
		log.WithError(err).Fatal("database migration failed")
	}

	// Capability detection happens exactly once. A pedido_detalle table
	// appearing mid-flight is picked up on the next restart.
	features := database.DetectFeatures(db)
	log.WithField("line_items", features.LineItems).Info("capabilities resolved")

	redisClient, err := config.NewRedisClient(cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}
	appCache := cache.NewRedis(redisClient)

	secret := []byte(cfg.Auth.JWTSecret)

	userRepo := authrepo.NewUserRepository(db)
	catalogRepo := catalogrepo.NewCatalogRepository(db, features.LineItems)
	inventoryRepo := inventoryrepo.NewInventoryRepository(db)
	customerRepo := customerrepo.NewCustomerOrderRepository(db)
	supplierRepo := supplierrepo.NewSupplierOrderRepository(db)

	deps := serverDeps{
		secret:    secret,
		rateLimit: cfg.RateLimit,
		auth:      authhandler.NewAuthHTTPHandler(authservice.NewService(userRepo, secret, cfg.Auth.TokenTTL)),
		catalog:   cataloghandler.NewCatalogHTTPHandler(catalogservice.NewService(catalogRepo, appCache)),
		inventory: inventoryhandler.NewInventoryHTTPHandler(inventoryservice.NewService(inventoryRepo, appCache)),
		customers: customerhandler.NewCustomerOrderHTTPHandler(
			customerservice.NewService(customerRepo, catalogRepo, appCache, features.LineItems)),
		suppliers: supplierhandler.NewSupplierOrderHTTPHandler(supplierservice.NewService(supplierRepo, appCache)),
		reports: reportshandler.NewReportsHTTPHandler(
			reportsservice.NewService(catalogRepo, inventoryRepo, customerRepo, supplierRepo)),
		features: features,
	}

	r := newRouter(deps)

	addr := ":" + cfg.HTTPPort
	log.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
