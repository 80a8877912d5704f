package handler

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cozycomfort/supply-api/internal/config"
	"github.com/cozycomfort/supply-api/internal/middleware"
	"github.com/cozycomfort/supply-api/internal/supply/cache"
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
	"github.com/cozycomfort/supply-api/internal/supply/service"
	"github.com/cozycomfort/supply-api/internal/supply/testutil"
)

// setupSupplyTest wires the full stack against an isolated test schema and
// registers the same routes the server exposes.
func setupSupplyTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	blanketCache := cache.NewBlanketCache(repos.Blanket, nil, zap.NewNop())
	jwtCfg := config.JWTConfig{
		Secret: testutil.JWTSecret,
		Expire: 24 * time.Hour,
		Issuer: "cozycomfort-test",
	}
	services := service.NewServices(db, repos, blanketCache, jwtCfg)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	auth := middleware.JWTAuth(testutil.JWTSecret)

	router.POST("/auth/register", handlers.Auth.Register)
	router.POST("/auth/login", handlers.Auth.Login)
	router.GET("/auth/me", auth, handlers.Auth.Me)

	users := router.Group("/users", auth)
	users.GET("/distributors", handlers.User.ListDistributors)
	users.GET("/sellers", handlers.User.ListSellers)
	users.GET("/:id", handlers.User.GetByID)

	router.GET("/blanketmodels", handlers.Blanket.List)
	router.GET("/blanketmodels/:id", handlers.Blanket.GetByID)
	blankets := router.Group("/blanketmodels", auth, middleware.RequireRole(entity.RoleManufacturer))
	blankets.POST("", handlers.Blanket.Create)
	blankets.PUT("/:id", handlers.Blanket.Update)
	blankets.DELETE("/:id", handlers.Blanket.Delete)

	inventory := router.Group("/inventory", auth)
	inventory.GET("/manufacturer", middleware.RequireRole(entity.RoleManufacturer), handlers.Inventory.ListManufacturer)
	inventory.PUT("/manufacturer/:productId", middleware.RequireRole(entity.RoleManufacturer), handlers.Inventory.SetManufacturer)
	inventory.GET("/distributor", middleware.RequireRole(entity.RoleDistributor), handlers.Inventory.ListDistributor)
	inventory.PUT("/distributor/:productId", middleware.RequireRole(entity.RoleDistributor), handlers.Inventory.SetDistributor)
	inventory.GET("/seller", middleware.RequireRole(entity.RoleSeller), handlers.Inventory.ListSeller)
	inventory.PUT("/seller/:productId", middleware.RequireRole(entity.RoleSeller), handlers.Inventory.SetSeller)

	production := router.Group("/production", auth, middleware.RequireRole(entity.RoleManufacturer))
	production.GET("", handlers.Production.List)
	production.GET("/:productId", handlers.Production.GetByModel)
	production.PUT("/:productId", handlers.Production.Update)

	orders := router.Group("/orders", auth)
	orders.POST("", middleware.RequireRole(entity.RoleCustomer, entity.RoleSeller), handlers.Order.Create)
	orders.GET("", middleware.RequireRole(entity.RoleCustomer, entity.RoleSeller), handlers.Order.List)
	orders.GET("/:id", handlers.Order.GetByID)
	orders.PUT("/:id/status", middleware.RequireRole(entity.RoleCustomer, entity.RoleSeller), handlers.Order.UpdateStatus)

	distOrders := router.Group("/distributororders", auth, middleware.RequireRole(entity.RoleSeller, entity.RoleDistributor))
	distOrders.POST("", middleware.RequireRole(entity.RoleSeller), handlers.DistributorOrder.Create)
	distOrders.GET("", handlers.DistributorOrder.List)
	distOrders.GET("/:id", handlers.DistributorOrder.GetByID)
	distOrders.PUT("/:id/status", handlers.DistributorOrder.UpdateStatus)

	mfrOrders := router.Group("/manufacturerorders", auth, middleware.RequireRole(entity.RoleDistributor, entity.RoleManufacturer))
	mfrOrders.POST("", middleware.RequireRole(entity.RoleDistributor), handlers.ManufacturerOrder.Create)
	mfrOrders.GET("", handlers.ManufacturerOrder.List)
	mfrOrders.GET("/:id", handlers.ManufacturerOrder.GetByID)
	mfrOrders.PUT("/:id/approve", middleware.RequireRole(entity.RoleManufacturer), handlers.ManufacturerOrder.Approve)
	mfrOrders.PUT("/:id/complete", middleware.RequireRole(entity.RoleManufacturer), handlers.ManufacturerOrder.Complete)

	return db, router
}
