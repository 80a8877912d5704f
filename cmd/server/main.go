package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cozycomfort/supply-api/internal/config"
	"github.com/cozycomfort/supply-api/internal/middleware"
	"github.com/cozycomfort/supply-api/internal/supply/cache"
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/handler"
	"github.com/cozycomfort/supply-api/internal/supply/repository"
	"github.com/cozycomfort/supply-api/internal/supply/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting cozycomfort supply service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 迁移 + 种子角色
	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Database migration failed", zap.Error(err))
	}
	if err := entity.SeedRoles(db); err != nil {
		zapLogger.Fatal("Role seeding failed", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	// 初始化Redis（可选，目录缓存）
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = initRedis(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			zapLogger.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
			rdb = nil
		}
		cancel()
	}

	// 初始化依赖
	repos := repository.NewRepositories(db)
	blanketCache := cache.NewBlanketCache(repos.Blanket, rdb, zapLogger)
	services := service.NewServices(db, repos, blanketCache, cfg.JWT)
	handlers := handler.NewHandlers(services)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigin))
	router.Use(middleware.RequestID())

	registerRoutes(router, handlers, cfg)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	auth := middleware.JWTAuth(cfg.JWT.Secret)

	// 认证
	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)
	r.GET("/auth/me", auth, h.Auth.Me)

	// 用户目录
	users := r.Group("/users", auth)
	{
		users.GET("/distributors", h.User.ListDistributors)
		users.GET("/sellers", h.User.ListSellers)
		users.GET("/:id", h.User.GetByID)
	}

	// 产品目录：读公开，写仅制造商
	r.GET("/blanketmodels", h.Blanket.List)
	r.GET("/blanketmodels/:id", h.Blanket.GetByID)
	blankets := r.Group("/blanketmodels", auth, middleware.RequireRole(entity.RoleManufacturer))
	{
		blankets.POST("", h.Blanket.Create)
		blankets.PUT("/:id", h.Blanket.Update)
		blankets.DELETE("/:id", h.Blanket.Delete)
	}

	// 分层库存
	inventory := r.Group("/inventory", auth)
	{
		inventory.GET("/manufacturer", middleware.RequireRole(entity.RoleManufacturer), h.Inventory.ListManufacturer)
		inventory.PUT("/manufacturer/:productId", middleware.RequireRole(entity.RoleManufacturer), h.Inventory.SetManufacturer)
		inventory.GET("/distributor", middleware.RequireRole(entity.RoleDistributor), h.Inventory.ListDistributor)
		inventory.PUT("/distributor/:productId", middleware.RequireRole(entity.RoleDistributor), h.Inventory.SetDistributor)
		inventory.GET("/seller", middleware.RequireRole(entity.RoleSeller), h.Inventory.ListSeller)
		inventory.PUT("/seller/:productId", middleware.RequireRole(entity.RoleSeller), h.Inventory.SetSeller)
	}

	// 产能
	production := r.Group("/production", auth, middleware.RequireRole(entity.RoleManufacturer))
	{
		production.GET("", h.Production.List)
		production.GET("/:productId", h.Production.GetByModel)
		production.PUT("/:productId", h.Production.Update)
	}

	// 客户订单
	orders := r.Group("/orders", auth)
	{
		orders.POST("", middleware.RequireRole(entity.RoleCustomer, entity.RoleSeller), h.Order.Create)
		orders.GET("", middleware.RequireRole(entity.RoleCustomer, entity.RoleSeller), h.Order.List)
		orders.GET("/:id", h.Order.GetByID)
		orders.PUT("/:id/status", middleware.RequireRole(entity.RoleCustomer, entity.RoleSeller), h.Order.UpdateStatus)
	}

	// 分销订单
	distOrders := r.Group("/distributororders", auth, middleware.RequireRole(entity.RoleSeller, entity.RoleDistributor))
	{
		distOrders.POST("", middleware.RequireRole(entity.RoleSeller), h.DistributorOrder.Create)
		distOrders.GET("", h.DistributorOrder.List)
		distOrders.GET("/:id", h.DistributorOrder.GetByID)
		distOrders.PUT("/:id/status", h.DistributorOrder.UpdateStatus)
	}

	// 生产订单
	mfrOrders := r.Group("/manufacturerorders", auth, middleware.RequireRole(entity.RoleDistributor, entity.RoleManufacturer))
	{
		mfrOrders.POST("", middleware.RequireRole(entity.RoleDistributor), h.ManufacturerOrder.Create)
		mfrOrders.GET("", h.ManufacturerOrder.List)
		mfrOrders.GET("/:id", h.ManufacturerOrder.GetByID)
		mfrOrders.PUT("/:id/approve", middleware.RequireRole(entity.RoleManufacturer), h.ManufacturerOrder.Approve)
		mfrOrders.PUT("/:id/complete", middleware.RequireRole(entity.RoleManufacturer), h.ManufacturerOrder.Complete)
	}
}
