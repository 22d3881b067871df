package routes

import (
	"context"
	"log"
	"strconv"

	_ "booze/docs" // generated by swag init
	"booze/internal/adapter/http/handlers"
	"booze/internal/adapter/persistence/cache"
	"booze/internal/adapter/persistence/repository"
	"booze/internal/infrastructure/config"
	"booze/internal/infrastructure/database"
	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB(ctx, cfg)
	rdb := database.ConnectRedis(ctx, cfg)

	productRepo := repository.NewProductDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	sessionRepo := cache.NewSessionRedisRepository(rdb, cfg.SessionTTL)

	catalogUseCase := usecase.NewCatalogUseCase(productRepo, cfg.CatalogLookupTimeout)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, orderRepo, catalogUseCase, cfg.SubmitLockTTL)
	historyUseCase := usecase.NewOrderHistoryUseCase(orderRepo, catalogUseCase)

	registerRoutes(router.Group("/v1"), storeHandlers{
		products: handlers.NewProductHandler(catalogUseCase),
		cart:     handlers.NewCartHandler(sessionUseCase),
		address:  handlers.NewAddressHandler(sessionUseCase),
		checkout: handlers.NewCheckoutHandler(sessionUseCase),
		orders:   handlers.NewOrderHandler(historyUseCase),
		session:  handlers.NewSessionHandler(sessionUseCase),
	})
}

func registerRoutes(v1 *gin.RouterGroup, h storeHandlers) {
	addPingRoutes(v1)
	addCatalogRoutes(v1, h)
	addSessionRoutes(v1, h)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
