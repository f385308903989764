package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/agri-ledger/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every route handler the API serves.
type Handlers struct {
	Farmers  *FarmerHandler
	Crops    *CropHandler
	Forecast *ForecastHandler
	Market   *MarketHandler
	Reports  *ReportHandler
	Schemes  *SchemeHandler
	Tokens   *TokenHandler
	Admin    *AdminHandler
}

func NewRouter(h Handlers, auth *middleware.AuthMiddleware, admin *middleware.AdminMiddleware, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/docs", SwaggerUI("Agri Ledger API", "/swagger/doc.json"))

	api := router.Group("/api/v1")
	{
		api.POST("/farmers", h.Farmers.Register)
		api.GET("/market/prices", h.Market.Prices)
		api.GET("/forecast", h.Forecast.Forecast)

		authenticated := api.Group("")
		authenticated.Use(auth.RequireAuth())
		{
			authenticated.GET("/farmer", h.Farmers.GetProfile)
			authenticated.PUT("/farmer", h.Farmers.UpdateProfile)
			authenticated.GET("/dashboard", h.Farmers.Dashboard)

			authenticated.GET("/crops", h.Crops.ListCycles)
			authenticated.POST("/crops", h.Crops.StartCycle)
			authenticated.GET("/crops/:id", h.Crops.GetCycle)
			authenticated.PUT("/crops/:id", h.Crops.UpdateCycle)
			authenticated.POST("/crops/:id/expenses", h.Crops.LogExpense)
			authenticated.POST("/crops/:id/harvest", h.Crops.Harvest)

			authenticated.GET("/report", h.Reports.FinancialSummary)
			authenticated.GET("/schemes", h.Schemes.ListSchemes)

			authenticated.POST("/tokens", h.Tokens.CreateToken)
			authenticated.GET("/tokens", h.Tokens.ListTokens)
			authenticated.DELETE("/tokens/:id", h.Tokens.DeleteToken)
		}

		adminGroup := api.Group("/admin")
		adminGroup.Use(auth.RequireAuth(), admin.RequireAdmin())
		{
			adminGroup.GET("/farmers", h.Admin.ListFarmers)
			adminGroup.DELETE("/tokens/expired", h.Admin.PurgeExpiredTokens)
		}
	}

	return router
}
