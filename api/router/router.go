package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"wanderboard/api/handlers"
	"wanderboard/api/middleware"
	"wanderboard/cache"
	"wanderboard/config"
	"wanderboard/db"
	_ "wanderboard/docs"
	"wanderboard/eventbus"
	"wanderboard/generator"
	"wanderboard/preview"
	"wanderboard/repositories"
	"wanderboard/services"
)

func New(bus eventbus.Bus, previewCache *cache.Cache) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestTrace(), gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tripsRepo := repositories.NewTripRepository(db.Database())
	inspoRepo := repositories.NewInspoItemRepository(db.Database())
	itineraryRepo := repositories.NewItineraryRepository(db.Database())
	logsRepo := repositories.NewGenerationLogRepository(db.Database())

	cfg := config.GetConfig()
	tripSvc := services.NewTripService(tripsRepo, inspoRepo, itineraryRepo, bus)
	inspoSvc := services.NewInspoService(inspoRepo, tripsRepo)
	previewSvc := services.NewPreviewService(
		preview.NewResolver(cfg.Preview.UseBrowser),
		previewCache,
		time.Duration(cfg.Preview.CacheTTLMinutes)*time.Minute,
	)
	generateSvc := services.NewGenerateService(tripsRepo, inspoRepo, logsRepo, generator.New(), bus)
	itinerarySvc := services.NewItineraryService(itineraryRepo, tripsRepo, bus)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/trips", handlers.ListTripsHandler(tripSvc))
		api.POST("/trips", handlers.CreateTripHandler(tripSvc))
		api.GET("/trips/:id", handlers.GetTripHandler(tripSvc))
		api.PATCH("/trips/:id", handlers.UpdateTripHandler(tripSvc))
		api.DELETE("/trips/:id", handlers.DeleteTripHandler(tripSvc))

		api.GET("/inspo", handlers.ListInspoHandler(inspoSvc))
		api.POST("/inspo", handlers.CreateInspoHandler(inspoSvc))
		api.PUT("/inspo/reorder", handlers.ReorderInspoHandler(inspoSvc))
		api.POST("/inspo/parse", handlers.ParseURLHandler(previewSvc))
		api.PATCH("/inspo/:id", handlers.UpdateInspoHandler(inspoSvc))
		api.DELETE("/inspo/:id", handlers.DeleteInspoHandler(inspoSvc))

		api.POST("/generate", handlers.GenerateHandler(generateSvc))
		api.GET("/generate/history", handlers.GenerationHistoryHandler(generateSvc))

		api.GET("/itinerary", handlers.GetItineraryHandler(itinerarySvc))
		api.POST("/itinerary", handlers.AcceptItineraryHandler(itinerarySvc))
		api.PATCH("/itinerary/days/:dayId", handlers.UpdateDayHandler(itinerarySvc))
		api.POST("/itinerary/blocks", handlers.CreateBlockHandler(itinerarySvc))
		api.PUT("/itinerary/blocks/reorder", handlers.ReorderBlocksHandler(itinerarySvc))
		api.PATCH("/itinerary/blocks/:blockId", handlers.UpdateBlockHandler(itinerarySvc))
		api.DELETE("/itinerary/blocks/:blockId", handlers.DeleteBlockHandler(itinerarySvc))
	}

	return r
}
