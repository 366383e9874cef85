package main

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"wanderboard/api/router"
	"wanderboard/cache"
	"wanderboard/config"
	"wanderboard/db"
	_ "wanderboard/docs" // generated by swag
	"wanderboard/eventbus"
	"wanderboard/logger"
)

// @title           Wanderboard API
// @version         1.0
// @description     Travel planning service with AI itinerary generation
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal(err)
	}

	previewCache := cache.Init(ctx)
	defer previewCache.Close()

	var bus eventbus.Bus = eventbus.NoopBus{}
	if cfg.Kafka.Enabled {
		kafkaBus, err := eventbus.NewKafkaBus(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatal(err)
		}
		bus = kafkaBus
	}
	defer bus.Close()

	r := router.New(bus, previewCache)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}).Handler(r)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	logger.Log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
