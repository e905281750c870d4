package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/config"
	"github.com/linskybing/ticketdesk/db"
	"github.com/linskybing/ticketdesk/handlers"
	"github.com/linskybing/ticketdesk/middleware"
	"github.com/linskybing/ticketdesk/minio"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/routes"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/websocket"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	if config.SeedFile != "" {
		if err := db.SeedFromYAML(config.SeedFile); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	minio.InitMinio()

	hub := websocket.NewHub()
	repos := repositories.New()
	svcs := services.New(repos, hub)
	h := handlers.New(svcs, hub)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.Register(r, h)

	log.Printf("Listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
