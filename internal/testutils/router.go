package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/handlers"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/routes"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/websocket"
)

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	hub := websocket.NewHub()
	repos := repositories.New()
	svcs := services.New(repos, hub)
	h := handlers.New(svcs, hub)

	r := gin.New()
	routes.Register(r, h)
	return r
}
