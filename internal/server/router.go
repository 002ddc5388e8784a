// Package server exposes game sessions over an HTTP JSON API.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/session"
)

// RequestIDHeader carries the id of each request and its response.
const RequestIDHeader = "X-Request-ID"

// NewRouter builds the gin engine serving the API with request ids, gin's
// logger and recovery middleware.
func NewRouter(manager *session.Manager) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), gin.Logger(), gin.Recovery())
	SetupRoutes(router, manager)
	return router
}

// SetupRoutes registers the API on engine.
func SetupRoutes(engine *gin.Engine, manager *session.Manager) {
	gh := &GameHandler{manager: manager}

	engine.GET("/health", healthHandler)

	api := engine.Group("/api/games")
	api.POST("", gh.createGame)
	api.GET("/:id", gh.getGame)
	api.DELETE("/:id", gh.deleteGame)
	api.GET("/:id/moves/:square", gh.legalMoves)
	api.POST("/:id/moves", gh.makeMove)
	api.POST("/:id/undo", gh.undo)
}

func healthHandler(c *gin.Context) {
	c.String(200, "ok")
}

// requestID keeps a caller's request id or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
