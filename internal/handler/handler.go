package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/purehouse/post-service/internal/service"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	services *service.Service
	db       *mongo.Client
}

func New(services *service.Service, db *mongo.Client) *Handler {
	return &Handler{
		services: services,
		db:       db,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.requestIDMiddleware)

	corsConfig := cors.Config{
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}
	origin := viper.GetString("client.origin")
	if origin == "" || origin == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = []string{origin}
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", h.health)

	api := r.Group("/api")
	{
		posts := api.Group("/posts")
		{
			posts.GET("", h.postsList)
			posts.POST("", h.postsCreate)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.PUT("", h.postsUpdate)
				post.DELETE("", h.postsDelete)
			}
		}
	}

	return r
}
