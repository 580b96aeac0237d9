package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialmedia/api/handlers"
	"socialmedia/api/middleware"
)

// NewRouter wires the route table onto a gin engine with the
// cross-cutting middleware applied.
func NewRouter(h *handlers.Handlers, corsOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.PrometheusMiddleware())
	router.Use(middleware.Cors(corsOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Social Media Platform API"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/users", h.ListUsers)
	router.POST("/users", h.CreateUser)
	router.GET("/users/:id", h.GetUser)
	router.GET("/users/:id/posts", h.GetUserPosts)
	router.GET("/users/:id/followers", h.GetFollowers)
	router.GET("/users/:id/following", h.GetFollowing)
	router.POST("/users/:id/follow", h.FollowUser)
	router.DELETE("/users/:id/follow", h.UnfollowUser)

	router.GET("/posts", h.ListPosts)
	router.POST("/posts", h.CreatePost)
	router.GET("/posts/:postId", h.GetPost)
	router.DELETE("/posts/:postId", h.DeletePost)
	router.GET("/posts/:postId/comments", h.ListComments)
	router.POST("/posts/:postId/comments", h.CreateComment)
	router.GET("/posts/:postId/likes", h.GetLikes)
	router.POST("/posts/:postId/likes", h.ToggleLike)

	router.DELETE("/comments/:id", h.DeleteComment)

	return router
}
