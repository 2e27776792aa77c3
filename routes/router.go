// Router setup layer.
package routes

import (
	"time"

	"userapi/handlers"
	"userapi/middlewares"
	"userapi/services"

	"github.com/gin-gonic/gin"
)

// Setup attaches the global middlewares and registers all endpoints.
// Protected routes enforce the bearer-token gate inside the handler,
// before any other handler logic runs.
func Setup(r *gin.Engine, svc services.UserService, jwtSecret string, jwtExp time.Duration) {
	r.Use(middlewares.RequestLogger(), middlewares.Recovery())

	uh := handlers.NewUserHandler(svc, jwtSecret, jwtExp)

	// Public endpoints (no token required).
	r.GET("/version", uh.Version)
	r.POST("/register", uh.Register)
	r.POST("/login", uh.Login)

	// Protected user resource.
	r.GET("/user", uh.ListUsers)
	r.GET("/user/:id", uh.GetUser)
	r.POST("/user", uh.CreateUser)
	r.PUT("/user/:id", uh.UpdateUser)
	r.PATCH("/user/:id", uh.UpdateUser)
	r.DELETE("/user/:id", uh.DeleteUser)
}
