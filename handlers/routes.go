package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register mounts every route on r. /task, /category and /user are also
// reachable under the short aliases /t, /c and /u.
//
// The following endpoints are available:
//
//  1. GET    /             - Service banner
//  2. GET    /task         - List all tasks, newest first
//  3. GET    /task/{id}    - Get a task by ID
//  4. POST   /task         - Create a task, answers {id}
//  5. PUT    /task/{id}    - Partially update a task, answers {message}
//  6. DELETE /task/{id}    - Delete a task, answers {message}
//  7. GET    /category     - List categories
//  8. GET    /category/{id} - Get a category by ID
//  9. POST   /category     - Create a category
//  10. DELETE /category/{id} - Delete a category
//  11. GET    /user        - List users
//  12. GET    /health      - Database liveness
//  13. GET    /metrics     - Prometheus metrics
func Register(r gin.IRouter, h *Handlers) {
	r.GET("/", Home)
	r.GET("/health", h.Health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, prefix := range []string{"/task", "/t"} {
		g := r.Group(prefix)
		g.GET("", h.Tasks.List)
		g.GET("/:id", h.Tasks.Get)
		g.POST("", h.Tasks.Create)
		g.PUT("/:id", h.Tasks.Update)
		g.DELETE("/:id", h.Tasks.Delete)
	}
	for _, prefix := range []string{"/category", "/c"} {
		g := r.Group(prefix)
		g.GET("", h.Categories.List)
		g.GET("/:id", h.Categories.Get)
		g.POST("", h.Categories.Create)
		g.DELETE("/:id", h.Categories.Delete)
	}
	for _, prefix := range []string{"/user", "/u"} {
		r.Group(prefix).GET("", h.Users.List)
	}
}

// NewRouter returns a gin engine with recovery, the given middleware and
// every route registered.
func NewRouter(h *Handlers, mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw...)
	Register(r, h)
	return r
}
