package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"institute-backend/controllers"
	"institute-backend/middleware"
	"institute-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every endpoint. Public reads (certificate lookup, course
// catalog, contact form) go unauthenticated; everything that mutates records
// or lists private data sits behind the session gate.
func SetupRouter(
	ac *controllers.AuthController,
	cc *controllers.CertificateController,
	compc *controllers.ComputerCourseController,
	tc *controllers.TypingCourseController,
	mc *controllers.MessageController,
	auth *services.AuthService,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAdmin := middleware.RequireAdmin(auth)

	api := r.Group("/api")
	{
		api.POST("/login", ac.Login)
		api.POST("/logout", ac.Logout)
		api.GET("/user", requireAdmin, ac.CurrentUser)

		certificates := api.Group("/certificates")
		{
			// public single-record lookup; the bulk list stays admin-only
			certificates.GET("/:number", cc.GetByNumber)

			certificates.GET("", requireAdmin, cc.List)
			certificates.POST("", requireAdmin, cc.Create)
			certificates.PUT("/:id", requireAdmin, cc.Update)
			certificates.DELETE("/:id", requireAdmin, cc.Delete)
		}

		api.POST("/contact", mc.Create)

		adminMessages := api.Group("/admin/messages", requireAdmin)
		{
			adminMessages.GET("", mc.List)
			adminMessages.PUT("/:id/status", mc.UpdateStatus)
			adminMessages.DELETE("/:id", mc.Delete)
		}

		computerCourses := api.Group("/computer-courses")
		{
			computerCourses.GET("", compc.List)
			computerCourses.GET("/:id", compc.GetByID)
			computerCourses.POST("", requireAdmin, compc.Create)
			computerCourses.PUT("/:id", requireAdmin, compc.Update)
			computerCourses.DELETE("/:id", requireAdmin, compc.Delete)
		}

		typingCourses := api.Group("/typing-courses")
		{
			typingCourses.GET("", tc.List)
			typingCourses.GET("/:id", tc.GetByID)
			typingCourses.POST("", requireAdmin, tc.Create)
			typingCourses.PUT("/:id", requireAdmin, tc.Update)
			typingCourses.DELETE("/:id", requireAdmin, tc.Delete)
		}
	}

	return r
}
