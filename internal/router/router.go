package router

import (
	"github.com/Circulx/Profile-management/config"
	"github.com/Circulx/Profile-management/internal/app/controller"
	"github.com/Circulx/Profile-management/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	profileController *controller.ProfileController
	sectionController *controller.SectionController
	sessionController *controller.SessionController
	uploadController  *controller.UploadController
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

func NewRouter(
	profileController *controller.ProfileController,
	sectionController *controller.SectionController,
	sessionController *controller.SessionController,
	uploadController *controller.UploadController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		profileController: profileController,
		sectionController: sectionController,
		sessionController: sessionController,
		uploadController:  uploadController,
		sessionMiddleware: sessionMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Profile Management API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		profile := v1.Group("/profile")
		{
			profile.GET("", r.profileController.ListProfiles)
			profile.GET("/export", r.profileController.ExportProfiles)
			profile.GET("/:id", r.profileController.GetProfile)
			profile.PUT("/:id", r.profileController.UpdateProfile)
			profile.DELETE("/:id", r.profileController.DeleteProfile)

			profile.POST("/business",
				r.sessionMiddleware.Optional(),
				r.profileController.CreateBusiness,
			)
			profile.POST("/:businessId/:section",
				r.sessionMiddleware.Optional(),
				r.sectionController.SaveSection,
			)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", r.sessionController.CreateSession)
			sessions.GET("/current", r.sessionMiddleware.Require(), r.sessionController.CurrentSession)
			sessions.POST("/advance", r.sessionMiddleware.Require(), r.sessionController.AdvanceSession)
		}

		uploads := v1.Group("/uploads")
		{
			uploads.POST("/presigned", r.uploadController.PresignDocumentUpload)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		for _, allowed := range allowedOrigins {
			if origin == allowed {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
