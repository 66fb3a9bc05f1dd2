package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/handler"
	"github.com/wmsConsultant/backend/internal/middleware"
	"github.com/wmsConsultant/backend/pkg/logger"
)

type Deps struct {
	ClientHandler    *handler.ClientHandler
	ProjectHandler   *handler.ProjectHandler
	QuestionHandler  *handler.QuestionHandler
	ResearchHandler  *handler.ResearchHandler
	ProcessHandler   *handler.ProcessHandler
	DashboardHandler *handler.DashboardHandler
	HealthHandler    *handler.HealthHandler
	RateLimiter      *middleware.RateLimiter
	Logger           *logger.Logger
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	if deps.Logger != nil {
		r.Use(middleware.RequestLogger(deps.Logger))
	}

	api := r.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Handler())
	}

	api.GET("/health", deps.HealthHandler.Check)

	clients := api.Group("/clients")
	{
		clients.GET("", deps.ClientHandler.List)
		clients.POST("", deps.ClientHandler.Create)
		clients.GET("/:id", deps.ClientHandler.Get)
		clients.PUT("/:id", deps.ClientHandler.Update)
		clients.DELETE("/:id", deps.ClientHandler.Delete)

		// Projects under clients
		clients.GET("/:id/projects", deps.ProjectHandler.ListByClient)
		clients.POST("/:id/projects", deps.ProjectHandler.Create)

		// Research under clients
		clients.GET("/:id/research", deps.ResearchHandler.ListByClient)
		clients.POST("/:id/research", deps.ResearchHandler.Conduct)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", deps.ProjectHandler.ListAll)
		projects.GET("/:id", deps.ProjectHandler.Get)
		projects.PUT("/:id", deps.ProjectHandler.Update)
		projects.DELETE("/:id", deps.ProjectHandler.Delete)

		// Questions under projects
		projects.GET("/:id/questions", deps.QuestionHandler.ListByProject)
		projects.POST("/:id/questions", deps.QuestionHandler.Create)
		projects.POST("/:id/questions/generate", deps.QuestionHandler.Generate)
	}

	questions := api.Group("/questions")
	{
		questions.PUT("/:id/answer", deps.QuestionHandler.Answer)
		questions.DELETE("/:id", deps.QuestionHandler.Delete)
	}

	api.GET("/wms-processes", deps.ProcessHandler.List)
	api.GET("/wms-processes/categories", deps.ProcessHandler.Categories)

	api.GET("/dashboard", deps.DashboardHandler.Get)
}
