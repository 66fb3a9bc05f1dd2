package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/wmsConsultant/backend/internal/capability"
	"github.com/wmsConsultant/backend/internal/catalog"
	"github.com/wmsConsultant/backend/internal/config"
	"github.com/wmsConsultant/backend/internal/handler"
	"github.com/wmsConsultant/backend/internal/middleware"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/internal/router"
	"github.com/wmsConsultant/backend/internal/service"
	"github.com/wmsConsultant/backend/pkg/logger"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Sync()

	// Database
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN())
	default:
		dialector = sqlite.Open(cfg.Database.Path)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.Client{},
		&model.Project{},
		&model.Question{},
		&model.ResearchRecord{},
		&model.WMSProcess{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Seed the WMS process catalog once
	var processCount int64
	db.Model(&model.WMSProcess{}).Count(&processCount)
	if processCount == 0 {
		processes := catalog.Processes()
		if err := db.Create(&processes).Error; err != nil {
			log.Fatalf("seed wms processes: %v", err)
		}
		logg.Info("seeded wms process catalog", "categories", len(catalog.Categories()))
	}

	// Redis (optional, shared rate-limit counters)
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Generation capability
	aiClient := capability.NewOpenAIClient(cfg.AI)
	searchClient := capability.NewSerpClient(cfg.Search)
	logg.Info("generation capability",
		"text_generation", aiClient.Configured(),
		"web_search", searchClient.Configured(),
	)

	// Services
	clientService := service.NewClientService(db)
	projectService := service.NewProjectService(db)
	questionService := service.NewQuestionService(db)
	researchService := service.NewResearchService(db)
	dashboardService := service.NewDashboardService(db)
	generator := service.NewQuestionGenerator(aiClient, cfg.Generation, logg)
	researcher := service.NewResearcher(aiClient, searchClient, logg)

	// Handlers
	clientHandler := handler.NewClientHandler(clientService)
	projectHandler := handler.NewProjectHandler(projectService)
	questionHandler := handler.NewQuestionHandler(questionService, projectService, generator)
	researchHandler := handler.NewResearchHandler(researchService, clientService, researcher)
	processHandler := handler.NewProcessHandler(db)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(aiClient, searchClient)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, rdb)
	}

	// Gin engine; request logging goes through zap, not gin's logger
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	router.Setup(r, router.Deps{
		ClientHandler:    clientHandler,
		ProjectHandler:   projectHandler,
		QuestionHandler:  questionHandler,
		ResearchHandler:  researchHandler,
		ProcessHandler:   processHandler,
		DashboardHandler: dashboardHandler,
		HealthHandler:    healthHandler,
		RateLimiter:      rateLimiter,
		Logger:           logg,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logg.Info("server starting", "addr", addr, "driver", cfg.Database.Driver)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
