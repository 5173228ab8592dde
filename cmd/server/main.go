package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/idubina/it-company-task-manager/internal/config"
	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/database"
	"github.com/idubina/it-company-task-manager/internal/handlers"
	"github.com/idubina/it-company-task-manager/internal/middleware"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"github.com/idubina/it-company-task-manager/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	workerRepo := repository.NewWorkerRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	tagRepo := repository.NewTagRepository(db)
	taskTypeRepo := repository.NewTaskTypeRepository(db)

	// Initialize services
	authService := services.NewAuthService(workerRepo)
	workerService := services.NewWorkerService(workerRepo, positionRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, taskTypeRepo, tagRepo, workerRepo)
	projectService := services.NewProjectService(projectRepo, teamRepo, taskRepo)
	teamService := services.NewTeamService(teamRepo, workerRepo)
	positionService := services.NewPositionService(positionRepo)
	taxonomyService := services.NewTaxonomyService(tagRepo, taskTypeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	workerHandler := handlers.NewWorkerHandler(workerService)
	taskHandler := handlers.NewTaskHandler(taskService)
	projectHandler := handlers.NewProjectHandler(projectService)
	teamHandler := handlers.NewTeamHandler(teamService)
	positionHandler := handlers.NewPositionHandler(positionService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService, taskService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "IT Company Task Manager is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentWorker)
		}

		// Everything else requires an authenticated session
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("", handlers.Dashboard)

			workers := protected.Group("/workers")
			{
				workers.GET("", workerHandler.ListWorkers)
				workers.POST("", workerHandler.CreateWorker)
				workers.GET("/:id", workerHandler.GetWorker)
				workers.DELETE("/:id", workerHandler.DeleteWorker)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("", taskHandler.ListTasks)
				tasks.POST("", taskHandler.CreateTask)
				tasks.GET("/:id", taskHandler.GetTask)
				tasks.PUT("/:id", taskHandler.UpdateTask)
				tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
				tasks.DELETE("/:id", taskHandler.DeleteTask)

				tags := tasks.Group("/tags")
				{
					tags.GET("", taxonomyHandler.ListTags)
					tags.POST("", taxonomyHandler.CreateTag)
					tags.GET("/:id", taxonomyHandler.GetTag)
					tags.DELETE("/:id", taxonomyHandler.DeleteTag)
				}

				taskTypes := tasks.Group("/task-types")
				{
					taskTypes.GET("", taxonomyHandler.ListTaskTypes)
					taskTypes.POST("", taxonomyHandler.CreateTaskType)
					taskTypes.GET("/:id", taxonomyHandler.GetTaskType)
					taskTypes.DELETE("/:id", taxonomyHandler.DeleteTaskType)
				}
			}

			projects := protected.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.POST("", projectHandler.CreateProject)
				projects.GET("/:id", projectHandler.GetProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			positions := protected.Group("/positions")
			{
				positions.GET("", positionHandler.ListPositions)
				positions.POST("", positionHandler.CreatePosition)
				positions.GET("/:id", positionHandler.GetPosition)
				positions.DELETE("/:id", positionHandler.DeletePosition)
			}

			teams := protected.Group("/teams")
			{
				teams.GET("", teamHandler.ListTeams)
				teams.POST("", teamHandler.CreateTeam)
				teams.GET("/:id", teamHandler.GetTeam)
				teams.DELETE("/:id", teamHandler.DeleteTeam)
			}
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
