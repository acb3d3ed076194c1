package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/CodeClinic/config"
	"github.com/lshigami/CodeClinic/database"
	_ "github.com/lshigami/CodeClinic/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/CodeClinic/internal/controller/admin"
	userctrl "github.com/lshigami/CodeClinic/internal/controller/user"
	"github.com/lshigami/CodeClinic/internal/logger"
	"github.com/lshigami/CodeClinic/internal/model"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/lshigami/CodeClinic/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CodeClinic API
// @version 1.0
// @description Q&A service for coding problems: users submit problems, an AI collaborator answers first, the community adds solutions, comments and votes. Admin reports aggregate engagement, AI-vs-human and leaderboard metrics.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewProblemRepository,
			repository.NewSolutionRepository,
			repository.NewCommentRepository,
			repository.NewVoteRepository,
			repository.NewReportRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewUserService,
			func(
				problemRepo repository.ProblemRepository,
				solutionRepo repository.SolutionRepository,
				userRepo repository.UserRepository,
				gemini service.GeminiLLMService,
				db *gorm.DB,
			) service.ProblemService {
				return service.NewProblemService(problemRepo, solutionRepo, userRepo, gemini, db)
			},
			service.NewSolutionService,
			service.NewCommentService,
			func(voteRepo repository.VoteRepository, db *gorm.DB) service.VoteService {
				return service.NewVoteService(voteRepo, db)
			},
			service.NewReportService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAccountController,
			userctrl.NewProblemController,
			userctrl.NewSolutionController,
			adminctrl.NewReportController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	accountCtrl *userctrl.AccountController,
	problemCtrl *userctrl.ProblemController,
	solutionCtrl *userctrl.SolutionController,
	reportCtrl *adminctrl.ReportController,
) {
	apiGroup := router.Group("/api/v1")
	{
		apiGroup.POST("/users", accountCtrl.Register)

		apiGroup.GET("/problems", problemCtrl.GetAllProblems)
		apiGroup.POST("/problems", problemCtrl.SubmitProblem)
		apiGroup.GET("/problems/:problem_id", problemCtrl.GetProblemDetail)
		apiGroup.POST("/problems/:problem_id/solutions", solutionCtrl.CreateSolution)

		apiGroup.POST("/solutions/:solution_id/comments", solutionCtrl.AddComment)
		apiGroup.POST("/solutions/:solution_id/votes/:vote_type", solutionCtrl.ApplyVote)
	}

	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.GET("/reports", reportCtrl.GetReports)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CodeClinic API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Problem{},
		&model.Solution{},
		&model.Comment{},
		&model.Vote{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
