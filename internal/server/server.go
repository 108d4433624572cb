package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/apierr"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/migrations"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to access DB handle: %w", err)
	}
	if err := migrations.Run(sqlDB); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Schema up to date")

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.ErrorResponder(cfg.IsProduction()))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewBoardListRepository(db)
	cardRepo := repository.NewListCardRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, []byte(cfg.JWTSecret), cfg.JWTExpiry())
	boardHandler := handler.NewBoardHandler(boardRepo)
	listHandler := handler.NewBoardListHandler(listRepo, boardRepo)
	cardHandler := handler.NewListCardHandler(cardRepo, listRepo, boardRepo)

	authGuard := middleware.JWTAuthMiddleware(cfg.JWTSecret, userRepo)

	api := r.Group("/api")

	// User routes; register and login are the only public endpoints
	users := api.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/search", authGuard, userHandler.Search)

	// Protected routes - require authentication
	authorized := api.Group("/")
	authorized.Use(authGuard)
	{
		// Board routes
		authorized.POST("/board/create", boardHandler.Create)
		authorized.GET("/board/list", boardHandler.List)
		authorized.PUT("/board/update/:id", boardHandler.Update)
		authorized.DELETE("/board/delete/:id", boardHandler.Delete)

		// Board list routes
		authorized.POST("/boardList/create", listHandler.Create)
		authorized.GET("/boardList/list/:boardId", listHandler.List)
		authorized.PUT("/boardList/update/:listId", listHandler.Update)
		authorized.DELETE("/boardList/delete/:listId", listHandler.Delete)

		// Card routes
		authorized.POST("/cards/create", cardHandler.Create)
		authorized.GET("/cards/byList/:listId", cardHandler.GetByList)
		authorized.GET("/cards/byBoard/:boardId", cardHandler.GetByBoard)
		authorized.PUT("/cards/update/:cardId", cardHandler.Update)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apierr.NotFound("Not Found"))
	})

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
