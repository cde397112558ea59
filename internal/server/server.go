package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/dnd"
	"taskboard/internal/handler"
	"taskboard/internal/identity"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/notify"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *logger.Logger
}

// Init connects to the store, applies migrations and builds the router.
func Init(cfg *config.Config, log *logger.Logger) (*Server, error) {
	if err := database.NewMigrator(cfg).Up(); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	db, err := database.Open(cfg, log.Component("database"))
	if err != nil {
		return nil, err
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		Engine: NewRouter(db, cfg, log),
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

// NewRouter wires repositories, the board layer and handlers onto a gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, log *logger.Logger) *gin.Engine {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	gw := board.Gateway{
		Projects:    repository.NewProjectRepository(db, log.Component("projects")),
		Columns:     repository.NewColumnRepository(db),
		Tasks:       repository.NewTaskRepository(db),
		Members:     memberRepo,
		Assignments: repository.NewAssignmentRepository(db, memberRepo, log.Component("assignments")),
		Users:       userRepo,
	}

	loader := board.NewLoader(gw, cfg.LoaderConcurrency, cfg.DefaultProjectName, log.Component("loader"))
	resolver := identity.NewResolver(userRepo, log.Component("identity"))
	deps := handler.Deps{
		Workspaces: board.NewWorkspaces(gw, loader, log.Component("board")),
		Engines:    dnd.NewRegistry(log.Component("dnd")),
		Notifier:   notify.NewLogSink(log.Component("notify")),
		Log:        log.Component("http"),
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(deps, resolver)
	projectHandler := handler.NewProjectHandler(deps)
	memberHandler := handler.NewMemberHandler(deps)
	columnHandler := handler.NewColumnHandler(deps)
	taskHandler := handler.NewTaskHandler(deps)
	dragHandler := handler.NewDragHandler(deps)
	healthHandler := handler.NewHealthHandler(func(ctx context.Context) error {
		return database.Health(ctx, db)
	})

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log.Component("http")))

	// Public routes
	r.GET("/health", healthHandler.Check)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.ResolveUser(resolver))
	{
		authorized.GET("/me", userHandler.Me)
		authorized.GET("/users", userHandler.List)
		authorized.DELETE("/session", userHandler.SignOut)

		// Project routes
		authorized.GET("/projects", projectHandler.GetAll)
		authorized.POST("/projects", projectHandler.Create)
		authorized.PUT("/projects/:id", projectHandler.Update)
		authorized.DELETE("/projects/:id", projectHandler.Delete)
		authorized.POST("/projects/:id/select", projectHandler.Select)
		authorized.GET("/projects/:id/board", projectHandler.GetBoard)
		authorized.GET("/board", projectHandler.GetActiveBoard)

		// Membership routes
		authorized.GET("/projects/:id/members", memberHandler.List)
		authorized.POST("/projects/:id/members", memberHandler.Add)
		authorized.PUT("/projects/:id/members/:user_id", memberHandler.Update)
		authorized.DELETE("/projects/:id/members/:user_id", memberHandler.Remove)

		// Column routes
		authorized.POST("/columns", columnHandler.Create)
		authorized.PUT("/columns/:id", columnHandler.Update)
		authorized.DELETE("/columns/:id", columnHandler.Delete)
		authorized.POST("/columns/:id/move", columnHandler.Move)

		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
		authorized.POST("/tasks/:id/move", taskHandler.Move)
		authorized.POST("/tasks/:id/assign", taskHandler.Assign)
		authorized.DELETE("/tasks/:id/assign/:user_id", taskHandler.Unassign)

		// Drag and drop
		authorized.POST("/drag/start", dragHandler.Start)
		authorized.POST("/drag/drop", dragHandler.Drop)
		authorized.POST("/drag/cancel", dragHandler.Cancel)
		authorized.POST("/drops", dragHandler.HandleDrop)
	}
	return r
}

// Handler wraps the router with CORS for the browser UI.
func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   s.Config.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(s.Engine)
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Infow("server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to listen: %w", err)
	case <-quit:
	}
	s.Log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.Log.Infow("server exited properly")
	return nil
}
