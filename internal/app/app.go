package app

import (
	"context"
	"net/http"
	"time"

	"todo-service/internal/config"
	"todo-service/internal/logging"
	"todo-service/internal/repo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const defaultShutdownTimeout = 10 * time.Second

type App struct {
	cfg    config.Config
	log    *logrus.Logger
	store  *repo.Store
	router *gin.Engine
}

// New builds the application with an empty in-memory registry.
func New(cfg config.Config, log *logrus.Logger) (*App, error) {
	return NewWithClock(cfg, log, clockwork.NewRealClock())
}

// NewWithClock is New with an explicit clock for todo timestamps.
func NewWithClock(cfg config.Config, log *logrus.Logger, clock clockwork.Clock) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   log,
		store: repo.NewStore(),
	}
	a.router = newRouter(cfg, log, a.store, clock)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// ShutdownTimeout returns the graceful shutdown window for the HTTP server.
func (a *App) ShutdownTimeout() time.Duration {
	if d := a.cfg.HTTP.ShutdownTimeout.Duration(); d > 0 {
		return d
	}
	return defaultShutdownTimeout
}

// Close drops the registry. In-memory state does not survive the process.
func (a *App) Close(ctx context.Context) error {
	users, err := repo.NewMemUserRepo(a.store).Count(ctx)
	if err != nil {
		return err
	}
	a.log.WithField("users", users).Info("discarding in-memory registry")
	return nil
}

func newRouter(cfg config.Config, log *logrus.Logger, store *repo.Store, clock clockwork.Clock) *gin.Engine {
	r := gin.New()
	r.Use(logging.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c).WithField("panic", recovered).Error("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Username"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        cfg.CORS.MaxAge.Duration(),
	}))

	Setup(r, cfg, log, store, clock)
	return r
}
