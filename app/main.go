package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-comments-api/internal/config"
	"github.com/Guyuepp/go-comments-api/internal/render"
	"github.com/Guyuepp/go-comments-api/internal/repository"
	mysqlRepo "github.com/Guyuepp/go-comments-api/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/go-comments-api/internal/repository/redis"
	"github.com/Guyuepp/go-comments-api/internal/permission"
	"github.com/Guyuepp/go-comments-api/internal/tracing"

	"github.com/Guyuepp/go-comments-api/internal/rest"
	"github.com/Guyuepp/go-comments-api/internal/rest/middleware"
	"github.com/Guyuepp/go-comments-api/internal/usecase/comment"
	"github.com/Guyuepp/go-comments-api/internal/usecase/post"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func main() {
	cfg := config.Load()
	cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare tracing
	shutdownTracing, err := tracing.Init(ctx, cfg.OTELEndpoint, cfg.OTELServiceName)
	if err != nil {
		logrus.Fatalf("failed to init tracing: %v", err)
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(c)
	}()

	//prepare database
	db, err := connectDB(func() (*gorm.DB, error) {
		return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	}, dbMaxRetry, dbRetryIntervalSec*time.Second, time.Sleep)
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)

	// Comment相关的三层架构
	// 1. DB层
	commentDBRepo := mysqlRepo.NewCommentRepository(db, cfg.Location)
	// 2. Cache层
	commentCache := myRedisCache.NewCommentCache(client, cfg.CommentCacheTTL)
	// 3. Repository协调层
	commentRepo := repository.NewCommentRepository(commentDBRepo, commentCache)

	// Build service Layer
	perms := permission.NewEvaluator(post.NewReadPolicy(postRepo))

	hooks := comment.NewHooks()
	hooks.Text.Register(render.CommentText)

	links := comment.NewLinks(cfg.APIBaseURL)
	shaper := comment.NewShaper(links, hooks)
	commentSvc := comment.NewService(commentRepo, postRepo, userRepo, perms, shaper, links, cfg.Location)
	commentHandler := rest.NewCommentHandler(commentSvc, cfg.PerPage, cfg.MaxPerPage)

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestLogger())
	route.Use(middleware.CORS(cfg.CORSOrigins...))
	route.Use(middleware.Metrics(prometheus.DefaultRegisterer))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Timeout))

	route.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register routes
	api := route.Group("/")
	api.Use(middleware.OptionalAuth(cfg.JWTSecret))
	commentHandler.Register(api)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: tracing.Handler(route, "comments-api"),
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}
