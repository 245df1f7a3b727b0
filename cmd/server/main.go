package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/user/movieflix/internal/config"
	"github.com/user/movieflix/internal/handler"
	"github.com/user/movieflix/internal/middleware"
	"github.com/user/movieflix/internal/model"
	"github.com/user/movieflix/internal/repository"
	"github.com/user/movieflix/internal/router"
	"github.com/user/movieflix/internal/service"
	"github.com/user/movieflix/internal/utils"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	// 初始化存储后端
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("存储初始化失败: %v", err)
	}

	// 初始化数据管理器（显式构造并注入，不用包级单例）
	manager := repository.NewDataManager("users", store, func(u model.User, id int) model.User {
		u.ID = id
		return u
	})

	// 初始化服务
	usersSvc := service.NewUsersService(manager)
	omdbSvc := service.NewOMDbService(cfg)

	// 初始化缓存
	utils.InitCache()

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 中间件
	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	// 初始化 Handler 并注册路由
	h := handler.NewHandler(usersSvc, omdbSvc, cfg)
	router.RegisterRoutes(r, h)

	// 配置 HTTP 服务器
	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Printf("%s 启动于 http://localhost:%s", cfg.SiteName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}

// newStore 按配置选择存储后端，默认 JSON 平面文件
func newStore(cfg *config.Config) (repository.Store[model.User], error) {
	switch cfg.DataBackend {
	case "postgres":
		db, err := repository.InitDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return repository.NewPostgresStore(db), nil
	case "csv":
		return repository.NewCSVStore[model.User](cfg.DataFile), nil
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.DataFile), 0o755); err != nil {
			return nil, err
		}
		return repository.NewFileStore[model.User](cfg.DataFile), nil
	}
}
