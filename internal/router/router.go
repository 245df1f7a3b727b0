package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/movieflix/internal/handler"
)

// RegisterRoutes 注册所有路由
// 路径沿用旧版应用的表单提交风格：写操作成功后 302 跳回列表页
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 用户 ====================
	r.GET("/users", h.ListUsers)
	r.POST("/add_user", h.AddUser)

	users := r.Group("/users/:user_id")
	{
		users.GET("", h.GetUserMovies)
		users.POST("/update_user", h.UpdateUser)
		users.POST("/delete_user", h.DeleteUser)

		// ==================== 电影 ====================
		users.POST("/add_movie", h.AddMovie)
		users.POST("/update_movie/:movie_id", h.UpdateMovie)
		users.POST("/delete_movie/:movie_id", h.DeleteMovie)
	}
}
