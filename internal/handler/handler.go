package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/user/movieflix/internal/config"
	"github.com/user/movieflix/internal/repository"
	"github.com/user/movieflix/internal/service"
	"github.com/user/movieflix/internal/utils"
)

// Handler HTTP 处理器
type Handler struct {
	Users  *service.UsersService
	OMDb   *service.OMDbService
	Config *config.Config
}

// NewHandler 创建处理器
func NewHandler(users *service.UsersService, omdb *service.OMDbService, cfg *config.Config) *Handler {
	return &Handler{
		Users:  users,
		OMDb:   omdb,
		Config: cfg,
	}
}

// renderError 把分层错误映射为响应：
// 校验失败 400 带全部错误信息，未找到/数据集缺失 404，其余 500
func (h *Handler) renderError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.ValidationFailed(c, vErr.Messages)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrAbsent):
		utils.NotFound(c, "")
	default:
		log.Printf("[HTTP] 请求处理失败: %v", err)
		utils.InternalServerError(c, "")
	}
}

// pathID 解析路径里的整数参数，非数字按未找到处理
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.NotFound(c, "")
		return 0, false
	}
	return id, true
}
