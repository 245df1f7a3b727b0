package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/movieflix/internal/model"
	"github.com/user/movieflix/internal/utils"
)

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.ListUsers()
	if err != nil {
		h.renderError(c, err)
		return
	}
	utils.Success(c, users)
}

// AddUser 新增用户，成功后跳回用户列表
func (h *Handler) AddUser(c *gin.Context) {
	name := c.PostForm("user_name")

	if _, err := h.Users.AddUser(model.User{Name: name, Movies: model.MovieList{}}); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

// GetUserMovies 单个用户及其观影清单
func (h *Handler) GetUserMovies(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.Users.GetUser(userID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	utils.Success(c, gin.H{
		"user":   user,
		"movies": user.Movies,
	})
}

// UpdateUser 修改用户名
func (h *Handler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.Users.UpdateUser(userID, c.PostForm("name")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}

// DeleteUser 删除用户及其全部观影记录
func (h *Handler) DeleteUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.Users.DeleteUser(userID); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/users")
}
