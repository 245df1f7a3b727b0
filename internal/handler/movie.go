package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/user/movieflix/internal/service"
	"github.com/user/movieflix/internal/utils"
)

// AddMovie 给用户添加电影
// 表单只收片名，其余字段先向元数据服务查询补全；
// 查询失败时降级为只有片名的记录，录入流程不受影响
func (h *Handler) AddMovie(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	// 用户不存在直接 404，不为无效请求消耗上游查询
	if _, err := h.Users.GetUser(userID); err != nil {
		h.renderError(c, err)
		return
	}

	name := c.PostForm("name")
	if messages := service.ValidateMovieInput(service.MovieInput{Name: name}); len(messages) > 0 {
		utils.ValidationFailed(c, messages)
		return
	}

	movie := h.OMDb.Fetch(name)
	if _, err := h.Users.AddUserMovie(userID, movie); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", userID))
}

// UpdateMovie 修改用户的一部电影
// 表单里出现的字段才进补丁，没出现的保持原值
func (h *Handler) UpdateMovie(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return
	}

	in := service.MovieInput{
		Name:     c.PostForm("name"),
		Director: c.PostForm("director"),
		Year:     c.PostForm("year"),
		Rating:   c.PostForm("rating"),
	}
	if messages := service.ValidateMovieInput(in); len(messages) > 0 {
		utils.ValidationFailed(c, messages)
		return
	}

	patch := service.MoviePatch{Name: &in.Name}
	if _, present := c.GetPostForm("director"); present {
		patch.Director = &in.Director
	}
	if in.Year != "" {
		year, _ := strconv.Atoi(in.Year)
		patch.Year = &year
	}
	if in.Rating != "" {
		rating, _ := strconv.ParseFloat(in.Rating, 64)
		patch.Rating = &rating
	}

	if err := h.Users.UpdateUserMovie(userID, movieID, patch); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", userID))
}

// DeleteMovie 从用户清单删除一部电影
func (h *Handler) DeleteMovie(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return
	}

	if err := h.Users.DeleteUserMovie(userID, movieID); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", userID))
}
