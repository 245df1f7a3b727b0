package utils

import (
	"github.com/gin-gonic/gin"
)

// Response 统一API响应结构
type Response struct {
	Code    int         `json:"code"`             // 状态码
	Message string      `json:"message"`          // 消息
	Errors  []string    `json:"errors,omitempty"` // 校验错误明细，机器可读
	Data    interface{} `json:"data"`             // 数据
	Success bool        `json:"success"`          // 是否成功
}

// Success 返回成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    200,
		Message: "success",
		Data:    data,
		Success: true,
	})
}

// Error 返回错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Success: false,
	})
}

// ValidationFailed 返回400错误，携带全部校验错误信息
func ValidationFailed(c *gin.Context, messages []string) {
	c.JSON(400, Response{
		Code:    400,
		Message: "validation failed",
		Errors:  messages,
		Success: false,
	})
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// NotFound 返回404错误
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "资源不存在"
	}
	Error(c, 404, message)
}

// InternalServerError 返回500错误
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "服务器内部错误"
	}
	Error(c, 500, message)
}
