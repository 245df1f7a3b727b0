package service

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/user/movieflix/internal/model"
)

// ValidationError 输入校验失败，携带全部违反项（不是只报第一条）
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// alphastart: 非空字符串必须以字母开头
	_ = v.RegisterValidation("alphastart", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return unicode.IsLetter([]rune(s)[0])
	})
	return v
}

// MovieInput 表单原文，年份和评分保持文本形态以便录入前校验
type MovieInput struct {
	Name     string
	Director string
	Year     string
	Rating   string
}

// ValidateUserName 校验用户名
func ValidateUserName(name string) []string {
	var messages []string
	if err := validate.Var(name, "required"); err != nil {
		messages = append(messages, "User name cannot be empty")
	} else if err := validate.Var(name, "alphastart"); err != nil {
		messages = append(messages, "User name must start with letter")
	}
	return messages
}

// ValidateMovieInput 校验电影表单，一次性收集所有错误信息
func ValidateMovieInput(in MovieInput) []string {
	var messages []string

	if err := validate.Var(in.Name, "required"); err != nil {
		messages = append(messages, "Movie name cannot be empty")
	} else if err := validate.Var(in.Name, "alphastart"); err != nil {
		messages = append(messages, "Movie name must start with letter")
	}

	if in.Director != "" {
		if err := validate.Var(in.Director, "alphastart"); err != nil {
			messages = append(messages, "Director name must start with letter")
		}
	}

	if in.Year != "" {
		if err := validate.Var(in.Year, "number"); err != nil {
			messages = append(messages, "Year must be number")
		} else if len(in.Year) != 4 {
			messages = append(messages, "Year must be 4 digits")
		}
	}

	if in.Rating != "" {
		if err := validate.Var(in.Rating, "numeric"); err != nil {
			messages = append(messages, "Rating must be a number")
		} else if r, _ := strconv.ParseFloat(in.Rating, 64); r < 1.0 || r > 10.0 {
			messages = append(messages, "Rating must be between 1.0 - 10.0")
		}
	}

	return messages
}

// validateMovie 校验已解析的电影记录（元数据回填后的形态）
// 年份和评分的零值表示未提供，不参与校验
func validateMovie(m model.Movie) []string {
	var messages []string

	if err := validate.Var(m.Name, "required"); err != nil {
		messages = append(messages, "Movie name cannot be empty")
	} else if err := validate.Var(m.Name, "alphastart"); err != nil {
		messages = append(messages, "Movie name must start with letter")
	}

	if m.Director != "" {
		if err := validate.Var(m.Director, "alphastart"); err != nil {
			messages = append(messages, "Director name must start with letter")
		}
	}

	if m.Year != 0 && (m.Year < 1000 || m.Year > 9999) {
		messages = append(messages, "Year must be 4 digits")
	}

	if m.Rating != 0 && (m.Rating < 1.0 || m.Rating > 10.0) {
		messages = append(messages, "Rating must be between 1.0 - 10.0")
	}

	return messages
}
