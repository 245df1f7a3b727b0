package service

import (
	"github.com/user/movieflix/internal/model"
	"github.com/user/movieflix/internal/repository"
)

// UsersService 用户领域服务：校验规则和内嵌观影清单的操作都在这里
// 持久化交给注入的 DataManager
type UsersService struct {
	manager *repository.DataManager[model.User]
}

// NewUsersService 创建用户服务
func NewUsersService(manager *repository.DataManager[model.User]) *UsersService {
	return &UsersService{manager: manager}
}

// ListUsers 返回全部用户；数据集尚不存在时透传 ErrAbsent
func (s *UsersService) ListUsers() ([]model.User, error) {
	return s.manager.GetAll()
}

// GetUser 按 id 查找用户
func (s *UsersService) GetUser(id int) (model.User, error) {
	return s.manager.GetByID(id)
}

// AddUser 新增用户，校验先于任何写入
func (s *UsersService) AddUser(user model.User) (model.User, error) {
	if messages := ValidateUserName(user.Name); len(messages) > 0 {
		return model.User{}, &ValidationError{Messages: messages}
	}
	if user.Movies == nil {
		user.Movies = model.MovieList{}
	}
	return s.manager.Add(user)
}

// UpdateUser 更新用户名，观影清单保持不动
func (s *UsersService) UpdateUser(id int, name string) error {
	if messages := ValidateUserName(name); len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	user, err := s.manager.GetByID(id)
	if err != nil {
		return err
	}
	user.Name = name
	return s.manager.Update(user)
}

// DeleteUser 删除用户；清单内嵌在用户记录里，电影随之级联删除
func (s *UsersService) DeleteUser(id int) error {
	return s.manager.Delete(id)
}

// GetUserMovies 返回指定用户的观影清单
func (s *UsersService) GetUserMovies(userID int) ([]model.Movie, error) {
	user, err := s.manager.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return user.Movies, nil
}

// GetUserMovie 按 (user_id, movie_id) 查找一部电影
func (s *UsersService) GetUserMovie(userID, movieID int) (model.Movie, error) {
	movies, err := s.GetUserMovies(userID)
	if err != nil {
		return model.Movie{}, err
	}
	for _, movie := range movies {
		if movie.MovieID == movieID {
			return movie, nil
		}
	}
	return model.Movie{}, repository.ErrNotFound
}

// AddUserMovie 给用户追加一部电影
// movie_id 按该用户自己的清单分配，不是全局编号
// 表单输入的校验在录入口完成；元数据服务回填的字段原样入库，
// 片名以数字开头（比如 "2001: A Space Odyssey"）也照收
func (s *UsersService) AddUserMovie(userID int, movie model.Movie) (model.Movie, error) {
	user, err := s.manager.GetByID(userID)
	if err != nil {
		return model.Movie{}, err
	}

	movie.MovieID = repository.GenerateNewID[model.Movie](user.Movies)
	user.Movies = append(user.Movies, movie)

	if err := s.manager.Update(user); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}

// MoviePatch 电影字段补丁，nil 字段保持原值
type MoviePatch struct {
	Name     *string
	Director *string
	Year     *int
	Rating   *float64
	Poster   *string
	Website  *string
}

func (p MoviePatch) apply(m model.Movie) model.Movie {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.Poster != nil {
		m.Poster = *p.Poster
	}
	if p.Website != nil {
		m.Website = *p.Website
	}
	return m
}

// UpdateUserMovie 把补丁合并进指定电影，未提供的字段保持不变
func (s *UsersService) UpdateUserMovie(userID, movieID int, patch MoviePatch) error {
	user, err := s.manager.GetByID(userID)
	if err != nil {
		return err
	}

	for i, movie := range user.Movies {
		if movie.MovieID != movieID {
			continue
		}
		merged := patch.apply(movie)
		if messages := validateMovie(merged); len(messages) > 0 {
			return &ValidationError{Messages: messages}
		}
		user.Movies[i] = merged
		return s.manager.Update(user)
	}
	return repository.ErrNotFound
}

// DeleteUserMovie 从用户清单里移除一部电影
// 重复删除同一对 (user_id, movie_id) 第二次返回 ErrNotFound
func (s *UsersService) DeleteUserMovie(userID, movieID int) error {
	user, err := s.manager.GetByID(userID)
	if err != nil {
		return err
	}

	for i, movie := range user.Movies {
		if movie.MovieID != movieID {
			continue
		}
		user.Movies = append(user.Movies[:i], user.Movies[i+1:]...)
		return s.manager.Update(user)
	}
	return repository.ErrNotFound
}
