package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/movieflix/internal/model"
	"github.com/user/movieflix/internal/repository"
)

func newTestUsersService(t *testing.T) *UsersService {
	t.Helper()
	store := repository.NewFileStore[model.User](filepath.Join(t.TempDir(), "movies.json"))
	manager := repository.NewDataManager("users", store, func(u model.User, id int) model.User {
		u.ID = id
		return u
	})
	return NewUsersService(manager)
}

func TestAddUserRoundTrip(t *testing.T) {
	svc := newTestUsersService(t)

	added, err := svc.AddUser(model.User{Name: "Ann", Movies: model.MovieList{}})
	require.NoError(t, err)

	got, err := svc.GetUser(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, model.MovieList{}, got.Movies)
}

func TestAddUserValidation(t *testing.T) {
	svc := newTestUsersService(t)

	_, err := svc.AddUser(model.User{Name: ""})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "User name cannot be empty")

	_, err = svc.AddUser(model.User{Name: "1abc"})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "User name must start with letter")

	// 校验失败不应产生任何写入
	_, err = svc.ListUsers()
	assert.ErrorIs(t, err, repository.ErrAbsent)
}

func TestUpdateUserKeepsMovies(t *testing.T) {
	svc := newTestUsersService(t)

	user, err := svc.AddUser(model.User{Name: "Ann"})
	require.NoError(t, err)
	_, err = svc.AddUserMovie(user.ID, model.Movie{Name: "Inception"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateUser(user.ID, "Anna"))

	got, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)
	assert.Len(t, got.Movies, 1)

	assert.ErrorIs(t, svc.UpdateUser(99, "Nobody"), repository.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	svc := newTestUsersService(t)

	user, err := svc.AddUser(model.User{Name: "Ann"})
	require.NoError(t, err)
	_, err = svc.AddUserMovie(user.ID, model.Movie{Name: "Inception"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err = svc.GetUserMovies(user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieIDsScopedPerUser(t *testing.T) {
	svc := newTestUsersService(t)

	ann, err := svc.AddUser(model.User{Name: "Ann"})
	require.NoError(t, err)
	bob, err := svc.AddUser(model.User{Name: "Bob"})
	require.NoError(t, err)

	annMovie, err := svc.AddUserMovie(ann.ID, model.Movie{Name: "Inception"})
	require.NoError(t, err)
	bobMovie, err := svc.AddUserMovie(bob.ID, model.Movie{Name: "Arrival"})
	require.NoError(t, err)

	// movie_id 按用户各自编号，不是全局编号
	assert.Equal(t, 1, annMovie.MovieID)
	assert.Equal(t, 1, bobMovie.MovieID)

	second, err := svc.AddUserMovie(ann.ID, model.Movie{Name: "Memento"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.MovieID)
}

func TestAddUserMovieKeepsLookupTitle(t *testing.T) {
	svc := newTestUsersService(t)

	user, err := svc.AddUser(model.User{Name: "Ann"})
	require.NoError(t, err)

	// 元数据服务返回的片名可以数字开头，入库不做二次校验
	movie, err := svc.AddUserMovie(user.ID, model.Movie{
		Name:   "2001: A Space Odyssey",
		Year:   1968,
		Rating: 8.3,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, movie.MovieID)

	got, err := svc.GetUserMovie(user.ID, movie.MovieID)
	require.NoError(t, err)
	assert.Equal(t, "2001: A Space Odyssey", got.Name)
}

func TestAddUserMovieUserMissing(t *testing.T) {
	svc := newTestUsersService(t)

	_, err := svc.AddUserMovie(42, model.Movie{Name: "Inception"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateUserMoviePatchMerge(t *testing.T) {
	svc := newTestUsersService(t)

	user, err := svc.AddUser(model.User{Name: "Ann"})
	require.NoError(t, err)
	movie, err := svc.AddUserMovie(user.ID, model.Movie{
		Name:     "Inception",
		Director: "Christopher Nolan",
		Year:     2010,
		Rating:   8.8,
	})
	require.NoError(t, err)

	rating := 9.1
	require.NoError(t, svc.UpdateUserMovie(user.ID, movie.MovieID, MoviePatch{Rating: &rating}))

	got, err := svc.GetUserMovie(user.ID, movie.MovieID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Name)
	assert.Equal(t, "Christopher Nolan", got.Director)
	assert.Equal(t, 2010, got.Year)
	assert.Equal(t, 9.1, got.Rating)
}

func TestUpdateUserMovieNotFound(t *testing.T) {
	svc := newTestUsersService(t)

	user, err := svc.AddUser(model.User{Name: "Ann"})
	require.NoError(t, err)

	name := "Arrival"
	assert.ErrorIs(t, svc.UpdateUserMovie(user.ID, 5, MoviePatch{Name: &name}), repository.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateUserMovie(99, 1, MoviePatch{Name: &name}), repository.ErrNotFound)
}

func TestDeleteUserMovieIdempotence(t *testing.T) {
	svc := newTestUsersService(t)

	user, err := svc.AddUser(model.User{Name: "Ann"})
	require.NoError(t, err)
	movie, err := svc.AddUserMovie(user.ID, model.Movie{Name: "Inception"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUserMovie(user.ID, movie.MovieID))
	// 第二次删除同一对 (user_id, movie_id)：报未找到，而不是崩溃或静默成功
	assert.ErrorIs(t, svc.DeleteUserMovie(user.ID, movie.MovieID), repository.ErrNotFound)
}
