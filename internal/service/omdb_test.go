package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/user/movieflix/internal/config"
	"github.com/user/movieflix/internal/model"
	"github.com/user/movieflix/internal/utils"
)

func newOMDbConfig(baseURL string) *config.Config {
	return &config.Config{
		OMDbAPIKey:  "test-key",
		OMDbBaseURL: baseURL,
		IMDbBaseURL: "https://www.imdb.com/title/",
		OMDbTimeout: 2 * time.Second,
	}
}

func TestOMDbFetchMapsResponse(t *testing.T) {
	utils.InitCache()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "Inception", r.URL.Query().Get("t"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Title": "Inception",
			"Director": "Christopher Nolan",
			"Year": "2010",
			"imdbRating": "8.8",
			"Poster": "https://example.com/inception.jpg",
			"imdbID": "tt1375666"
		}`))
	}))
	defer srv.Close()

	svc := NewOMDbService(newOMDbConfig(srv.URL))
	movie := svc.Fetch("Inception")

	assert.Equal(t, model.Movie{
		Name:     "Inception",
		Director: "Christopher Nolan",
		Year:     2010,
		Rating:   8.8,
		Poster:   "https://example.com/inception.jpg",
		Website:  "https://www.imdb.com/title/tt1375666",
	}, movie)
}

func TestOMDbFetchDegradedFields(t *testing.T) {
	utils.InitCache()

	// 剧集年份是区间，评分可能是 N/A，缺失字段取零值
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Title": "Sherlock", "Year": "2010-2017", "imdbRating": "N/A"}`))
	}))
	defer srv.Close()

	svc := NewOMDbService(newOMDbConfig(srv.URL))
	movie := svc.Fetch("Sherlock")

	assert.Equal(t, "Sherlock", movie.Name)
	assert.Equal(t, 2010, movie.Year)
	assert.Zero(t, movie.Rating)
	assert.Empty(t, movie.Director)
	assert.Empty(t, movie.Website)
}

func TestOMDbFetchTransportFailure(t *testing.T) {
	utils.InitCache()

	// 指向已关闭的端口，模拟连接失败
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := NewOMDbService(newOMDbConfig(srv.URL))
	movie := svc.Fetch("Inception")

	assert.Equal(t, model.Movie{Name: "Inception"}, movie)
}

func TestOMDbFetchHTTPError(t *testing.T) {
	utils.InitCache()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewOMDbService(newOMDbConfig(srv.URL))
	movie := svc.Fetch("Arrival")

	assert.Equal(t, model.Movie{Name: "Arrival"}, movie)
}

func TestOMDbFetchCachesHits(t *testing.T) {
	utils.InitCache()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Title": "Memento", "Year": "2000"}`))
	}))
	defer srv.Close()

	svc := NewOMDbService(newOMDbConfig(srv.URL))
	first := svc.Fetch("Memento")
	second := svc.Fetch("memento")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}
