package service

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/user/movieflix/internal/config"
	"github.com/user/movieflix/internal/model"
	"github.com/user/movieflix/internal/utils"
)

// OMDbService 电影元数据查询服务
// 上游挂掉不能阻塞录入流程：任何网络/解析失败都降级为
// 只有片名的记录，绝不向调用方抛错
type OMDbService struct {
	config *config.Config
	client *utils.HTTPClient
	group  singleflight.Group
	hits   *utils.SearchCache[model.Movie]
}

// failureCacheTTL 失败结果的短暂负缓存，避免上游不可用时反复打点
const failureCacheTTL = 30 * time.Second

// NewOMDbService 创建元数据查询服务
func NewOMDbService(cfg *config.Config) *OMDbService {
	return &OMDbService{
		config: cfg,
		client: utils.NewHTTPClient(cfg.OMDbTimeout),
		hits:   utils.NewSearchCache[model.Movie](256, time.Hour),
	}
}

// omdbResponse OMDb 接口的响应字段（只取需要的部分）
type omdbResponse struct {
	Title      string `json:"Title"`
	Director   string `json:"Director"`
	Year       string `json:"Year"`
	ImdbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	ImdbID     string `json:"imdbID"`
}

// Fetch 按片名查询元数据并映射成电影记录
// 同名并发查询用 singleflight 合并，命中结果缓存一小时
func (s *OMDbService) Fetch(title string) model.Movie {
	key := strings.ToLower(strings.TrimSpace(title))

	if movie, ok := s.hits.Get(key); ok {
		return movie
	}
	if _, failed := utils.CacheGet("omdb:fail:" + key); failed {
		return fallbackMovie(title)
	}

	val, _, _ := s.group.Do(key, func() (interface{}, error) {
		return s.fetch(key, title), nil
	})
	return val.(model.Movie)
}

func (s *OMDbService) fetch(key, title string) model.Movie {
	requestURL := fmt.Sprintf("%s/?apikey=%s&t=%s",
		s.config.OMDbBaseURL, s.config.OMDbAPIKey, url.QueryEscape(title))

	var resp omdbResponse
	if err := s.client.GetJSON(requestURL, &resp); err != nil {
		log.Printf("[OMDb] 查询失败 (title: %s): %v", title, err)
		utils.CacheSet("omdb:fail:"+key, true, failureCacheTTL)
		return fallbackMovie(title)
	}

	movie := s.mapResponse(resp, title)
	s.hits.Set(key, movie)
	return movie
}

// mapResponse 把 OMDb 响应转换成电影记录，缺失字段取零值
func (s *OMDbService) mapResponse(resp omdbResponse, title string) model.Movie {
	movie := model.Movie{
		Name:     resp.Title,
		Director: resp.Director,
		Poster:   resp.Poster,
	}
	if movie.Name == "" {
		movie.Name = title
	}

	// 年份字段可能是 "2010–2013" 这类区间，只取前四位
	if len(resp.Year) >= 4 {
		if year, err := strconv.Atoi(resp.Year[:4]); err == nil {
			movie.Year = year
		}
	}
	if rating, err := strconv.ParseFloat(resp.ImdbRating, 64); err == nil {
		movie.Rating = rating
	}
	if resp.ImdbID != "" {
		movie.Website = s.config.IMDbBaseURL + resp.ImdbID
	}
	return movie
}

// fallbackMovie 降级记录：只保留查询片名，其余字段零值
func fallbackMovie(title string) model.Movie {
	return model.Movie{Name: title}
}
