package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Movie 电影记录，内嵌在用户的观影清单里
// movie_id 只在所属用户的清单内唯一，不同用户可以各自有 movie_id = 1
type Movie struct {
	MovieID  int     `json:"movie_id"`
	Name     string  `json:"name"`
	Director string  `json:"director"`
	Year     int     `json:"year"`
	Rating   float64 `json:"rating"`
	Poster   string  `json:"poster"`
	Website  string  `json:"website"`
}

// RecordID 返回电影在清单内的标识
func (m Movie) RecordID() int {
	return m.MovieID
}

// MovieList 用户的观影清单，可整体存入 jsonb 列
type MovieList []Movie

// Value 实现 driver.Valuer，序列化为 JSON 写入数据库
func (l MovieList) Value() (driver.Value, error) {
	if l == nil {
		l = MovieList{}
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner，从 jsonb 列读出清单
func (l *MovieList) Scan(value interface{}) error {
	if value == nil {
		*l = MovieList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("不支持的 movies 列类型: %T", value)
	}
}
