package model

// User 用户模型，整份数据集就是一组 User 记录
// 持久化形态（JSON 字段名）是兼容契约，不要随意改动
type User struct {
	ID     int       `json:"id" gorm:"primaryKey"`
	Name   string    `json:"name"`
	Movies MovieList `json:"movies" gorm:"type:jsonb"`
}

// RecordID 返回用户的全局唯一标识
func (u User) RecordID() int {
	return u.ID
}
