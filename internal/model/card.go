package model

type Card struct {
	Model
	RetroID  uint   `gorm:"not null;index" json:"retro_id"`
	ColumnID uint   `gorm:"not null;index" json:"column_id"` // 必须属于该回顾会模板
	AuthorID uint   `gorm:"not null" json:"-"`               // 始终落库，读取时按匿名规则投影
	Content  string `gorm:"type:varchar(255);not null" json:"content"`
}
