package model

type Comment struct {
	Model
	CardID   uint   `gorm:"not null;index" json:"card_id"`
	AuthorID uint   `gorm:"not null" json:"-"`
	Content  string `gorm:"type:varchar(255);not null" json:"content"`
}
