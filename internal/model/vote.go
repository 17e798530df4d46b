package model

import "time"

// Vote 存在即投票，(card_id, user_id) 唯一；票数永远由行数聚合得出
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	RetroID   uint      `gorm:"not null;index:idx_retro_voter" json:"retro_id"` // 冗余存一份，配额按回顾会统计
	CardID    uint      `gorm:"not null;index:idx_card_voter,unique" json:"card_id"`
	UserID    uint      `gorm:"not null;index:idx_card_voter,unique;index:idx_retro_voter" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
