package model

type Team struct {
	Model
	Name        string `gorm:"type:varchar(100);not null" json:"name"`        // 团队名称
	Description string `gorm:"type:varchar(255);" json:"description"`         // 团队描述
	OwnerID     uint   `gorm:"not null" json:"owner_id"`                      // 创建者，建队时自动成为 lead
	User        User   `gorm:"foreignKey:OwnerID;references:ID" json:"owner"` // 关联到创建者
}

// TeamMember 团队成员，(team_id, user_id) 唯一
type TeamMember struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TeamID uint `gorm:"not null;index:idx_team_user,unique" json:"team_id"`
	UserID uint `gorm:"not null;index:idx_team_user,unique" json:"user_id"`
	Role   int  `gorm:"default:0;not null" json:"role"` // 0 member  1 lead
	User   User `gorm:"foreignKey:UserID;references:ID" json:"user"`
}

const (
	TeamRoleMember = 0
	TeamRoleLead   = 1
)
