package model

import "time"

// RetroStatus 回顾会阶段，只能沿固定顺序前进，不能回退或跳跃
type RetroStatus int

const (
	StatusDraft RetroStatus = iota
	StatusActive
	StatusVoting
	StatusDiscussing
	StatusCompleted
)

func (s RetroStatus) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusActive:
		return "active"
	case StatusVoting:
		return "voting"
	case StatusDiscussing:
		return "discussing"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Next 返回唯一合法的下一个阶段
func (s RetroStatus) Next() (RetroStatus, bool) {
	if s < StatusDraft || s >= StatusCompleted {
		return s, false
	}
	return s + 1, true
}

const (
	VoteTypeSingle = "single"
	VoteTypeMulti  = "multi"
)

type Retro struct {
	Model
	Name            string      `gorm:"type:varchar(100);not null" json:"name"`
	TeamID          uint        `gorm:"not null;index" json:"team_id"`
	TemplateID      uint        `gorm:"not null" json:"template_id"`
	CreatorID       uint        `gorm:"not null" json:"creator_id"`
	Status          RetroStatus `gorm:"default:0;not null" json:"-"`
	IsAnonymous     bool        `gorm:"default:false;not null" json:"is_anonymous"`
	VoteType        string      `gorm:"type:varchar(10);not null" json:"vote_type"`          // single | multi
	MaxVotesPerUser int         `gorm:"default:1;not null" json:"max_votes_per_user"`        // 仅 multi 模式生效
	TimerDuration   int         `gorm:"default:0;not null" json:"timer_duration"`            // 秒，0 表示无计时
	TimerEndsAt     *time.Time  `gorm:"default:null" json:"timer_ends_at"`                   // 进入 active 且配置了计时才写入
	Template        Template    `gorm:"foreignKey:TemplateID;references:ID" json:"template"` // 创建后不可更换
}

// Participant 参与者，(retro_id, user_id) 唯一，首次打开时幂等写入
type Participant struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RetroID  uint      `gorm:"not null;index:idx_retro_user,unique" json:"retro_id"`
	UserID   uint      `gorm:"not null;index:idx_retro_user,unique" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
	User     User      `gorm:"foreignKey:UserID;references:ID" json:"user"`
}
