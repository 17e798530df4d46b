package test

import (
	"fmt"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
)

var userSeq int

// NewUser 造一个用户，密码字段不参与这些测试
func NewUser(t *testing.T, nickName string) model.User {
	userSeq++
	user := model.User{
		Email:    fmt.Sprintf("%s-%d@example.com", nickName, userSeq),
		Password: "x",
		NickName: nickName,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

// NewTeam 建团队，owner 自动成为 lead，其余为普通成员
func NewTeam(t *testing.T, owner model.User, members ...model.User) model.Team {
	team := model.Team{Name: "team-" + owner.NickName, OwnerID: owner.ID}
	require.NoError(t, database.DB.Create(&team).Error)
	require.NoError(t, database.DB.Create(&model.TeamMember{
		TeamID: team.ID, UserID: owner.ID, Role: model.TeamRoleLead,
	}).Error)
	for _, m := range members {
		require.NoError(t, database.DB.Create(&model.TeamMember{
			TeamID: team.ID, UserID: m.ID, Role: model.TeamRoleMember,
		}).Error)
	}
	return team
}

// NewTemplate 建一个两栏模板
func NewTemplate(t *testing.T) model.Template {
	template := model.Template{
		Name: fmt.Sprintf("tpl-%d", userSeq),
		Columns: []model.TemplateColumn{
			{Name: "Liked", Order: 1},
			{Name: "Lacked", Order: 2},
		},
	}
	userSeq++
	require.NoError(t, database.DB.Create(&template).Error)
	return template
}

// RetroConfig NewRetro 的可调参数
type RetroConfig struct {
	VoteType        string
	MaxVotesPerUser int
	IsAnonymous     bool
	TimerDuration   int
}

// NewRetro 建回顾会（draft），creator 自动入会
func NewRetro(t *testing.T, team model.Team, template model.Template, creator model.User, cfg RetroConfig) model.Retro {
	if cfg.VoteType == "" {
		cfg.VoteType = model.VoteTypeMulti
	}
	if cfg.MaxVotesPerUser == 0 {
		cfg.MaxVotesPerUser = 3
	}
	retro := model.Retro{
		Name:            "retro-" + creator.NickName,
		TeamID:          team.ID,
		TemplateID:      template.ID,
		CreatorID:       creator.ID,
		Status:          model.StatusDraft,
		IsAnonymous:     cfg.IsAnonymous,
		VoteType:        cfg.VoteType,
		MaxVotesPerUser: cfg.MaxVotesPerUser,
		TimerDuration:   cfg.TimerDuration,
	}
	require.NoError(t, database.DB.Create(&retro).Error)
	require.NoError(t, database.DB.Create(&model.Participant{
		RetroID: retro.ID, UserID: creator.ID,
	}).Error)
	return retro
}

// SetStatus 测试里直接把回顾会拨到目标阶段
func SetStatus(t *testing.T, retro *model.Retro, status model.RetroStatus) {
	require.NoError(t, database.DB.Model(&model.Retro{}).
		Where("id = ?", retro.ID).
		Update("status", status).Error)
	retro.Status = status
}

// NewCard 直接落一张卡片
func NewCard(t *testing.T, retro model.Retro, columnID uint, author model.User, content string) model.Card {
	card := model.Card{
		RetroID:  retro.ID,
		ColumnID: columnID,
		AuthorID: author.ID,
		Content:  content,
	}
	require.NoError(t, database.DB.Create(&card).Error)
	return card
}

// Claims 模拟该用户通过认证后的载荷
func Claims(user model.User) *jwt.Claims {
	return &jwt.Claims{Payload: jwt.Payload{UserID: user.ID, RoleID: user.RoleID}}
}
