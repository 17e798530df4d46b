package retro

import (
	"strconv"
	"team-retro-system/internal/global/authz"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateRetroRequest struct {
	Name            string `json:"name" binding:"required"`
	TeamID          uint   `json:"team_id" binding:"required"`
	TemplateID      uint   `json:"template_id" binding:"required"`
	IsAnonymous     bool   `json:"is_anonymous"`
	VoteType        string `json:"vote_type" binding:"required"`
	MaxVotesPerUser int    `json:"max_votes_per_user"`
	TimerDuration   int    `json:"timer_duration"` // 秒，0 表示不计时
}

// CreateRetro 创建回顾会，配置创建后不可修改
func CreateRetro(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateRetroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建回顾会请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	switch req.VoteType {
	case model.VoteTypeSingle:
		req.MaxVotesPerUser = 1
	case model.VoteTypeMulti:
		if req.MaxVotesPerUser < 1 {
			response.Fail(c, response.ErrInvalidRequest.WithTips("multi 模式下 max_votes_per_user 至少为 1"))
			return
		}
	default:
		response.Fail(c, response.ErrInvalidRequest.WithTips("vote_type 只能是 single 或 multi"))
		return
	}
	if req.TimerDuration < 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("timer_duration 不能为负"))
		return
	}

	if member, err := authz.IsTeamMember(req.TeamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !member {
		response.Fail(c, response.ErrForbidden.WithTips("不是该团队成员"))
		return
	}

	// 模板必须存在且带栏目
	var columnCount int64
	if err := database.DB.Model(&model.TemplateColumn{}).
		Where("template_id = ?", req.TemplateID).Count(&columnCount).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if columnCount == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("模板不存在"))
		return
	}

	retro := model.Retro{
		Name:            req.Name,
		TeamID:          req.TeamID,
		TemplateID:      req.TemplateID,
		CreatorID:       payload.UserID,
		Status:          model.StatusDraft,
		IsAnonymous:     req.IsAnonymous,
		VoteType:        req.VoteType,
		MaxVotesPerUser: req.MaxVotesPerUser,
		TimerDuration:   req.TimerDuration,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&retro).Error; err != nil {
			return err
		}
		// 创建者自动成为参与者
		return tx.Create(&model.Participant{
			RetroID: retro.ID,
			UserID:  payload.UserID,
		}).Error
	})
	if err != nil {
		log.Error("创建回顾会失败", "error", err, "team_id", req.TeamID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("回顾会已创建", "retro_id", retro.ID, "creator_id", payload.UserID)
	response.Success(c, retro)
}

// JoinRetro 加入回顾会，幂等：重复加入不报错，任何阶段都允许
func JoinRetro(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	retro, err := Load(c.Param("retro_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	if member, err := authz.IsTeamMember(retro.TeamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !member {
		response.Fail(c, response.ErrForbidden.WithTips("不是该团队成员"))
		return
	}

	participant := model.Participant{
		RetroID: retro.ID,
		UserID:  payload.UserID,
	}
	if err := database.DB.Create(&participant).Error; err != nil {
		// 唯一索引兜底，重复加入视为成功
		if !database.IsDuplicateErr(err) {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}
	response.Success(c)
}

// Load 解析路径参数并加载回顾会
func Load(raw string) (*model.Retro, error) {
	if raw == "" {
		return nil, response.ErrInvalidRequest
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil, response.ErrInvalidRequest
	}
	return LoadByID(uint(id))
}

// LoadByID 供卡片/投票/评论模块复用
func LoadByID(id uint) (*model.Retro, error) {
	var retro model.Retro
	if err := database.DB.First(&retro, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound.WithTips("回顾会不存在")
		}
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	return &retro, nil
}
