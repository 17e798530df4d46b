package card

import (
	"strings"
	"team-retro-system/config"
	"team-retro-system/internal/global/authz"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/internal/module/retro"

	"github.com/gin-gonic/gin"
)

type CreateCardRequest struct {
	RetroID  uint   `json:"retro_id" binding:"required"`
	ColumnID uint   `json:"column_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// CreateCard 提交反馈卡片，仅限 active 阶段
func CreateCard(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建卡片请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	maxLen := config.Get().Retro.MaxContentLength
	if req.Content == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("内容不能为空"))
		return
	}
	if len([]rune(req.Content)) > maxLen {
		response.Fail(c, response.ErrInvalidRequest.WithTips("内容过长"))
		return
	}

	r, err := retro.LoadByID(req.RetroID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := retro.RequirePhase(r, model.StatusActive); err != nil {
		response.Fail(c, err)
		return
	}

	if member, err := authz.IsTeamMember(r.TeamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !member {
		response.Fail(c, response.ErrForbidden.WithTips("不是该团队成员"))
		return
	}

	// 栏目必须属于该回顾会的模板
	var columnExist bool
	err = database.DB.
		Raw("SELECT EXISTS(SELECT 1 FROM template_column WHERE id = ? AND template_id = ?)",
			req.ColumnID, r.TemplateID).
		Scan(&columnExist).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !columnExist {
		response.Fail(c, response.ErrInvalidRequest.WithTips("栏目不属于该回顾会"))
		return
	}

	card := model.Card{
		RetroID:  r.ID,
		ColumnID: req.ColumnID,
		AuthorID: payload.UserID,
		Content:  req.Content,
	}
	if err := database.DB.Create(&card).Error; err != nil {
		log.Error("创建卡片失败", "error", err, "retro_id", r.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, card)
}

// DeleteCard 删除自己的卡片，仅限 active 阶段
func DeleteCard(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	cardID := c.Param("id")
	if cardID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("卡片ID不能为空"))
		return
	}

	var card model.Card
	if err := database.DB.First(&card, "id = ?", cardID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("卡片不存在"))
		return
	}

	r, err := retro.LoadByID(card.RetroID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := retro.RequirePhase(r, model.StatusActive); err != nil {
		response.Fail(c, err)
		return
	}
	if card.AuthorID != payload.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("只能删除自己的卡片"))
		return
	}

	if err := database.DB.Delete(&card).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
