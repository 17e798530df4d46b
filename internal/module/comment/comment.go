package comment

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

type CreateCommentRequest struct {
	CardID  uint   `json:"card_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateComment 在卡片下发表评论，仅限 discussing 阶段
func CreateComment(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建评论请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("内容不能为空"))
		return
	}
	if len([]rune(req.Content)) > config.Get().Retro.MaxContentLength {
		response.Fail(c, response.ErrInvalidRequest.WithTips("内容过长"))
		return
	}

	var card model.Card
	if err := database.DB.First(&card, req.CardID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("卡片不存在"))
		return
	}
	r, err := retro.LoadByID(card.RetroID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := retro.RequirePhase(r, model.StatusDiscussing); err != nil {
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

	comment := model.Comment{
		CardID:   card.ID,
		AuthorID: payload.UserID,
		Content:  req.Content,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		log.Error("创建评论失败", "error", err, "card_id", card.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除自己的评论，仅限 discussing 阶段。
// lead/管理员代删在产品确认前先不放开。
func DeleteComment(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	commentID := c.Param("id")
	if commentID == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("评论ID不能为空"))
		return
	}

	var comment model.Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("评论不存在"))
		return
	}

	var card model.Card
	if err := database.DB.First(&card, comment.CardID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("卡片不存在"))
		return
	}
	r, err := retro.LoadByID(card.RetroID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := retro.RequirePhase(r, model.StatusDiscussing); err != nil {
		response.Fail(c, err)
		return
	}
	if comment.AuthorID != payload.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("只能删除自己的评论"))
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
