package retro

import (
	"team-retro-system/internal/global/authz"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"time"

	"github.com/gin-gonic/gin"
)

// StartRetro draft -> active，配置了计时则写入截止时间
func StartRetro(c *gin.Context) {
	advance(c, model.StatusDraft)
}

// MoveToVoting active -> voting，清空计时（投票阶段无倒计时）
func MoveToVoting(c *gin.Context) {
	advance(c, model.StatusActive)
}

// MoveToDiscussion voting -> discussing
func MoveToDiscussion(c *gin.Context) {
	advance(c, model.StatusVoting)
}

// CompleteRetro discussing -> completed
func CompleteRetro(c *gin.Context) {
	advance(c, model.StatusDiscussing)
}

// advance 推进阶段。状态只能沿固定顺序前进一格；
// 用 UPDATE ... WHERE status = from 的条件更新保证并发下同一条边只被走一次。
func advance(c *gin.Context, from model.RetroStatus) {
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

	if allowed, err := authz.CanControlRetro(retro, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !allowed {
		response.Fail(c, response.ErrForbidden.WithTips("只有创建者或团队 lead 可以推进阶段"))
		return
	}

	to, ok := from.Next()
	if !ok || retro.Status != from {
		response.Fail(c, response.ErrInvalidTransition.WithTips(
			"当前阶段为 "+retro.Status.String()))
		return
	}

	updates := map[string]any{"status": to}
	switch to {
	case model.StatusActive:
		if retro.TimerDuration > 0 {
			endsAt := time.Now().Add(time.Duration(retro.TimerDuration) * time.Second)
			updates["timer_ends_at"] = &endsAt
		}
	case model.StatusVoting:
		updates["timer_ends_at"] = nil
	}

	result := database.DB.Model(&model.Retro{}).
		Where("id = ? AND status = ?", retro.ID, from).
		Updates(updates)
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		// 并发推进时后到的一方在这里失败
		response.Fail(c, response.ErrInvalidTransition.WithTips("阶段已被其他请求推进"))
		return
	}

	log.Info("阶段已推进",
		"retro_id", retro.ID,
		"from", from.String(),
		"to", to.String(),
		"operator", payload.UserID)
	response.Success(c, gin.H{"status": to.String()})
}

// RequirePhase 校验回顾会处于指定阶段，供卡片/投票/评论模块复用
func RequirePhase(retro *model.Retro, phase model.RetroStatus) error {
	if retro.Status != phase {
		return response.RequirePhase(phase)
	}
	return nil
}
