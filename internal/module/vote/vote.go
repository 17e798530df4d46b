package vote

import (
	"strconv"
	"team-retro-system/internal/global/authz"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/internal/module/retro"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddVote 给卡片投票，仅限 voting 阶段，受单人额度约束。
// 票数永远是实时 COUNT，不走冗余计数器。
func AddVote(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	card, r, err := loadCardWithRetro(c.Query("card_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := retro.RequirePhase(r, model.StatusVoting); err != nil {
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

	// 配额检查到插入必须对同一 (retro, user) 原子
	release := lockVoter(r.ID, payload.UserID)
	defer release()

	quota := int64(r.MaxVotesPerUser)
	if r.VoteType == model.VoteTypeSingle {
		quota = 1
	}

	var cardCount, used int64
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var exist bool
		if err := tx.
			Raw("SELECT EXISTS(SELECT 1 FROM vote WHERE card_id = ? AND user_id = ?)",
				card.ID, payload.UserID).
			Scan(&exist).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		if exist {
			return response.ErrAlreadyVoted
		}

		if err := tx.Model(&model.Vote{}).
			Where("retro_id = ? AND user_id = ?", r.ID, payload.UserID).
			Count(&used).Error; err != nil {
			return response.ErrDatabase.WithOrigin(err)
		}
		if used >= quota {
			return response.ErrQuotaExceeded
		}

		vote := model.Vote{
			RetroID: r.ID,
			CardID:  card.ID,
			UserID:  payload.UserID,
		}
		if err := tx.Create(&vote).Error; err != nil {
			if database.IsDuplicateErr(err) {
				return response.ErrAlreadyVoted
			}
			return response.ErrDatabase.WithOrigin(err)
		}
		used++

		return tx.Model(&model.Vote{}).
			Where("card_id = ?", card.ID).
			Count(&cardCount).Error
	})
	if txErr != nil {
		response.Fail(c, txErr)
		return
	}

	response.Success(c, gin.H{
		"card_id":         card.ID,
		"vote_count":      cardCount,
		"votes_remaining": quota - used,
	})
}

// RemoveVote 撤回自己的票，仅限 voting 阶段
func RemoveVote(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	card, r, err := loadCardWithRetro(c.Query("card_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := retro.RequirePhase(r, model.StatusVoting); err != nil {
		response.Fail(c, err)
		return
	}

	result := database.DB.
		Where("card_id = ? AND user_id = ?", card.ID, payload.UserID).
		Delete(&model.Vote{})
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotVoted)
		return
	}

	var cardCount, used int64
	if err := database.DB.Model(&model.Vote{}).
		Where("card_id = ?", card.ID).
		Count(&cardCount).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if err := database.DB.Model(&model.Vote{}).
		Where("retro_id = ? AND user_id = ?", r.ID, payload.UserID).
		Count(&used).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	quota := int64(r.MaxVotesPerUser)
	if r.VoteType == model.VoteTypeSingle {
		quota = 1
	}
	response.Success(c, gin.H{
		"card_id":         card.ID,
		"vote_count":      cardCount,
		"votes_remaining": quota - used,
	})
}

func loadCardWithRetro(cardIDStr string) (*model.Card, *model.Retro, error) {
	if cardIDStr == "" {
		return nil, nil, response.ErrInvalidRequest
	}
	cardID, err := strconv.ParseUint(cardIDStr, 10, 0)
	if err != nil {
		return nil, nil, response.ErrInvalidRequest
	}
	var card model.Card
	if err := database.DB.First(&card, uint(cardID)).Error; err != nil {
		return nil, nil, response.ErrNotFound.WithTips("卡片不存在")
	}
	r, loadErr := retro.LoadByID(card.RetroID)
	if loadErr != nil {
		return nil, nil, loadErr
	}
	return &card, r, nil
}
