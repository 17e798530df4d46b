package retro

import (
	"fmt"
	"team-retro-system/internal/global/authz"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportRow excel tag 即表头
type exportRow struct {
	Column    string `excel:"栏目"`
	Content   string `excel:"内容"`
	VoteCount int    `excel:"票数"`
	Author    string `excel:"作者"`
	Comments  int    `excel:"评论数"`
}

// ExportRetro 导出已完成回顾会的卡片汇总（xlsx），仅限创建者或团队 lead。
// 匿名会的作者列同样按匿名规则输出。
func ExportRetro(c *gin.Context) {
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
		response.Fail(c, response.ErrForbidden.WithTips("只有创建者或团队 lead 可以导出"))
		return
	}
	if retro.Status != model.StatusCompleted {
		response.Fail(c, response.RequirePhase(model.StatusCompleted))
		return
	}

	view, buildErr := buildView(retro, payload.UserID)
	if buildErr != nil {
		response.Fail(c, buildErr)
		return
	}

	rows := make([]exportRow, 0)
	for _, column := range view.Columns {
		for _, card := range column.Cards {
			author := card.Author.NickName
			if retro.IsAnonymous {
				author = AnonymousName
			}
			rows = append(rows, exportRow{
				Column:    column.Name,
				Content:   card.Content,
				VoteCount: card.VoteCount,
				Author:    author,
				Comments:  len(card.Comments),
			})
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, retro.Name, rows); err != nil {
		log.Error("导出回顾会失败", "error", err, "retro_id", retro.ID)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	tools.SetAttachmentHeaders(c, fmt.Sprintf("retro-%d.xlsx", retro.ID), tools.ExcelContentType)
	if err := f.Write(c.Writer); err != nil {
		log.Error("写出导出文件失败", "error", err, "retro_id", retro.ID)
	}
}
