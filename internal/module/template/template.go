package template

import (
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListTemplates 返回全部模板及其有序栏目
func ListTemplates(c *gin.Context) {
	var templates []model.Template
	err := database.DB.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("id ASC").
		Find(&templates).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, templates)
}

type ColumnRequest struct {
	Name   string `json:"name" binding:"required"`
	Emoji  string `json:"emoji" binding:"omitempty"`
	Prompt string `json:"prompt" binding:"omitempty"`
	Order  int    `json:"order" binding:"required"`
}

type CreateTemplateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"omitempty"`
	Columns     []ColumnRequest `json:"columns" binding:"required,min=1"`
}

// CreateTemplate 组织管理员创建自定义模板
func CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定建模板请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// order 模板内唯一
	seen := make(map[int]bool, len(req.Columns))
	for _, col := range req.Columns {
		if seen[col.Order] {
			response.Fail(c, response.ErrInvalidRequest.WithTips("栏目 order 重复"))
			return
		}
		seen[col.Order] = true
	}

	template := model.Template{
		Name:        req.Name,
		Description: req.Description,
		IsBuiltIn:   false,
	}
	for _, col := range req.Columns {
		template.Columns = append(template.Columns, model.TemplateColumn{
			Name:   col.Name,
			Emoji:  col.Emoji,
			Prompt: col.Prompt,
			Order:  col.Order,
		})
	}

	if err := database.DB.Create(&template).Error; err != nil {
		log.Error("创建模板失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, template)
}
