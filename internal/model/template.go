package model

type Template struct {
	Model
	Name        string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string           `gorm:"type:varchar(255);" json:"description"`
	IsBuiltIn   bool             `gorm:"default:false;not null" json:"is_built_in"`
	Columns     []TemplateColumn `gorm:"foreignKey:TemplateID;references:ID" json:"columns"`
}

// TemplateColumn 模板栏目，order 在模板内唯一
type TemplateColumn struct {
	Model
	TemplateID uint   `gorm:"not null;index:idx_template_order,unique" json:"template_id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Emoji      string `gorm:"type:varchar(16);" json:"emoji"`
	Prompt     string `gorm:"type:varchar(255);" json:"prompt"`
	Order      int    `gorm:"column:sort_order;not null;index:idx_template_order,unique" json:"order"`
}
