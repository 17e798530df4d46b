package template

import (
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/model"

	"gorm.io/gorm"
)

// builtInTemplates 内置模板集合，首次启动时写入
var builtInTemplates = []model.Template{
	{
		Name:        "经典 4L",
		Description: "Liked / Learned / Lacked / Longed for",
		IsBuiltIn:   true,
		Columns: []model.TemplateColumn{
			{Name: "Liked", Emoji: "👍", Prompt: "这个迭代里你喜欢什么？", Order: 1},
			{Name: "Learned", Emoji: "💡", Prompt: "你学到了什么？", Order: 2},
			{Name: "Lacked", Emoji: "🕳️", Prompt: "缺少了什么？", Order: 3},
			{Name: "Longed for", Emoji: "🌟", Prompt: "你期待什么？", Order: 4},
		},
	},
	{
		Name:        "海星",
		Description: "Keep / More / Less / Start / Stop",
		IsBuiltIn:   true,
		Columns: []model.TemplateColumn{
			{Name: "Keep", Emoji: "✅", Prompt: "哪些做法要保持？", Order: 1},
			{Name: "More", Emoji: "➕", Prompt: "哪些要做得更多？", Order: 2},
			{Name: "Less", Emoji: "➖", Prompt: "哪些要减少？", Order: 3},
			{Name: "Start", Emoji: "🚀", Prompt: "要开始做什么？", Order: 4},
			{Name: "Stop", Emoji: "🛑", Prompt: "要停止做什么？", Order: 5},
		},
	},
	{
		Name:        "Mad Sad Glad",
		Description: "按情绪整理这个迭代的感受",
		IsBuiltIn:   true,
		Columns: []model.TemplateColumn{
			{Name: "Mad", Emoji: "😡", Prompt: "什么让你恼火？", Order: 1},
			{Name: "Sad", Emoji: "😢", Prompt: "什么让你失望？", Order: 2},
			{Name: "Glad", Emoji: "😄", Prompt: "什么让你开心？", Order: 3},
		},
	},
}

// SeedBuiltIns 幂等写入内置模板：已有任何模板则不动。
// 存在性检查和插入放在同一事务里，并发的首次请求靠模板名唯一索引兜底。
func SeedBuiltIns() error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Template{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for i := range builtInTemplates {
			t := builtInTemplates[i]
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
