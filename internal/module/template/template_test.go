package template

import (
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/logger"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/test"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Init 会直接写库，测试里各用例自己控制 SeedBuiltIns 的时机
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log = logger.New("Template")
	m.Run()
}

func TestSeedBuiltInsIdempotent(t *testing.T) {
	test.SetupDB(t)
	require.NoError(t, SeedBuiltIns())
	require.NoError(t, SeedBuiltIns())

	var count int64
	require.NoError(t, database.DB.Model(&model.Template{}).Count(&count).Error)
	require.EqualValues(t, len(builtInTemplates), count)
}

func TestListTemplatesColumnsOrdered(t *testing.T) {
	test.SetupDB(t)
	require.NoError(t, SeedBuiltIns())

	resp := test.Do(t, ListTemplates, test.Request{})
	test.NoError(t, resp)

	var templates []model.Template
	test.DecodeData(t, resp, &templates)
	require.Len(t, templates, len(builtInTemplates))

	for _, template := range templates {
		require.NotEmpty(t, template.Columns)
		for i := 1; i < len(template.Columns); i++ {
			require.Less(t, template.Columns[i-1].Order, template.Columns[i].Order)
		}
	}
}

func TestCreateTemplate(t *testing.T) {
	test.SetupDB(t)

	resp := test.Do(t, CreateTemplate, test.Request{Body: CreateTemplateRequest{
		Name: "自定义",
		Columns: []ColumnRequest{
			{Name: "好的", Order: 1},
			{Name: "坏的", Order: 2},
		},
	}})
	test.NoError(t, resp)

	var created model.Template
	test.DecodeData(t, resp, &created)
	require.NotZero(t, created.ID)
	require.False(t, created.IsBuiltIn)
	require.Len(t, created.Columns, 2)
}

func TestCreateTemplateDuplicateOrder(t *testing.T) {
	test.SetupDB(t)

	resp := test.Do(t, CreateTemplate, test.Request{Body: CreateTemplateRequest{
		Name: "重复",
		Columns: []ColumnRequest{
			{Name: "a", Order: 1},
			{Name: "b", Order: 1},
		},
	}})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestCreateTemplateDuplicateName(t *testing.T) {
	test.SetupDB(t)
	require.NoError(t, SeedBuiltIns())

	resp := test.Do(t, CreateTemplate, test.Request{Body: CreateTemplateRequest{
		Name:    builtInTemplates[0].Name,
		Columns: []ColumnRequest{{Name: "a", Order: 1}},
	}})
	test.ErrorEqual(t, response.ErrDatabase, resp)
}
