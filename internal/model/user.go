package model

type User struct {
	Model
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID   int    `gorm:"default:0;not null" json:"role_id"` // 0 普通成员  1 组织管理员
	NickName string `gorm:"type:varchar(50);not null" json:"nick_name"`
	Avatar   string `gorm:"type:varchar(255);" json:"avatar"`
}
