package user

import (
	"strings"
	"team-retro-system/internal/global/avatar"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	NickName string `json:"nick_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 处理用户注册请求
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if len(req.Password) < 8 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("密码长度至少 8 位"))
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := database.DB.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count > 0 {
		response.Fail(c, response.ErrAlreadyExists.WithTips("邮箱已被注册"))
		return
	}

	hashed, err := tools.PasswordHash(req.Password)
	if err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	user := model.User{
		Email:    req.Email,
		Password: hashed,
		NickName: req.NickName,
		Avatar:   avatar.URLFor(req.NickName),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功", "user_id", user.ID, "email", user.Email)
	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			RoleID: user.RoleID,
		}),
		"user": user,
	})
}

// Login 处理用户登录请求
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "email", req.Email)
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "email", req.Email)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("用户登录成功", "user_id", user.ID)
	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			RoleID: user.RoleID,
		}),
		"user": user,
	})
}

// Me 返回当前登录用户信息
func Me(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		return
	}
	response.Success(c, user)
}
