package service

import (
	"context"
	"net/http"
	"time"

	"Donghwa/config"
	"Donghwa/dao"
	"Donghwa/pkg/jwt"
	"Donghwa/pkg/response"
	"Donghwa/types"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.AdminLoginRequest) (*types.AdminLoginResponse, error)
}

type AuthService struct {
	AdminDAO *dao.AdminDAO
	Config   *config.Config
}

func (s *AuthService) Login(ctx context.Context, req *types.AdminLoginRequest) (*types.AdminLoginResponse, error) {
	admin, err := s.AdminDAO.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	// 账号不存在和密码错误同一个文案，不泄露存在性
	if admin == nil {
		return nil, response.NewError(http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, response.NewError(http.StatusUnauthorized, "아이디 또는 비밀번호가 올바르지 않습니다")
	}

	expire := time.Duration(s.Config.Jwt.ExpiresHour) * time.Hour
	if expire <= 0 {
		expire = 12 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), admin.ID, admin.Username, "access", expire)
	if err != nil {
		return nil, err
	}

	return &types.AdminLoginResponse{Token: token, Username: admin.Username}, nil
}
