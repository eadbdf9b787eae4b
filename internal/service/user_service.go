package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/model"
	"github.com/miqu3iasg/cmj/internal/repository"
)

// ── 用户模块业务错误 ──

var (
	ErrForbiddenOperation = errors.New("无权执行该操作")
	ErrCannotDeleteSelf   = errors.New("不能删除自己的账号")
)

// UserService 用户业务接口
type UserService interface {
	List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (*dto.UserDetailResponse, error)
	// Update 仅 admin 或本人可修改（callerID/callerRole 在 Service 层鉴权）
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest, callerID, callerRole string) (*dto.UserResponse, error)
	Delete(ctx context.Context, id, callerID string) error
	GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userID string, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, req.Role, req.Keyword, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, total, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserDetailResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	return &dto.UserDetailResponse{
		UserResponse: toUserResponse(user),
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest, callerID, callerRole string) (*dto.UserResponse, error) {
	if callerID != id && callerRole != "admin" {
		return nil, ErrForbiddenOperation
	}

	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Course != nil {
		user.Course = *req.Course
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id, callerID string) error {
	if id == callerID {
		return ErrCannotDeleteSelf
	}

	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	return s.repo.User.Delete(ctx, id)
}

func (s *userService) GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 从未保存过设置的用户返回默认值
			return defaultSettingsResponse(), nil
		}
		s.logger.Error("查询用户设置失败", zap.Error(err))
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (s *userService) UpdateSettings(ctx context.Context, userID string, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.repo.Settings.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询用户设置失败", zap.Error(err))
			return nil, err
		}
		settings = defaultSettings(userID)
	}

	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		settings.PushNotifications = *req.PushNotifications
	}
	if req.ClassReminders != nil {
		settings.ClassReminders = *req.ClassReminders
	}
	if req.MenuUpdates != nil {
		settings.MenuUpdates = *req.MenuUpdates
	}

	if err := s.repo.Settings.Upsert(ctx, settings); err != nil {
		s.logger.Error("保存用户设置失败", zap.Error(err))
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// defaultSettings 新用户的默认偏好
func defaultSettings(userID string) *model.UserSettings {
	return &model.UserSettings{
		UserID:             userID,
		Theme:              "dark",
		Language:           "pt-BR",
		EmailNotifications: true,
		PushNotifications:  true,
		ClassReminders:     true,
		MenuUpdates:        false,
	}
}

func defaultSettingsResponse() *dto.SettingsResponse {
	return toSettingsResponse(defaultSettings(""))
}

func toSettingsResponse(s *model.UserSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Theme:              s.Theme,
		Language:           s.Language,
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		ClassReminders:     s.ClassReminders,
		MenuUpdates:        s.MenuUpdates,
	}
}
