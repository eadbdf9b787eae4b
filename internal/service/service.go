package service

import (
	"go.uber.org/zap"

	"github.com/miqu3iasg/cmj/config"
	"github.com/miqu3iasg/cmj/internal/repository"
	"github.com/miqu3iasg/cmj/pkg/jwt"
	"github.com/miqu3iasg/cmj/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth     AuthService
	User     UserService
	Schedule ScheduleService
	Campus   CampusService
	Export   ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Schedule: NewScheduleService(cfg, repo, logger),
		Campus:   NewCampusService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
