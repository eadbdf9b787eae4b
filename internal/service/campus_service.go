package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/model"
	"github.com/miqu3iasg/cmj/internal/repository"
)

// ── 校园信息模块业务错误 ──

var (
	ErrCampusLocationNotFound = errors.New("校园地点不存在")
	ErrNoBusService           = errors.New("今日无班车服务")
	ErrNoBusStops             = errors.New("暂无可用班车站点")
)

// CampusService 校园信息业务接口
type CampusService interface {
	ListLocations(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error)
	GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error)
	// NextBus 按用户坐标取最近站点的下一班发车时刻；周日停运
	NextBus(ctx context.Context, req *dto.NextBusRequest) (*dto.NextBusResponse, error)
	TodayMenu(ctx context.Context) (*dto.DailyMenuResponse, error)
	WeeklyMenu(ctx context.Context) (*dto.WeeklyMenuResponse, error)
}

type campusService struct {
	repo   *repository.Repository
	logger *zap.Logger
	clock  func() time.Time // 测试中可替换
}

// NewCampusService 创建 CampusService 实例
func NewCampusService(repo *repository.Repository, logger *zap.Logger) CampusService {
	return &campusService{repo: repo, logger: logger, clock: time.Now}
}

func (s *campusService) ListLocations(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Campus.ListLocations(ctx, req.Type)
	if err != nil {
		s.logger.Error("查询校园地点失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, toLocationResponse(&locations[i]))
	}
	return result, nil
}

func (s *campusService) GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := s.repo.Campus.GetLocation(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampusLocationNotFound
		}
		s.logger.Error("查询校园地点失败", zap.Error(err))
		return nil, err
	}

	resp := toLocationResponse(location)
	return &resp, nil
}

// ═══════════════════════════════════════════════════════════
// NextBus — 按最近站点查下一班车
// ═══════════════════════════════════════════════════════════
//
// 算法：
//  1. 周日无班车，直接返回 ErrNoBusService
//  2. 在全部班车站点中取与用户坐标平方距离最小者
//     （站点间距百米级，无需大圆距离）
//  3. 该站点时刻表中取首个晚于当前时刻的发车分钟数
//  4. 今日班次已结束时返回次日首班，并置 Tomorrow 标记

func (s *campusService) NextBus(ctx context.Context, req *dto.NextBusRequest) (*dto.NextBusResponse, error) {
	now := s.clock()
	if now.Weekday() == time.Sunday {
		return nil, ErrNoBusService
	}
	nowMin := now.Hour()*60 + now.Minute()

	stops, err := s.repo.Campus.ListBusStops(ctx)
	if err != nil {
		s.logger.Error("查询班车站点失败", zap.Error(err))
		return nil, err
	}
	if len(stops) == 0 {
		return nil, ErrNoBusStops
	}

	nearest := &stops[0]
	minDist := squaredDistance(req.Lat, req.Lng, nearest.Lat, nearest.Lng)
	for i := 1; i < len(stops); i++ {
		d := squaredDistance(req.Lat, req.Lng, stops[i].Lat, stops[i].Lng)
		if d < minDist {
			minDist = d
			nearest = &stops[i]
		}
	}

	departures, err := s.repo.Campus.ListDeparturesByStop(ctx, nearest.LocationID)
	if err != nil {
		s.logger.Error("查询发车时刻失败", zap.Error(err))
		return nil, err
	}
	if len(departures) == 0 {
		return nil, ErrNoBusService
	}

	for _, d := range departures {
		if d.DepartMin > nowMin {
			return &dto.NextBusResponse{
				StopID:    nearest.LocationID,
				StopName:  nearest.Name,
				DepartMin: d.DepartMin,
				Time:      dto.FormatMinute(d.DepartMin),
			}, nil
		}
	}

	// 今日班次已结束 → 次日首班
	first := departures[0]
	return &dto.NextBusResponse{
		StopID:    nearest.LocationID,
		StopName:  nearest.Name,
		DepartMin: first.DepartMin,
		Time:      dto.FormatMinute(first.DepartMin),
		Tomorrow:  true,
	}, nil
}

func (s *campusService) TodayMenu(ctx context.Context) (*dto.DailyMenuResponse, error) {
	// 周日食堂不开餐，按周一菜单展示
	dayIndex := int(s.clock().Weekday())
	if dayIndex == 0 {
		dayIndex = 1
	}

	for i := range weeklyMenu.Days {
		if weeklyMenu.Days[i].DayIndex == dayIndex {
			return &weeklyMenu.Days[i], nil
		}
	}
	return &weeklyMenu.Days[0], nil
}

func (s *campusService) WeeklyMenu(ctx context.Context) (*dto.WeeklyMenuResponse, error) {
	return &weeklyMenu, nil
}

// squaredDistance 坐标平方距离（仅用于比较大小，不开方）
func squaredDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return dLat*dLat + dLng*dLng
}

func toLocationResponse(l *model.CampusLocation) dto.LocationResponse {
	return dto.LocationResponse{
		ID:          l.LocationID,
		Name:        l.Name,
		Description: l.Description,
		Type:        l.Type,
		Lat:         l.Lat,
		Lng:         l.Lng,
		IsBusStop:   l.IsBusStop,
	}
}
