package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/miqu3iasg/cmj/internal/model"
)

// CampusRepository 校园地点与班车时刻数据访问接口
type CampusRepository interface {
	ListLocations(ctx context.Context, locType string) ([]model.CampusLocation, error)
	GetLocation(ctx context.Context, id string) (*model.CampusLocation, error)
	ListBusStops(ctx context.Context) ([]model.CampusLocation, error)
	// ListDeparturesByStop 返回某站点的发车时刻，按时间升序
	ListDeparturesByStop(ctx context.Context, stopID string) ([]model.BusDeparture, error)
}

type campusRepo struct {
	db *gorm.DB
}

// NewCampusRepo 创建 CampusRepository 实例
func NewCampusRepo(db *gorm.DB) CampusRepository {
	return &campusRepo{db: db}
}

func (r *campusRepo) ListLocations(ctx context.Context, locType string) ([]model.CampusLocation, error) {
	query := r.db.WithContext(ctx).Where("is_active = true")
	if locType != "" {
		query = query.Where("type = ?", locType)
	}

	var locations []model.CampusLocation
	err := query.Order("location_id ASC").Find(&locations).Error
	return locations, err
}

func (r *campusRepo) GetLocation(ctx context.Context, id string) (*model.CampusLocation, error) {
	var location model.CampusLocation
	err := r.db.WithContext(ctx).
		Where("location_id = ?", id).
		First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *campusRepo) ListBusStops(ctx context.Context) ([]model.CampusLocation, error) {
	var stops []model.CampusLocation
	err := r.db.WithContext(ctx).
		Where("is_bus_stop = true AND is_active = true").
		Order("location_id ASC").
		Find(&stops).Error
	return stops, err
}

func (r *campusRepo) ListDeparturesByStop(ctx context.Context, stopID string) ([]model.BusDeparture, error) {
	var departures []model.BusDeparture
	err := r.db.WithContext(ctx).
		Where("stop_id = ?", stopID).
		Order("depart_min ASC").
		Find(&departures).Error
	return departures, err
}
