package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/miqu3iasg/cmj/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("uid-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, role, keyword string, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		if role != "" && u.Role != role {
			continue
		}
		if keyword != "" && !strings.Contains(u.Name, keyword) && !strings.Contains(u.Email, keyword) {
			continue
		}
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock SettingsRepository ──

type mockSettingsRepo struct {
	settings map[string]*model.UserSettings
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{settings: make(map[string]*model.UserSettings)}
}

func (m *mockSettingsRepo) Get(_ context.Context, userID string) (*model.UserSettings, error) {
	if s, ok := m.settings[userID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSettingsRepo) Upsert(_ context.Context, settings *model.UserSettings) error {
	m.settings[settings.UserID] = settings
	return nil
}

// ── Mock ScheduleEntryRepository ──

// mockScheduleEntryRepo 按插入顺序保存条目（ListByUser 依赖稳定顺序）
type mockScheduleEntryRepo struct {
	entries []*model.ScheduleEntry
	seq     int
}

func newMockScheduleEntryRepo() *mockScheduleEntryRepo {
	return &mockScheduleEntryRepo{}
}

func (m *mockScheduleEntryRepo) Create(_ context.Context, entry *model.ScheduleEntry) error {
	if entry.EntryID == "" {
		m.seq++
		entry.EntryID = fmt.Sprintf("entry-%03d", m.seq)
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockScheduleEntryRepo) BatchCreate(ctx context.Context, entries []model.ScheduleEntry) error {
	for i := range entries {
		if err := m.Create(ctx, &entries[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockScheduleEntryRepo) GetByID(_ context.Context, id string) (*model.ScheduleEntry, error) {
	for _, e := range m.entries {
		if e.EntryID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleEntryRepo) ListByUser(_ context.Context, userID string) ([]model.ScheduleEntry, error) {
	var result []model.ScheduleEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockScheduleEntryRepo) Update(_ context.Context, entry *model.ScheduleEntry) error {
	for i, e := range m.entries {
		if e.EntryID == entry.EntryID {
			m.entries[i] = entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockScheduleEntryRepo) Delete(_ context.Context, id string) error {
	for i, e := range m.entries {
		if e.EntryID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock CampusRepository ──

type mockCampusRepo struct {
	locations  []*model.CampusLocation
	departures map[string][]model.BusDeparture
}

func newMockCampusRepo() *mockCampusRepo {
	return &mockCampusRepo{departures: make(map[string][]model.BusDeparture)}
}

func (m *mockCampusRepo) addLocation(loc *model.CampusLocation) {
	m.locations = append(m.locations, loc)
}

func (m *mockCampusRepo) addDepartures(stopID string, minutes ...int) {
	for _, min := range minutes {
		m.departures[stopID] = append(m.departures[stopID], model.BusDeparture{StopID: stopID, DepartMin: min})
	}
	sort.Slice(m.departures[stopID], func(i, j int) bool {
		return m.departures[stopID][i].DepartMin < m.departures[stopID][j].DepartMin
	})
}

func (m *mockCampusRepo) ListLocations(_ context.Context, locType string) ([]model.CampusLocation, error) {
	var result []model.CampusLocation
	for _, l := range m.locations {
		if locType != "" && l.Type != locType {
			continue
		}
		result = append(result, *l)
	}
	return result, nil
}

func (m *mockCampusRepo) GetLocation(_ context.Context, id string) (*model.CampusLocation, error) {
	for _, l := range m.locations {
		if l.LocationID == id {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCampusRepo) ListBusStops(_ context.Context) ([]model.CampusLocation, error) {
	var result []model.CampusLocation
	for _, l := range m.locations {
		if l.IsBusStop {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockCampusRepo) ListDeparturesByStop(_ context.Context, stopID string) ([]model.BusDeparture, error) {
	return m.departures[stopID], nil
}
