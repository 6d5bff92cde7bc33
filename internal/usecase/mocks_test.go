package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/inspection-map/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetStats(ctx context.Context, version string) (*domain.Statistics, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, version string, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, version, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetPosition(ctx context.Context, ip string) (*domain.Position, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

func (m *MockCacheRepository) SetPosition(ctx context.Context, ip string, pos *domain.Position, ttl time.Duration) error {
	args := m.Called(ctx, ip, pos, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockDatasetSource is a mock of DatasetSource
type MockDatasetSource struct {
	mock.Mock
}

func (m *MockDatasetSource) Fetch(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *MockDatasetSource) Location() string {
	return "test://restaurants.json"
}

// MockDatasetLoadRepository is a mock of DatasetLoadRepository
type MockDatasetLoadRepository struct {
	mock.Mock
}

func (m *MockDatasetLoadRepository) Record(ctx context.Context, load *domain.DatasetLoad) error {
	args := m.Called(ctx, load)
	return args.Error(0)
}

func (m *MockDatasetLoadRepository) Recent(ctx context.Context, limit int) ([]domain.DatasetLoad, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DatasetLoad), args.Error(1)
}

// MockGeolocationProvider is a mock of GeolocationProvider
type MockGeolocationProvider struct {
	mock.Mock
}

func (m *MockGeolocationProvider) Locate(ctx context.Context, ip string) (*domain.Position, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

// MockPreferencesRepository is a mock of PreferencesRepository
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) Get(ctx context.Context, clientID string) (*domain.Preferences, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

func (m *MockPreferencesRepository) SetDarkMode(ctx context.Context, clientID string, enabled bool) (*domain.Preferences, error) {
	args := m.Called(ctx, clientID, enabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

// memorySessions keeps roulette sessions in a map, copying on the way in and out
type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]domain.RouletteSession
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]domain.RouletteSession)}
}

func (m *memorySessions) Get(ctx context.Context, id string) (*domain.RouletteSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memorySessions) Save(ctx context.Context, session *domain.RouletteSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = *session
	return nil
}

func (m *memorySessions) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// staticDatasets serves a fixed snapshot
type staticDatasets struct {
	dataset *domain.Dataset
}

func newStaticDatasets(version string, restaurants ...domain.Restaurant) *staticDatasets {
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return &staticDatasets{dataset: &domain.Dataset{Version: version, Restaurants: restaurants}}
}

func (s *staticDatasets) Snapshot() *domain.Dataset {
	return s.dataset
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func ptrInt(v int) *int {
	return &v
}

func ptrBool(v bool) *bool {
	return &v
}

func ptrString(v string) *string {
	return &v
}

func violations(n int) []domain.Violation {
	list := make([]domain.Violation, n)
	for i := range list {
		list[i] = domain.Violation{Code: "V", Description: "violation"}
	}
	return list
}

func restaurant(id string, lat, lon *float64, rating domain.HazardRating, inspections ...domain.Inspection) domain.Restaurant {
	return domain.Restaurant{
		Name:         "Restaurant " + id,
		Address:      id + " Main St",
		Latitude:     lat,
		Longitude:    lon,
		FacilityType: domain.FacilityRestaurant,
		HazardRating: rating,
		DetailsURL:   "https://inspections.example.com/" + id,
		Inspections:  inspections,
	}
}
