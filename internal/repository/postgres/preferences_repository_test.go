package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/inspection-map/internal/domain/repository"
	"github.com/inspection-map/internal/repository/postgres/testhelpers"
)

// PreferencesRepositoryTestSuite тестирует PreferencesRepository на реальной БД
type PreferencesRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.PreferencesRepository
	ctx    context.Context
}

func (s *PreferencesRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	s.Require().NoError(testhelpers.ApplyMigrations(s.testDB.DB, "../../../migrations"))
	s.Require().NoError(s.testDB.Cleanup(context.Background()))
	s.Require().NoError(testhelpers.LoadFixtures(context.Background(), s.testDB.DB, "testdata/fixtures", "preferences.sql"))

	s.repo = testhelpers.NewPreferencesRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *PreferencesRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *PreferencesRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *PreferencesRepositoryTestSuite) TestGet_FromFixture() {
	prefs, err := s.repo.Get(s.ctx, "fixture-dark")
	s.NoError(err)
	s.True(prefs.DarkMode)
	s.False(prefs.UpdatedAt.IsZero())
}

func (s *PreferencesRepositoryTestSuite) TestGet_UnknownClientDefaultsToLight() {
	prefs, err := s.repo.Get(s.ctx, "never-seen")
	s.NoError(err)
	s.Equal("never-seen", prefs.ClientID)
	s.False(prefs.DarkMode)
}

func (s *PreferencesRepositoryTestSuite) TestSetDarkMode_Upsert() {
	saved, err := s.repo.SetDarkMode(s.ctx, "toggler", true)
	s.NoError(err)
	s.True(saved.DarkMode)

	saved, err = s.repo.SetDarkMode(s.ctx, "toggler", false)
	s.NoError(err)
	s.False(saved.DarkMode)

	prefs, err := s.repo.Get(s.ctx, "toggler")
	s.NoError(err)
	s.False(prefs.DarkMode)
}

func TestPreferencesRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PreferencesRepositoryTestSuite))
}
