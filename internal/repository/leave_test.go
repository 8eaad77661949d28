//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"roster-backend/internal/database/models"
	"roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeaveRepositoryTestSuite tests the LeaveRepository
type LeaveRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeaveRepository
	factory       *testutils.LeaveEntryFactory
}

// SetupSuite runs before all tests in the suite
func (suite *LeaveRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeaveRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewLeaveEntryFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeaveRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeaveRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeaveRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests inserting a new leave entry
func (suite *LeaveRepositoryTestSuite) TestCreate() {
	entry := suite.factory.Create()

	err := suite.repo.Create(entry)

	suite.NoError(err)
	suite.NotZero(entry.ID)
}

// TestCreateDuplicateNaturalKey tests the unique index over
// (kind, staff_code, date, leave_code)
func (suite *LeaveRepositoryTestSuite) TestCreateDuplicateNaturalKey() {
	suite.NoError(suite.repo.Create(suite.factory.Create()))

	err := suite.repo.Create(suite.factory.Create())

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestCreateSameDayDifferentKind tests that AL and PH entries for the same
// staff and day coexist
func (suite *LeaveRepositoryTestSuite) TestCreateSameDayDifferentKind() {
	suite.NoError(suite.repo.Create(suite.factory.Create()))

	ph := suite.factory.WithKind(models.LeaveKindPublicHoliday)
	ph.LeaveCode = "PH"
	suite.NoError(suite.repo.Create(ph))
}

// TestListRange tests bounded retrieval filtered by kind and staff code
func (suite *LeaveRepositoryTestSuite) TestListRange() {
	for day := 2; day <= 6; day++ {
		entry := suite.factory.Create()
		entry.Date = time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
		suite.NoError(suite.repo.Create(entry))
	}
	ph := suite.factory.WithKind(models.LeaveKindPublicHoliday)
	ph.Date = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	ph.LeaveCode = "PH"
	suite.NoError(suite.repo.Create(ph))

	entries, err := suite.repo.ListRange(models.LeaveKindAnnual, "EMP001",
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))

	suite.NoError(err)
	suite.Len(entries, 3)
	for _, entry := range entries {
		suite.Equal(models.LeaveKindAnnual, entry.Kind)
	}
	suite.True(entries[0].Date.Before(entries[1].Date))
}

// TestUpdateBalance tests setting the balance on the entry matching the natural key
func (suite *LeaveRepositoryTestSuite) TestUpdateBalance() {
	entry := suite.factory.Create()
	suite.NoError(suite.repo.Create(entry))

	rows, err := suite.repo.UpdateBalance(entry.Kind, entry.StaffCode, entry.Date, entry.LeaveCode, 8.0)

	suite.NoError(err)
	suite.Equal(int64(1), rows)

	entries, err := suite.repo.ListRange(entry.Kind, entry.StaffCode, entry.Date, entry.Date)
	suite.NoError(err)
	suite.Len(entries, 1)
	suite.Equal(8.0, entries[0].Balance)
}

// TestUpdateBalanceNoMatch tests that a mismatched natural key affects zero rows
func (suite *LeaveRepositoryTestSuite) TestUpdateBalanceNoMatch() {
	entry := suite.factory.Create()
	suite.NoError(suite.repo.Create(entry))

	rows, err := suite.repo.UpdateBalance(models.LeaveKindPublicHoliday, entry.StaffCode, entry.Date, entry.LeaveCode, 8.0)

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

// TestDelete tests removing the entry matching the natural key
func (suite *LeaveRepositoryTestSuite) TestDelete() {
	entry := suite.factory.Create()
	suite.NoError(suite.repo.Create(entry))

	rows, err := suite.repo.Delete(entry.Kind, entry.StaffCode, entry.Date, entry.LeaveCode)

	suite.NoError(err)
	suite.Equal(int64(1), rows)

	entries, err := suite.repo.ListRange(entry.Kind, entry.StaffCode, entry.Date, entry.Date)
	suite.NoError(err)
	suite.Empty(entries)
}

// TestDeleteNoMatch tests that a mismatched natural key removes nothing
func (suite *LeaveRepositoryTestSuite) TestDeleteNoMatch() {
	entry := suite.factory.Create()
	suite.NoError(suite.repo.Create(entry))

	rows, err := suite.repo.Delete(entry.Kind, "GHOST", entry.Date, entry.LeaveCode)

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

func TestLeaveRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveRepositoryTestSuite))
}
