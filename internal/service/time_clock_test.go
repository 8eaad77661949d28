package service_test

import (
	"testing"
	"time"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/database/models"
	"roster-backend/internal/mocks"
	"roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TimeClockServiceTestSuite defines the test suite for TimeClockService
type TimeClockServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPunchRepo    *mocks.MockTimeClockRepositoryInterface
	timeClockService *service.TimeClockService
	validator        *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TimeClockServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPunchRepo = mocks.NewMockTimeClockRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.timeClockService = service.NewTimeClockService(suite.mockPunchRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TimeClockServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func intPtr(v int) *int { return &v }

// TestRecordPunch tests recording a punch with a short time form
func (suite *TimeClockServiceTestSuite) TestRecordPunch() {
	req := &service.RecordPunchRequest{
		IDNumber: " EMP001 ",
		Date:     "2025-06-02",
		Time:     "8:05",
		InOut:    intPtr(1),
	}

	var inserted *models.TimeClockPunch
	suite.mockPunchRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(p *models.TimeClockPunch) error {
			inserted = p
			inserted.Readers = 7
			return nil
		}).
		Times(1)

	response, err := suite.timeClockService.Record(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "EMP001", inserted.IDNumber)
	assert.Equal(suite.T(), "08:05:00", inserted.PunchTime)
	assert.Equal(suite.T(), 7, response.Readers)
	assert.Equal(suite.T(), "08:05:00", response.Time)
	assert.Equal(suite.T(), "IN", response.Direction)
}

// TestRecordPunchOutDirection tests the OUT projection for in_out != 1
func (suite *TimeClockServiceTestSuite) TestRecordPunchOutDirection() {
	req := &service.RecordPunchRequest{
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "17:00:00",
		InOut:    intPtr(0),
	}

	suite.mockPunchRepo.EXPECT().
		Insert(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.timeClockService.Record(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "OUT", response.Direction)
}

// TestRecordPunchDuplicate tests that a replayed terminal event is rejected
// by the storage constraint
func (suite *TimeClockServiceTestSuite) TestRecordPunchDuplicate() {
	req := &service.RecordPunchRequest{
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "08:00:00",
		InOut:    intPtr(1),
	}

	suite.mockPunchRepo.EXPECT().
		Insert(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.timeClockService.Record(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicatePunch)
}

// TestRecordPunchMalformedTime tests rejection of an unnormalizable time
func (suite *TimeClockServiceTestSuite) TestRecordPunchMalformedTime() {
	req := &service.RecordPunchRequest{
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "9:5",
		InOut:    intPtr(1),
	}

	response, err := suite.timeClockService.Record(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeFormat)
}

// TestRecordPunchMissingTime tests rejection of an empty time
func (suite *TimeClockServiceTestSuite) TestRecordPunchMissingTime() {
	req := &service.RecordPunchRequest{
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "",
		InOut:    intPtr(1),
	}

	response, err := suite.timeClockService.Record(req)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
}

// TestAmendPunch tests a successful dual-key amendment
func (suite *TimeClockServiceTestSuite) TestAmendPunch() {
	req := &service.AmendPunchRequest{
		Readers:  intPtr(7),
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "8:30",
		InOut:    intPtr(1),
	}
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	suite.mockPunchRepo.EXPECT().
		Update(7, "EMP001", date, "08:30:00", 1).
		Return(&models.TimeClockPunch{
			Readers: 7, IDNumber: "EMP001", Date: date, PunchTime: "08:30:00", InOut: 1,
		}, nil).
		Times(1)

	response, err := suite.timeClockService.Amend(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "08:30:00", response.Time)
	assert.Equal(suite.T(), "IN", response.Direction)
}

// TestAmendPunchNotFound tests that a dual-key mismatch is NotFound
func (suite *TimeClockServiceTestSuite) TestAmendPunchNotFound() {
	req := &service.AmendPunchRequest{
		Readers:  intPtr(999),
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "08:30:00",
		InOut:    intPtr(1),
	}

	suite.mockPunchRepo.EXPECT().
		Update(999, "EMP001", gomock.Any(), "08:30:00", 1).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.timeClockService.Amend(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPunchNotFound)
}

// TestRemovePunch tests deletion returning the removed row
func (suite *TimeClockServiceTestSuite) TestRemovePunch() {
	req := &service.RemovePunchRequest{
		Readers:  intPtr(7),
		IDNumber: " EMP001 ",
	}
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	suite.mockPunchRepo.EXPECT().
		Delete(7, "EMP001").
		Return(&models.TimeClockPunch{
			Readers: 7, IDNumber: "EMP001", Date: date, PunchTime: "08:00:00", InOut: 0,
		}, nil).
		Times(1)

	response, err := suite.timeClockService.Remove(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, response.Readers)
	assert.Equal(suite.T(), "2025-06-02", response.Date)
	assert.Equal(suite.T(), "OUT", response.Direction)
}

// TestRemovePunchNotFound tests removal with a stale surrogate id
func (suite *TimeClockServiceTestSuite) TestRemovePunchNotFound() {
	req := &service.RemovePunchRequest{
		Readers:  intPtr(7),
		IDNumber: "EMP002",
	}

	suite.mockPunchRepo.EXPECT().
		Delete(7, "EMP002").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.timeClockService.Remove(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPunchNotFound)
}

// TestListClampsPagination tests that out-of-range paging values are clamped
// rather than rejected
func (suite *TimeClockServiceTestSuite) TestListClampsPagination() {
	cases := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"zero page", 0, 50, 1, 50, 0},
		{"negative page", -3, 50, 1, 50, 0},
		{"zero limit", 1, 0, 1, 1, 0},
		{"oversized limit", 2, 10000, 2, 500, 500},
		{"in range", 3, 20, 3, 20, 40},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockPunchRepo.EXPECT().
				FindPage(tc.wantLimit, tc.wantOffset).
				Return([]models.TimeClockPunch{}, int64(0), nil).
				Times(1)

			response, err := suite.timeClockService.List(tc.page, tc.limit)

			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.wantPage, response.Page)
			assert.Equal(suite.T(), tc.wantLimit, response.Limit)
		})
	}
}

// TestTimeClockServiceTestSuite runs the test suite
func TestTimeClockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeClockServiceTestSuite))
}
