package handlers_test

import (
	"fmt"
	"testing"

	"roster-backend/internal/api/handlers"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/mocks"
	"roster-backend/internal/service"
	"roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TimeClockHandlerTestSuite defines the test suite for TimeClockHandler
type TimeClockHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTimeClockServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TimeClockHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTimeClockServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewTimeClockHandler(suite.mockService)
	suite.http.Router.GET("/machine-times", handler.ListPunches)
	suite.http.Router.POST("/machine-times", handler.RecordPunch)
	suite.http.Router.PUT("/machine-times", handler.AmendPunch)
	suite.http.Router.DELETE("/machine-times", handler.RemovePunch)
}

// TearDownTest cleans up after each test
func (suite *TimeClockHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func intPtr(v int) *int {
	return &v
}

func (suite *TimeClockHandlerTestSuite) TestListPunches() {
	listing := &service.PunchListResponse{
		Records: []service.PunchResponse{
			{Readers: 7, IDNumber: "EMP001", Date: "2025-06-02", Time: "08:05:00", InOut: 1, Direction: "IN"},
		},
		Total: 1,
		Page:  2,
		Limit: 50,
	}
	suite.mockService.EXPECT().List(2, 50).Return(listing, nil)

	recorder := suite.http.MakeRequest("GET", "/machine-times?page=2&limit=50", nil)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &envelope)
	suite.True(envelope.Status)
	suite.Equal("Successfully fetched time machine records, page 2 of results (limit: 50)", envelope.Message)
}

func (suite *TimeClockHandlerTestSuite) TestListPunchesDefaults() {
	listing := &service.PunchListResponse{Records: []service.PunchResponse{}, Page: 1, Limit: service.DefaultPunchPageSize}
	suite.mockService.EXPECT().List(1, service.DefaultPunchPageSize).Return(listing, nil)

	recorder := suite.http.MakeRequest("GET", "/machine-times", nil)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &envelope)
	suite.True(envelope.Status)
}

func (suite *TimeClockHandlerTestSuite) TestListPunchesStorageFailure() {
	suite.mockService.EXPECT().List(1, service.DefaultPunchPageSize).Return(nil, fmt.Errorf("connection refused"))

	recorder := suite.http.MakeRequest("GET", "/machine-times", nil)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 500, &envelope)
	suite.False(envelope.Status)
}

func (suite *TimeClockHandlerTestSuite) TestRecordPunch() {
	req := &service.RecordPunchRequest{
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "8:05",
		InOut:    intPtr(1),
	}
	resp := &service.PunchResponse{
		Readers:   7,
		IDNumber:  "EMP001",
		Date:      "2025-06-02",
		Time:      "08:05:00",
		InOut:     1,
		Direction: "IN",
	}
	suite.mockService.EXPECT().Record(gomock.Any()).Return(resp, nil)

	recorder := suite.http.MakeRequest("POST", "/machine-times", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 201, &envelope)
	suite.True(envelope.Status)
	suite.Equal("Time record added successfully", envelope.Message)

	data := envelope.Data.(map[string]interface{})
	suite.Equal("08:05:00", data["time"])
	suite.Equal("IN", data["in_out_text"])
}

func (suite *TimeClockHandlerTestSuite) TestRecordPunchDuplicate() {
	req := &service.RecordPunchRequest{
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "08:05:00",
		InOut:    intPtr(1),
	}
	suite.mockService.EXPECT().Record(gomock.Any()).Return(nil, apperrors.ErrDuplicatePunch)

	recorder := suite.http.MakeRequest("POST", "/machine-times", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 409, &envelope)
	suite.False(envelope.Status)
	suite.Equal("This clock-in/out already exists for this staff on this date & time", envelope.Message)

	data := envelope.Data.(map[string]interface{})
	suite.Equal("EMP001", data["id_number"])
}

func (suite *TimeClockHandlerTestSuite) TestRecordPunchMalformedTime() {
	req := &service.RecordPunchRequest{
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "9:5",
		InOut:    intPtr(1),
	}
	suite.mockService.EXPECT().Record(gomock.Any()).Return(nil, apperrors.ErrInvalidTimeFormat)

	recorder := suite.http.MakeRequest("POST", "/machine-times", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 400, &envelope)
	suite.False(envelope.Status)
}

func (suite *TimeClockHandlerTestSuite) TestAmendPunch() {
	req := &service.AmendPunchRequest{
		Readers:  intPtr(7),
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "08:30:00",
		InOut:    intPtr(1),
	}
	resp := &service.PunchResponse{
		Readers:   7,
		IDNumber:  "EMP001",
		Date:      "2025-06-02",
		Time:      "08:30:00",
		InOut:     1,
		Direction: "IN",
	}
	suite.mockService.EXPECT().Amend(gomock.Any()).Return(resp, nil)

	recorder := suite.http.MakeRequest("PUT", "/machine-times", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &envelope)
	suite.True(envelope.Status)
	suite.Equal("Time record updated successfully", envelope.Message)
}

func (suite *TimeClockHandlerTestSuite) TestAmendPunchNotFound() {
	req := &service.AmendPunchRequest{
		Readers:  intPtr(99),
		IDNumber: "EMP001",
		Date:     "2025-06-02",
		Time:     "08:30:00",
		InOut:    intPtr(1),
	}
	suite.mockService.EXPECT().Amend(gomock.Any()).Return(nil, apperrors.ErrPunchNotFound)

	recorder := suite.http.MakeRequest("PUT", "/machine-times", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 404, &envelope)
	suite.False(envelope.Status)
	suite.Equal("Record not found with the given readers and id_number", envelope.Message)
	suite.Nil(envelope.Data)
}

func (suite *TimeClockHandlerTestSuite) TestRemovePunch() {
	req := &service.RemovePunchRequest{
		Readers:  intPtr(7),
		IDNumber: "EMP001",
	}
	resp := &service.PunchResponse{
		Readers:   7,
		IDNumber:  "EMP001",
		Date:      "2025-06-02",
		Time:      "08:05:00",
		InOut:     1,
		Direction: "IN",
	}
	suite.mockService.EXPECT().Remove(gomock.Any()).Return(resp, nil)

	recorder := suite.http.MakeRequest("DELETE", "/machine-times", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &envelope)
	suite.True(envelope.Status)
	suite.Equal("Time record deleted successfully", envelope.Message)

	// the removed row comes back for confirmation
	data := envelope.Data.(map[string]interface{})
	suite.Equal("EMP001", data["id_number"])
	suite.Equal("08:05:00", data["time"])
}

func (suite *TimeClockHandlerTestSuite) TestRemovePunchNotFound() {
	req := &service.RemovePunchRequest{
		Readers:  intPtr(7),
		IDNumber: "GHOST",
	}
	suite.mockService.EXPECT().Remove(gomock.Any()).Return(nil, apperrors.ErrPunchNotFound)

	recorder := suite.http.MakeRequest("DELETE", "/machine-times", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 404, &envelope)
	suite.False(envelope.Status)
	suite.Equal("Record not found with the given readers and id_number", envelope.Message)
}

func TestTimeClockHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TimeClockHandlerTestSuite))
}
