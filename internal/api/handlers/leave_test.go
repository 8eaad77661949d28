package handlers_test

import (
	"fmt"
	"testing"

	"roster-backend/internal/api/handlers"
	"roster-backend/internal/database/models"
	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/mocks"
	"roster-backend/internal/service"
	"roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LeaveHandlerTestSuite defines the test suite for LeaveHandler
type LeaveHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeaveServiceInterface
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LeaveHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeaveServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewLeaveHandler(suite.mockService)
	suite.http.Router.POST("/leave", handler.CreateLeave)
	suite.http.Router.PUT("/leave", handler.UpdateLeave)
	suite.http.Router.DELETE("/leave", handler.DeleteLeave)
}

// TearDownTest cleans up after each test
func (suite *LeaveHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func float64Ptr(v float64) *float64 {
	return &v
}

func (suite *LeaveHandlerTestSuite) createRequest() *service.CreateLeaveRequest {
	return &service.CreateLeaveRequest{
		Kind:      models.LeaveKindAnnual,
		StaffCode: "EMP001",
		Date:      "2025-06-10",
		LeaveCode: "AL",
		Balance:   float64Ptr(9.5),
	}
}

func (suite *LeaveHandlerTestSuite) TestCreateLeave() {
	req := suite.createRequest()
	resp := &service.LeaveEntryResponse{
		StaffCode: "EMP001",
		Date:      "2025-06-10",
		LeaveCode: "AL",
		Month:     6,
		Balance:   9.5,
	}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(resp, nil)

	recorder := suite.http.MakeRequest("POST", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 201, &envelope)
	suite.True(envelope.Status)
	suite.Equal("Leave entry added successfully", envelope.Message)

	data := envelope.Data.(map[string]interface{})
	suite.Equal(float64(6), data["month"])
}

func (suite *LeaveHandlerTestSuite) TestCreateLeaveDuplicate() {
	req := suite.createRequest()
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrLeaveEntryExists)

	recorder := suite.http.MakeRequest("POST", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 409, &envelope)
	suite.False(envelope.Status)
	suite.Equal("Leave entry already exists for this staff and date", envelope.Message)
}

func (suite *LeaveHandlerTestSuite) TestCreateLeaveInvalidKind() {
	req := suite.createRequest()
	req.Kind = "sick"
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrInvalidLeaveKind)

	recorder := suite.http.MakeRequest("POST", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 400, &envelope)
	suite.False(envelope.Status)
}

func (suite *LeaveHandlerTestSuite) TestCreateLeaveStorageFailure() {
	req := suite.createRequest()
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

	recorder := suite.http.MakeRequest("POST", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 500, &envelope)
	suite.False(envelope.Status)
}

func (suite *LeaveHandlerTestSuite) TestUpdateLeave() {
	req := &service.UpdateLeaveRequest{
		Kind:      models.LeaveKindAnnual,
		StaffCode: "EMP001",
		Date:      "2025-06-10",
		LeaveCode: "AL",
		Balance:   float64Ptr(8.0),
	}
	suite.mockService.EXPECT().UpdateBalance(gomock.Any()).Return(nil)

	recorder := suite.http.MakeRequest("PUT", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &envelope)
	suite.True(envelope.Status)
	suite.Equal("Leave entry updated successfully", envelope.Message)

	data := envelope.Data.(map[string]interface{})
	suite.Equal(float64(8), data["balance"])
}

func (suite *LeaveHandlerTestSuite) TestUpdateLeaveNotFound() {
	req := &service.UpdateLeaveRequest{
		Kind:      models.LeaveKindAnnual,
		StaffCode: "GHOST",
		Date:      "2025-06-10",
		LeaveCode: "AL",
		Balance:   float64Ptr(8.0),
	}
	suite.mockService.EXPECT().UpdateBalance(gomock.Any()).Return(apperrors.ErrLeaveEntryNotFound)

	recorder := suite.http.MakeRequest("PUT", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 404, &envelope)
	suite.False(envelope.Status)
	suite.Equal("No leave entry found to update", envelope.Message)
}

func (suite *LeaveHandlerTestSuite) TestDeleteLeave() {
	req := &service.DeleteLeaveRequest{
		Kind:      models.LeaveKindPublicHoliday,
		StaffCode: "EMP001",
		Date:      "2025-06-10",
		LeaveCode: "PH",
	}
	suite.mockService.EXPECT().Delete(gomock.Any()).Return(nil)

	recorder := suite.http.MakeRequest("DELETE", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 200, &envelope)
	suite.True(envelope.Status)
	suite.Equal("Leave entry deleted successfully", envelope.Message)
}

func (suite *LeaveHandlerTestSuite) TestDeleteLeaveNotFound() {
	req := &service.DeleteLeaveRequest{
		Kind:      models.LeaveKindAnnual,
		StaffCode: "GHOST",
		Date:      "2025-06-10",
		LeaveCode: "AL",
	}
	suite.mockService.EXPECT().Delete(gomock.Any()).Return(apperrors.ErrLeaveEntryNotFound)

	recorder := suite.http.MakeRequest("DELETE", "/leave", req)

	var envelope handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, 404, &envelope)
	suite.False(envelope.Status)
	suite.Equal("No leave entry found to delete", envelope.Message)
}

func TestLeaveHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveHandlerTestSuite))
}
