package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roster-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// RequestIDMiddlewareTestSuite defines the test suite for the request id middleware
type RequestIDMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

// SetupTest sets up the test suite
func (suite *RequestIDMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(RequestID())
	suite.router.GET("/ping", func(c *gin.Context) {
		ctxID, _ := c.Request.Context().Value(requestIDKey).(string)
		c.JSON(http.StatusOK, gin.H{
			"gin_id": c.GetString(requestIDKey),
			"ctx_id": ctxID,
		})
	})
}

func (suite *RequestIDMiddlewareTestSuite) serve(headerID string) (*httptest.ResponseRecorder, map[string]string) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if headerID != "" {
		req.Header.Set("X-Request-ID", headerID)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	body := map[string]string{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

// TestGeneratesID tests that a missing header yields a generated id visible on
// the response, the gin keys and the request context alike
func (suite *RequestIDMiddlewareTestSuite) TestGeneratesID() {
	w, body := suite.serve("")

	rid := w.Header().Get("X-Request-ID")
	assert.NotEmpty(suite.T(), rid)
	assert.Equal(suite.T(), rid, body["gin_id"])
	assert.Equal(suite.T(), rid, body["ctx_id"])
}

// TestEchoesProvidedID tests that a caller-supplied id is kept end to end
func (suite *RequestIDMiddlewareTestSuite) TestEchoesProvidedID() {
	w, body := suite.serve("trace-abc-123")

	assert.Equal(suite.T(), "trace-abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(suite.T(), "trace-abc-123", body["gin_id"])
	assert.Equal(suite.T(), "trace-abc-123", body["ctx_id"])
}

// TestOversizedIDReplaced tests that an oversized header id is regenerated
func (suite *RequestIDMiddlewareTestSuite) TestOversizedIDReplaced() {
	oversized := strings.Repeat("x", requestIDMaxLen+1)
	w, body := suite.serve(oversized)

	assert.NotEqual(suite.T(), oversized, w.Header().Get("X-Request-ID"))
	assert.Equal(suite.T(), w.Header().Get("X-Request-ID"), body["ctx_id"])
}

// TestLoggerPicksUpRequestID tests that a logger built from the request
// context carries the request id field
func (suite *RequestIDMiddlewareTestSuite) TestLoggerPicksUpRequestID() {
	var field interface{}
	router := gin.New()
	router.Use(RequestID())
	router.GET("/log", func(c *gin.Context) {
		field = logger.WithContext(c.Request.Context()).Data["request_id"]
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	req.Header.Set("X-Request-ID", "trace-log-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(suite.T(), "trace-log-1", field)
}

// TestRequestIDMiddlewareTestSuite runs the test suite
func TestRequestIDMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDMiddlewareTestSuite))
}
