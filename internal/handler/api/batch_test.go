//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trolley-inventory/internal/handler/api"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/queries"
	commandsmock "trolley-inventory/tests/mock/commands"
	queriesmock "trolley-inventory/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BatchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBatchCommands
	mockQueries  *queriesmock.MockBatchQueries
	handler      *api.BatchHandler
}

func (s *BatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBatchQueries(s.mockCtrl)
	s.handler = api.NewBatchHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/items", s.handler.Register)
	s.router.GET("/items/:id", s.handler.Get)
	s.router.PATCH("/items/:id/status", s.handler.UpdateStatus)
}

func (s *BatchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(BatchHandlerTestSuite))
}

func (s *BatchHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BatchHandlerTestSuite) TestRegisterBatch() {
	batchID := uuid.New()
	view := &queries.BatchView{
		ID:          batchID,
		ItemType:    "meal_tray",
		BatchNumber: "BT-2026-001",
		Quantity:    40,
		Status:      "available",
		ExpiryDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	s.mockCommands.EXPECT().RegisterBatch(gomock.Any(), gomock.Any()).Return(batchID, nil)
	s.mockQueries.EXPECT().GetByID(gomock.Any(), batchID).Return(view, nil)

	body := `{"item_type":"meal_tray","batch_number":"BT-2026-001","quantity":40,"expiry_date":"2026-09-01T00:00:00Z"}`
	w := s.perform(http.MethodPost, "/items", body)

	s.Equal(http.StatusCreated, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("success", resp["status"])
	data, ok := resp["data"].(map[string]any)
	s.Require().True(ok)
	s.Equal("available", data["status"])
}

func (s *BatchHandlerTestSuite) TestRegisterBatchDuplicate() {
	s.mockCommands.EXPECT().RegisterBatch(gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.ErrDuplicateBatchNumber)

	body := `{"item_type":"meal_tray","batch_number":"BT-2026-001","quantity":40,"expiry_date":"2026-09-01T00:00:00Z"}`
	w := s.perform(http.MethodPost, "/items", body)

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "DUPLICATE_BATCH_NUMBER")
}

func (s *BatchHandlerTestSuite) TestRegisterBatchMissingFields() {
	w := s.perform(http.MethodPost, "/items", `{"item_type":"meal_tray"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "VALIDATION_ERROR")
}

func (s *BatchHandlerTestSuite) TestGetBatchNotFound() {
	batchID := uuid.New()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), batchID).Return(nil, errs.ErrBatchNotFound)

	w := s.perform(http.MethodGet, "/items/"+batchID.String(), "")

	s.Equal(http.StatusNotFound, w.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	errBody, ok := resp["error"].(map[string]any)
	s.Require().True(ok)
	s.Equal("NOT_FOUND", errBody["code"])
	// details is always an object, even when there is nothing to report
	details, ok := errBody["details"].(map[string]any)
	s.Require().True(ok)
	s.Empty(details)
}

func (s *BatchHandlerTestSuite) TestUpdateStatusIllegalTransition() {
	batchID := uuid.New()
	s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), batchID, gomock.Any()).Return(errs.ErrInvalidStatusTransition)

	w := s.perform(http.MethodPatch, "/items/"+batchID.String()+"/status", `{"status":"available"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "INVALID_STATUS_TRANSITION")
}

func (s *BatchHandlerTestSuite) TestUpdateStatusRejectsUnknownValue() {
	w := s.perform(http.MethodPatch, "/items/"+uuid.NewString()+"/status", `{"status":"retired"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "VALIDATION_ERROR")
}
