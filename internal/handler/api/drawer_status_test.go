//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domload "trolley-inventory/internal/domain/load"
	"trolley-inventory/internal/handler/api"
	"trolley-inventory/internal/pkg/errs"
	"trolley-inventory/internal/usecase/commands"
	"trolley-inventory/internal/usecase/queries"
	commandsmock "trolley-inventory/tests/mock/commands"
	queriesmock "trolley-inventory/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DrawerStatusHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoadCommands
	mockQueries  *queriesmock.MockLoadQueries
	handler      *api.DrawerStatusHandler
}

func (s *DrawerStatusHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoadCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLoadQueries(s.mockCtrl)
	s.handler = api.NewDrawerStatusHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/drawer-status/load", s.handler.RegisterLoad)
	s.router.POST("/drawer-status/loads/:id/deplete", s.handler.DepleteLoad)
	s.router.GET("/drawer-status/:id/loads", s.handler.ListLoads)
	s.router.GET("/drawer-status/drawer/:drawerId", s.handler.GetByDrawer)
}

func (s *DrawerStatusHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDrawerStatusHandlerSuite(t *testing.T) {
	suite.Run(t, new(DrawerStatusHandlerTestSuite))
}

func (s *DrawerStatusHandlerTestSuite) registerLoadBody() string {
	return `{
		"drawer_id": "` + uuid.NewString() + `",
		"batch_id": "` + uuid.NewString() + `",
		"quantity_loaded": 24,
		"status": "full"
	}`
}

func (s *DrawerStatusHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
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

func (s *DrawerStatusHandlerTestSuite) TestRegisterLoadWithoutStacking() {
	loadID := uuid.New()
	result := &commands.RegisterLoadResult{LoadID: loadID, SnapshotID: uuid.New()}
	view := &queries.LoadView{ID: loadID, QuantityLoaded: 24, StackingOrder: 1, LoadDate: time.Now().UTC()}

	s.mockCommands.EXPECT().RegisterLoad(gomock.Any(), gomock.Any()).Return(result, nil)
	s.mockQueries.EXPECT().GetLoad(gomock.Any(), loadID).Return(view, nil)

	w := s.perform(http.MethodPost, "/drawer-status/load", s.registerLoadBody())

	s.Equal(http.StatusCreated, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("success", resp["status"])
	s.NotContains(resp, "warning")
}

func (s *DrawerStatusHandlerTestSuite) TestRegisterLoadWithStackingWarning() {
	loadID := uuid.New()
	warning := domload.DetectStacking([]domload.ExistingBatch{
		{BatchNumber: "BT-1", ItemType: "meal_tray", QuantityLoaded: 40, LoadDate: time.Now().UTC()},
	})
	result := &commands.RegisterLoadResult{LoadID: loadID, SnapshotID: uuid.New(), Warning: warning}
	view := &queries.LoadView{ID: loadID, QuantityLoaded: 24, StackingOrder: 2}

	s.mockCommands.EXPECT().RegisterLoad(gomock.Any(), gomock.Any()).Return(result, nil)
	s.mockQueries.EXPECT().GetLoad(gomock.Any(), loadID).Return(view, nil)

	w := s.perform(http.MethodPost, "/drawer-status/load", s.registerLoadBody())

	s.Equal(http.StatusMultiStatus, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("success_with_warning", resp["status"])

	warn, ok := resp["warning"].(map[string]any)
	s.Require().True(ok)
	s.Equal("BATCH_STACKING_DETECTED", warn["code"])
	s.Equal("1 batch(es) already loaded without depletion", warn["message"])
	existing, ok := warn["existing_batches"].([]any)
	s.Require().True(ok)
	s.Len(existing, 1)
}

func (s *DrawerStatusHandlerTestSuite) TestRegisterLoadDrawerNotFound() {
	s.mockCommands.EXPECT().RegisterLoad(gomock.Any(), gomock.Any()).Return(nil, errs.ErrDrawerNotFound)

	w := s.perform(http.MethodPost, "/drawer-status/load", s.registerLoadBody())

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "NOT_FOUND")
}

func (s *DrawerStatusHandlerTestSuite) TestRegisterLoadBatchAlreadyLoaded() {
	s.mockCommands.EXPECT().RegisterLoad(gomock.Any(), gomock.Any()).Return(nil, errs.ErrBatchAlreadyLoaded)

	w := s.perform(http.MethodPost, "/drawer-status/load", s.registerLoadBody())

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "BATCH_ALREADY_LOADED")
}

func (s *DrawerStatusHandlerTestSuite) TestRegisterLoadRejectsUnknownState() {
	body := `{
		"drawer_id": "` + uuid.NewString() + `",
		"batch_id": "` + uuid.NewString() + `",
		"quantity_loaded": 24,
		"status": "overflowing"
	}`

	w := s.perform(http.MethodPost, "/drawer-status/load", body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "VALIDATION_ERROR")
}

func (s *DrawerStatusHandlerTestSuite) TestDepleteLoadTwice() {
	loadID := uuid.New()
	s.mockCommands.EXPECT().DepleteLoad(gomock.Any(), loadID).Return(errs.ErrLoadAlreadyDepleted)

	w := s.perform(http.MethodPost, "/drawer-status/loads/"+loadID.String()+"/deplete", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "ALREADY_DEPLETED")
}

func (s *DrawerStatusHandlerTestSuite) TestDepleteLoadInvalidID() {
	w := s.perform(http.MethodPost, "/drawer-status/loads/not-a-uuid/deplete", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "VALIDATION_ERROR")
}

func (s *DrawerStatusHandlerTestSuite) TestListLoadsActiveOnly() {
	snapshotID := uuid.New()
	views := []*queries.LoadView{
		{ID: uuid.New(), SnapshotID: snapshotID, StackingOrder: 1},
		{ID: uuid.New(), SnapshotID: snapshotID, StackingOrder: 2},
	}
	s.mockQueries.EXPECT().ListLoads(gomock.Any(), snapshotID, true).Return(views, nil)

	w := s.perform(http.MethodGet, "/drawer-status/"+snapshotID.String()+"/loads?active=true", "")

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].([]any)
	s.Require().True(ok)
	s.Len(data, 2)
}

func (s *DrawerStatusHandlerTestSuite) TestGetByDrawerNotFound() {
	drawerID := uuid.New()
	s.mockQueries.EXPECT().GetSnapshotByDrawer(gomock.Any(), drawerID).Return(nil, errs.ErrSnapshotNotFound)

	w := s.perform(http.MethodGet, "/drawer-status/drawer/"+drawerID.String(), "")

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "NOT_FOUND")
}
