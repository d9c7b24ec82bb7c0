//go:build e2e

package drawerstatus_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	domload "trolley-inventory/internal/domain/load"
	"trolley-inventory/internal/handler/dto/request"
	"trolley-inventory/internal/handler/dto/response"
	"trolley-inventory/tests/common/dbtest"
	helper "trolley-inventory/tests/common/httptest"
	"trolley-inventory/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loadURL     = "/api/drawer-status/load"
	depleteURL  = "/api/drawer-status/loads/%s/deplete"
	drawerURL   = "/api/drawer-status/drawer/%s"
	itemsURL    = "/api/items"
	drawersURL  = "/api/drawers"
	warningsURL = "/api/restock-history/warnings"
)

type loadEnvelope struct {
	Status  string                   `json:"status"`
	Data    response.LoadResponse    `json:"data"`
	Warning *domload.StackingWarning `json:"warning"`
}

type StackingSuite struct {
	e2e.SharedSuite
}

func (s *StackingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestStackingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StackingSuite))
}

func (s *StackingSuite) createDrawer(code string) uuid.UUID {
	t := s.T()
	t.Helper()

	body := request.CreateDrawerRequest{
		DrawerCode: code,
		TrolleyID:  "TRLY-01",
		Position:   1,
		Capacity:   20,
		DrawerType: "meal",
	}
	w := helper.PerformRequest(t, s.Router, http.MethodPost, drawersURL, body)
	require.Equal(t, http.StatusCreated, w.Code, "drawer creation failed: %s", w.Body.String())

	var env struct {
		Data response.DrawerResponse `json:"data"`
	}
	require.NoError(t, helper.DecodeResponseBody(t, w.Body, &env))
	return env.Data.ID
}

func (s *StackingSuite) createBatch(batchNumber string) uuid.UUID {
	t := s.T()
	t.Helper()

	body := request.RegisterBatchRequest{
		ItemType:    "chicken_meal",
		BatchNumber: batchNumber,
		Quantity:    40,
		ExpiryDate:  time.Now().AddDate(0, 3, 0).UTC(),
	}
	w := helper.PerformRequest(t, s.Router, http.MethodPost, itemsURL, body)
	require.Equal(t, http.StatusCreated, w.Code, "batch registration failed: %s", w.Body.String())

	var env struct {
		Data response.BatchResponse `json:"data"`
	}
	require.NoError(t, helper.DecodeResponseBody(t, w.Body, &env))
	return env.Data.ID
}

func (s *StackingSuite) registerLoad(drawerID, batchID uuid.UUID, quantity int32) *loadEnvelope {
	t := s.T()
	t.Helper()

	body := request.RegisterLoadRequest{
		DrawerID:       drawerID,
		BatchID:        batchID,
		QuantityLoaded: quantity,
		Status:         "full",
	}
	w := helper.PerformRequest(t, s.Router, http.MethodPost, loadURL, body)
	require.Contains(t, []int{http.StatusCreated, http.StatusMultiStatus}, w.Code,
		"load registration failed: %s", w.Body.String())

	var env loadEnvelope
	require.NoError(t, helper.DecodeResponseBody(t, w.Body, &env))
	require.NotEqual(t, uuid.Nil, env.Data.ID, "load id missing")
	return &env
}

// =============================================================================
// TestStackingFlow - end-to-end stacking detection across successive loads
// =============================================================================

func (s *StackingSuite) TestStackingFlow() {
	s.Run("Loading onto an empty drawer raises no warning", func() {
		t := s.T()

		drawerID := s.createDrawer("DRW-101")
		b1 := s.createBatch("BAT-2026-001")

		body := request.RegisterLoadRequest{
			DrawerID:       drawerID,
			BatchID:        b1,
			QuantityLoaded: 10,
			Status:         "full",
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, loadURL, body)
		require.Equal(t, http.StatusCreated, w.Code, "Response: %s", w.Body.String())

		var env loadEnvelope
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &env))
		require.Equal(t, "success", env.Status)
		require.Nil(t, env.Warning, "first load must not warn")
		require.Equal(t, int32(1), env.Data.StackingOrder)
		require.False(t, env.Data.IsDepleted)
	})

	s.Run("Loading over an undepleted batch succeeds with a 207 warning", func() {
		t := s.T()

		drawerID := s.createDrawer("DRW-102")
		b1 := s.createBatch("BAT-2026-002")
		b2 := s.createBatch("BAT-2026-003")

		first := s.registerLoad(drawerID, b1, 10)
		require.Nil(t, first.Warning)

		body := request.RegisterLoadRequest{
			DrawerID:       drawerID,
			BatchID:        b2,
			QuantityLoaded: 8,
			Status:         "full",
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, loadURL, body)
		require.Equal(t, http.StatusMultiStatus, w.Code, "Response: %s", w.Body.String())

		var env loadEnvelope
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &env))
		require.Equal(t, "success_with_warning", env.Status)
		require.NotNil(t, env.Warning)
		require.Equal(t, "BATCH_STACKING_DETECTED", env.Warning.Code)
		require.Equal(t, "1 batch(es) already loaded without depletion", env.Warning.Message)
		require.Len(t, env.Warning.ExistingBatches, 1)
		require.Equal(t, "BAT-2026-002", env.Warning.ExistingBatches[0].BatchNumber)
		require.Equal(t, int32(2), env.Data.StackingOrder)
	})

	s.Run("Depleting the older batch clears it from the next warning", func() {
		t := s.T()

		drawerID := s.createDrawer("DRW-103")
		b1 := s.createBatch("BAT-2026-004")
		b2 := s.createBatch("BAT-2026-005")
		b3 := s.createBatch("BAT-2026-006")

		first := s.registerLoad(drawerID, b1, 10)
		second := s.registerLoad(drawerID, b2, 8)
		require.NotNil(t, second.Warning)

		dw := helper.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(depleteURL, first.Data.ID), nil)
		require.Equal(t, http.StatusOK, dw.Code, "Response: %s", dw.Body.String())

		var depleted loadEnvelope
		require.NoError(t, helper.DecodeResponseBody(t, dw.Body, &depleted))
		require.True(t, depleted.Data.IsDepleted)
		require.NotNil(t, depleted.Data.DepletionDate)

		body := request.RegisterLoadRequest{
			DrawerID:       drawerID,
			BatchID:        b3,
			QuantityLoaded: 12,
			Status:         "full",
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, loadURL, body)
		require.Equal(t, http.StatusMultiStatus, w.Code, "Response: %s", w.Body.String())

		var env loadEnvelope
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &env))
		require.NotNil(t, env.Warning)
		require.Len(t, env.Warning.ExistingBatches, 1, "depleted batch must not be listed")
		require.Equal(t, "BAT-2026-005", env.Warning.ExistingBatches[0].BatchNumber)

		// batch_order keeps counting past depleted loads
		require.Equal(t, int32(3), env.Data.StackingOrder)
	})

	s.Run("Loading the same batch twice into one drawer is rejected", func() {
		t := s.T()

		drawerID := s.createDrawer("DRW-104")
		b1 := s.createBatch("BAT-2026-007")

		_ = s.registerLoad(drawerID, b1, 10)

		body := request.RegisterLoadRequest{
			DrawerID:       drawerID,
			BatchID:        b1,
			QuantityLoaded: 5,
			Status:         "full",
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, loadURL, body)
		helper.AssertErrorResponse(t, w, http.StatusConflict, "BATCH_ALREADY_LOADED")
	})
}

// =============================================================================
// TestStackingHistory - warnings are recorded in the restock ledger
// =============================================================================

func (s *StackingSuite) TestStackingHistory() {
	s.Run("Every load writes a ledger entry and warned loads are flagged", func() {
		t := s.T()

		drawerID := s.createDrawer("DRW-201")
		employeeID := dbtest.CreateTestEmployee(t, s.DB, "EMP-201", "active")
		b1 := s.createBatch("BAT-2026-101")
		b2 := s.createBatch("BAT-2026-102")

		_ = s.registerLoad(drawerID, b1, 10)

		body := request.RegisterLoadRequest{
			DrawerID:       drawerID,
			BatchID:        b2,
			QuantityLoaded: 8,
			Status:         "full",
			EmployeeID:     &employeeID,
		}
		lw := helper.PerformRequest(t, s.Router, http.MethodPost, loadURL, body)
		require.Equal(t, http.StatusMultiStatus, lw.Code, "Response: %s", lw.Body.String())

		w := helper.PerformRequest(t, s.Router, http.MethodGet, warningsURL, nil)
		require.Equal(t, http.StatusOK, w.Code, "Response: %s", w.Body.String())

		var env struct {
			Data []response.HistoryEntryResponse `json:"data"`
		}
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &env))
		require.Len(t, env.Data, 1, "only the stacked load should be flagged")
		require.True(t, env.Data[0].StackingWarningTriggered)
		require.Equal(t, "restock", env.Data[0].ActionType)
		require.NotNil(t, env.Data[0].BatchID)
		require.Equal(t, b2, *env.Data[0].BatchID)
		require.NotNil(t, env.Data[0].EmployeeID)
		require.Equal(t, employeeID, *env.Data[0].EmployeeID)
	})

	s.Run("Snapshot state follows the latest load", func() {
		t := s.T()

		drawerID := s.createDrawer("DRW-202")
		b1 := s.createBatch("BAT-2026-103")

		body := request.RegisterLoadRequest{
			DrawerID:       drawerID,
			BatchID:        b1,
			QuantityLoaded: 6,
			Status:         "partial",
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, loadURL, body)
		require.Equal(t, http.StatusCreated, w.Code, "Response: %s", w.Body.String())

		sw := helper.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(drawerURL, drawerID), nil)
		require.Equal(t, http.StatusOK, sw.Code, "Response: %s", sw.Body.String())

		var env struct {
			Data response.SnapshotResponse `json:"data"`
		}
		require.NoError(t, helper.DecodeResponseBody(t, sw.Body, &env))
		require.Equal(t, drawerID, env.Data.DrawerID)
		require.Equal(t, "partial", env.Data.Status)
	})
}
