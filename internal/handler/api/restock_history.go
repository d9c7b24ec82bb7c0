package api

import (
	"net/http"
	"strconv"

	reqdto "trolley-inventory/internal/handler/dto/request"
	resdto "trolley-inventory/internal/handler/dto/response"
	"trolley-inventory/internal/usecase/commands"
	"trolley-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RestockHistoryHandler struct {
	cmds commands.RestockCommands
	q    queries.HistoryQueries
	perf queries.PerformanceQueries
}

func NewRestockHistoryHandler(cmds commands.RestockCommands, q queries.HistoryQueries, perf queries.PerformanceQueries) *RestockHistoryHandler {
	return &RestockHistoryHandler{cmds: cmds, q: q, perf: perf}
}

// @Summary Record restock action
// @Description Append one entry to the restock history ledger
// @Tags restock-history
// @Accept json
// @Produce json
// @Param request body reqdto.RecordActionRequest true "Record action request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restock-history [post]
func (h *RestockHistoryHandler) Record(c *gin.Context) {
	var req reqdto.RecordActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidationError(c, err)
		return
	}
	id, err := h.cmds.RecordAction(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusCreated, resdto.FromHistoryEntryView(view))
}

// @Summary Get history entry
// @Description Get one restock history entry by ID
// @Tags restock-history
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restock-history/{id} [get]
func (h *RestockHistoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromHistoryEntryView(view))
}

// @Summary List history
// @Description List restock history entries, newest first, paginated
// @Tags restock-history
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Entries per page (default 20, max 100)"
// @Success 200 {object} resdto.Envelope
// @Router /restock-history [get]
func (h *RestockHistoryHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 0)

	views, pagination, err := h.q.List(c.Request.Context(), page, perPage)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromHistoryPage(views, pagination))
}

// @Summary List history by employee
// @Description List restock history entries of one employee, newest first
// @Tags restock-history
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restock-history/employee/{id} [get]
func (h *RestockHistoryHandler) ListByEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	views, err := h.q.ListByEmployee(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromHistoryList(views))
}

// @Summary List warning entries
// @Description List all entries that were flagged with a stacking warning, newest first
// @Tags restock-history
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /restock-history/warnings [get]
func (h *RestockHistoryHandler) ListWarnings(c *gin.Context) {
	views, err := h.q.ListWarnings(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromHistoryList(views))
}

// @Summary Employee performance
// @Description Aggregate an employee's ledger entries into performance metrics
// @Tags restock-history
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restock-history/performance/{id} [get]
func (h *RestockHistoryHandler) EmployeePerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	perf, err := h.perf.EmployeePerformance(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromEmployeePerformance(perf))
}

// @Summary Leaderboard
// @Description Rank active employees by average accuracy or efficiency score
// @Tags restock-history
// @Produce json
// @Param metric query string false "accuracy_score or efficiency_score (default accuracy_score)"
// @Param limit query int false "Max entries (default 10)"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /restock-history/leaderboard [get]
func (h *RestockHistoryHandler) Leaderboard(c *gin.Context) {
	metric := c.DefaultQuery("metric", queries.MetricAccuracy)
	limit := intQuery(c, "limit", queries.DefaultLeaderboardLimit)

	entries, err := h.perf.Leaderboard(c.Request.Context(), metric, limit)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromLeaderboard(metric, entries))
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	iv, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return iv
}
