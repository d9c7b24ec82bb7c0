package api

import (
	"net/http"

	reqdto "trolley-inventory/internal/handler/dto/request"
	resdto "trolley-inventory/internal/handler/dto/response"
	"trolley-inventory/internal/usecase/commands"
	"trolley-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DrawerStatusHandler struct {
	cmds commands.LoadCommands
	q    queries.LoadQueries
}

func NewDrawerStatusHandler(cmds commands.LoadCommands, q queries.LoadQueries) *DrawerStatusHandler {
	return &DrawerStatusHandler{cmds: cmds, q: q}
}

// @Summary Load batch into drawer
// @Description Place a batch into a drawer; answers 207 with an advisory warning when older active batches sit underneath
// @Tags drawer-status
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterLoadRequest true "Register load request"
// @Success 201 {object} resdto.Envelope
// @Success 207 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drawer-status/load [post]
func (h *DrawerStatusHandler) RegisterLoad(c *gin.Context) {
	var req reqdto.RegisterLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidationError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortValidationError(c, err)
		return
	}
	result, err := h.cmds.RegisterLoad(c.Request.Context(), cmd)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.q.GetLoad(c.Request.Context(), result.LoadID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	// The warning never blocks the write; it only changes the envelope.
	if result.Warning != nil {
		resdto.SuccessWithWarning(c, http.StatusMultiStatus, resdto.FromLoadView(view), result.Warning)
		return
	}
	resdto.Success(c, http.StatusCreated, resdto.FromLoadView(view))
}

// @Summary Deplete load
// @Description Mark a drawer load as depleted; a second call is rejected
// @Tags drawer-status
// @Produce json
// @Param id path string true "Load ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drawer-status/loads/{id}/deplete [post]
func (h *DrawerStatusHandler) DepleteLoad(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	if err = h.cmds.DepleteLoad(c.Request.Context(), id); err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.q.GetLoad(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromLoadView(view))
}

// @Summary List loads for a drawer status
// @Description List loads in stacking order, optionally only the active ones
// @Tags drawer-status
// @Produce json
// @Param id path string true "Drawer status ID"
// @Param active query bool false "Only non-depleted loads"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drawer-status/{id}/loads [get]
func (h *DrawerStatusHandler) ListLoads(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	onlyActive := c.Query("active") == "true"
	views, err := h.q.ListLoads(c.Request.Context(), id, onlyActive)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromLoadList(views))
}

// @Summary Get drawer status snapshot
// @Description Get the current status snapshot of a drawer
// @Tags drawer-status
// @Produce json
// @Param drawerId path string true "Drawer ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drawer-status/drawer/{drawerId} [get]
func (h *DrawerStatusHandler) GetByDrawer(c *gin.Context) {
	drawerID, err := uuid.Parse(c.Param("drawerId"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	view, err := h.q.GetSnapshotByDrawer(c.Request.Context(), drawerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromSnapshotView(view))
}

// @Summary Get drawer status
// @Description Get a drawer status snapshot by its own ID
// @Tags drawer-status
// @Produce json
// @Param id path string true "Drawer status ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drawer-status/{id} [get]
func (h *DrawerStatusHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	view, err := h.q.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromSnapshotView(view))
}
