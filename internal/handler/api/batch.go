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

type BatchHandler struct {
	cmds commands.BatchCommands
	q    queries.BatchQueries
}

func NewBatchHandler(cmds commands.BatchCommands, q queries.BatchQueries) *BatchHandler {
	return &BatchHandler{cmds: cmds, q: q}
}

// @Summary Register item batch
// @Description Register a newly received item batch; status starts as available
// @Tags items
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterBatchRequest true "Register batch request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items [post]
func (h *BatchHandler) Register(c *gin.Context) {
	var req reqdto.RegisterBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidationError(c, err)
		return
	}
	id, err := h.cmds.RegisterBatch(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusCreated, resdto.FromBatchView(view))
}

// @Summary Get item batch
// @Description Get an item batch by ID
// @Tags items
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *BatchHandler) Get(c *gin.Context) {
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
	resdto.Success(c, http.StatusOK, resdto.FromBatchView(view))
}

// @Summary List item batches
// @Description List all registered item batches
// @Tags items
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /items [get]
func (h *BatchHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromBatchList(views))
}

// @Summary Update batch status
// @Description Transition a batch between available, in_use and depleted
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Batch ID"
// @Param request body reqdto.UpdateBatchStatusRequest true "Status update request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/status [patch]
func (h *BatchHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	var req reqdto.UpdateBatchStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortValidationError(c, bindErr)
		return
	}
	next, err := req.ToDomain()
	if err != nil {
		abortValidationError(c, err)
		return
	}
	if err = h.cmds.TransitionStatus(c.Request.Context(), id, next); err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromBatchView(view))
}
