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

// Drawers and employees are reference data: thin CRUD the load tracker and
// the ledger validate against.

type ReferenceHandler struct {
	cmds      commands.ReferenceCommands
	drawers   queries.DrawerQueries
	employees queries.EmployeeQueries
}

func NewReferenceHandler(cmds commands.ReferenceCommands, drawers queries.DrawerQueries, employees queries.EmployeeQueries) *ReferenceHandler {
	return &ReferenceHandler{cmds: cmds, drawers: drawers, employees: employees}
}

// @Summary Create drawer
// @Tags drawers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDrawerRequest true "Create drawer request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drawers [post]
func (h *ReferenceHandler) CreateDrawer(c *gin.Context) {
	var req reqdto.CreateDrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidationError(c, err)
		return
	}
	id, err := h.cmds.CreateDrawer(c.Request.Context(), req.ToParams())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.drawers.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusCreated, resdto.FromDrawerView(view))
}

// @Summary Get drawer
// @Tags drawers
// @Produce json
// @Param id path string true "Drawer ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drawers/{id} [get]
func (h *ReferenceHandler) GetDrawer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	view, err := h.drawers.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromDrawerView(view))
}

// @Summary List drawers
// @Tags drawers
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /drawers [get]
func (h *ReferenceHandler) ListDrawers(c *gin.Context) {
	views, err := h.drawers.List(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromDrawerList(views))
}

// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEmployeeRequest true "Create employee request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /employees [post]
func (h *ReferenceHandler) CreateEmployee(c *gin.Context) {
	var req reqdto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidationError(c, err)
		return
	}
	id, err := h.cmds.CreateEmployee(c.Request.Context(), req.ToParams())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	view, err := h.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusCreated, resdto.FromEmployeeView(view))
}

// @Summary Get employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /employees/{id} [get]
func (h *ReferenceHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortValidationError(c, err)
		return
	}
	view, err := h.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromEmployeeView(view))
}

// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /employees [get]
func (h *ReferenceHandler) ListEmployees(c *gin.Context) {
	views, err := h.employees.List(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resdto.Success(c, http.StatusOK, resdto.FromEmployeeList(views))
}
