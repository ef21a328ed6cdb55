package employee

import (
	"bytes"
	"net/http"

	employeeerrors "go-roster/internal/employee/errors"
	"go-roster/internal/report"
	"go-roster/internal/shared/apperror"
	"go-roster/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	renderers map[string]report.Renderer
	logger    *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{
		service: service,
		renderers: map[string]report.Renderer{
			"html": report.NewHTML(),
			"pdf":  report.NewPDF(),
		},
		logger: l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindQuery(c *gin.Context) (ListQuery, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http employee query validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return q, false
	}
	return q, true
}

func (h *Handler) GetAll(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	res, err := h.service.List(c.Request.Context(), q.Filter())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := ListMeta{
		Total:    res.Summary.Total,
		Active:   res.Summary.Active,
		Inactive: res.Summary.Inactive,
		Matched:  len(res.Employees),
	}
	response.Success(c, http.StatusOK, res.Employees, meta)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	empl, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, empl, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	empl, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, empl, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	empl, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, empl, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee status bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	empl, err := h.service.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, empl, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// Report renders the current view as a printable document. The summary
// counts describe the rendered rows only.
func (h *Handler) Report(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}

	format := q.Format
	if format == "" {
		format = "html"
	}
	renderer, ok := h.renderers[format]
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrInvalidReportFormat)
		return
	}

	rep, err := h.service.Report(c.Request.Context(), q.Filter())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, rep); err != nil {
		h.logger.Error("render employee report failed", zap.String("format", format), zap.Error(err))
		h.writeServiceError(c, apperror.Internal(err))
		return
	}

	c.Header("Content-Disposition", `inline; filename="employee-report.`+format+`"`)
	c.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
}
