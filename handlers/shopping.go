package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skyretail/models"
	"skyretail/services/normalizer"
	"skyretail/services/pricereq"
	"skyretail/services/seating"
	"skyretail/services/shopping"
	"skyretail/utils"
)

// ShoppingHandler serves the shopping session endpoints.
type ShoppingHandler struct {
	SessionSvc shopping.ShoppingSessionService
	Logger     *zap.Logger
}

// NewShoppingHandler returns a ShoppingHandler.
func NewShoppingHandler(svc shopping.ShoppingSessionService, logger *zap.Logger) *ShoppingHandler {
	return &ShoppingHandler{SessionSvc: svc, Logger: logger}
}

// IngestResponse handles POST /api/shopping/responses. The body is the
// raw upstream shopping response document.
func (h *ShoppingHandler) IngestResponse(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "missing response document", "request body must carry the raw shopping response")
		return
	}

	session, err := h.SessionSvc.IngestResponse(string(raw))
	if err != nil {
		var perr *normalizer.ProtocolError
		if errors.As(err, &perr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":    "upstream response carried an error block",
				"codes":    perr.Codes,
				"messages": perr.Messages,
			})
			return
		}
		h.Logger.Error("IngestResponse: normalization failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to normalize response", err.Error())
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/shopping/sessions/:sessionID.
func (h *ShoppingHandler) GetSession(c *gin.Context) {
	session, err := h.SessionSvc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.writeSessionError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSelection handles PUT /api/shopping/sessions/:sessionID/selection.
func (h *ShoppingHandler) UpdateSelection(c *gin.Context) {
	var body struct {
		Version   int              `json:"version" binding:"required"`
		Selection models.Selection `json:"selection"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.SessionSvc.UpdateSelection(c.Param("sessionID"), body.Version, body.Selection)
	if err != nil {
		h.writeSessionError(c, "UpdateSelection", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// BuildPriceRequest handles POST /api/shopping/sessions/:sessionID/price-request.
func (h *ShoppingHandler) BuildPriceRequest(c *gin.Context) {
	req, err := h.SessionSvc.BuildPriceRequest(c.Param("sessionID"))
	if err != nil {
		var emptyErr *pricereq.EmptyAncillaryError
		if errors.As(err, &emptyErr) {
			h.Logger.Error("BuildPriceRequest: ancillary assembly produced nothing", zap.Error(err))
			utils.JSONError(c, http.StatusUnprocessableEntity, "ancillary selections produced no request items", err.Error())
			return
		}
		h.writeSessionError(c, "BuildPriceRequest", err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// StripCategory handles POST /api/shopping/sessions/:sessionID/strip-category.
// It implements the documented recovery after an upstream rejection of
// a previously built request: drop the offending category, rebuild once.
func (h *ShoppingHandler) StripCategory(c *gin.Context) {
	var body struct {
		Version  int                    `json:"version" binding:"required"`
		Category models.ServiceCategory `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	req, err := h.SessionSvc.StripCategory(c.Param("sessionID"), body.Version, body.Category)
	if err != nil {
		h.writeSessionError(c, "StripCategory", err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// CancelSession handles DELETE /api/shopping/sessions/:sessionID.
func (h *ShoppingHandler) CancelSession(c *gin.Context) {
	if err := h.SessionSvc.CancelSession(c.Param("sessionID")); err != nil {
		h.Logger.Error("CancelSession: failed to delete session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// writeSessionError maps typed service errors onto HTTP statuses. Only
// a genuine session miss answers 404; store failures and other unknown
// errors are server-side (500), not the caller's fault.
func (h *ShoppingHandler) writeSessionError(c *gin.Context, op string, err error) {
	var notFoundErr *shopping.SessionNotFoundError
	if errors.As(err, &notFoundErr) {
		utils.JSONError(c, http.StatusNotFound, "session not found or expired", err.Error())
		return
	}
	var staleErr *shopping.StaleVersionError
	if errors.As(err, &staleErr) {
		utils.JSONError(c, http.StatusConflict, "stale session version", err.Error())
		return
	}
	var restrictionErr *seating.RestrictionError
	if errors.As(err, &restrictionErr) {
		utils.JSONError(c, http.StatusConflict, "seat restricted", err.Error())
		return
	}
	var pricingErr *seating.PricingUnavailableError
	if errors.As(err, &pricingErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "seat pricing unavailable", err.Error())
		return
	}
	var shortageErr *seating.ShortageError
	if errors.As(err, &shortageErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "seat shortage",
			"reason":  shortageErr.Reason,
			"message": err.Error(),
		})
		return
	}
	h.Logger.Error(op+": session operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "session operation failed", err.Error())
}
