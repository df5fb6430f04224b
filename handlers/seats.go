package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyretail/models"
	"skyretail/utils"
)

// AutoAssignSeats handles POST /api/shopping/sessions/:sessionID/seats/auto.
// The caller supplies the seat maps of the segments to assign plus the
// id map for seat-implied special services.
func (h *ShoppingHandler) AutoAssignSeats(c *gin.Context) {
	var body struct {
		Version        int                   `json:"version" binding:"required"`
		SeatMaps       []models.SeatMap      `json:"seatMaps" binding:"required"`
		SeatServiceIDs models.SeatServiceIDs `json:"seatServiceIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.SessionSvc.AutoAssignSeats(c.Param("sessionID"), body.Version, body.SeatMaps, body.SeatServiceIDs)
	if err != nil {
		h.writeSessionError(c, "AutoAssignSeats", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSeat handles POST /api/shopping/sessions/:sessionID/seats.
func (h *ShoppingHandler) SelectSeat(c *gin.Context) {
	var body struct {
		Version    int         `json:"version" binding:"required"`
		SegmentRef string      `json:"segmentRef" binding:"required"`
		PaxRef     string      `json:"paxRef" binding:"required"`
		Seat       models.Seat `json:"seat" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.SessionSvc.SelectSeat(c.Param("sessionID"), body.Version, body.SegmentRef, body.Seat, body.PaxRef)
	if err != nil {
		h.writeSessionError(c, "SelectSeat", err)
		return
	}
	c.JSON(http.StatusOK, session)
}
