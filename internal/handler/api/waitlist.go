package api

import (
	"errors"
	"net/http"

	reqdto "waitline/internal/handler/dto/request"
	resdto "waitline/internal/handler/dto/response"
	"waitline/internal/handler/middleware"
	"waitline/internal/usecase/commands"
	"waitline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WaitlistHandler struct {
	waitlistCommands commands.WaitlistCommands
	waitlistQueries  queries.WaitlistQueries
}

func NewWaitlistHandler(waitlistCommands commands.WaitlistCommands, waitlistQueries queries.WaitlistQueries) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistCommands: waitlistCommands,
		waitlistQueries:  waitlistQueries,
	}
}

// @Summary Join the waiting list
// @Description Add the authenticated customer's party to the waiting list
// @Tags waitlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.JoinRequest true "Party details"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} resdto.Envelope
// @Failure 401 {object} map[string]string
// @Router /waitlist/join [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid request format", nil))
		return
	}

	result, err := h.waitlistCommands.Join(c.Request.Context(), userID, req.ToParty())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrQueueFull):
			c.JSON(http.StatusBadRequest, resdto.Failure("Waiting list is full", nil))
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, resdto.Failure("Invalid request data", nil))
		default:
			c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error", nil))
		}
		return
	}

	if result.AlreadyQueued {
		// Duplicate joins do not create a second entry; echo the existing one.
		c.JSON(http.StatusBadRequest, resdto.Failure("Already in waiting list", resdto.FromJoinResult(result)))
		return
	}

	c.JSON(http.StatusCreated, resdto.Success("Added to waiting list", resdto.FromJoinResult(result)))
}

// @Summary Get own waiting status
// @Description Current position and estimated wait for the caller's active entry
// @Tags waitlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /waitlist/status [get]
func (h *WaitlistHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status, err := h.waitlistQueries.StatusByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrNotInQueue) {
			c.JSON(http.StatusNotFound, resdto.Failure("Not in waiting list", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error", nil))
		return
	}

	c.JSON(http.StatusOK, resdto.Success("", status))
}

// @Summary Leave the waiting list
// @Description Cancel the caller's own active entry
// @Tags waitlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Router /waitlist/leave [delete]
func (h *WaitlistHandler) Leave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	record, err := h.waitlistCommands.Cancel(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoActiveEntry):
			c.JSON(http.StatusNotFound, resdto.Failure("Not in waiting list", nil))
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, resdto.Failure("Entry can no longer be cancelled", nil))
		default:
			c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error", nil))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.Success("Removed from waiting list", resdto.FromEntryRecord(record)))
}

// @Summary List active entries
// @Description All waiting and notified entries in arrival order (staff only)
// @Tags waitlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} map[string]string
// @Router /waitlist/list [get]
func (h *WaitlistHandler) List(c *gin.Context) {
	entries, err := h.waitlistQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error", nil))
		return
	}

	if entries == nil {
		entries = []*queries.WaitlistEntryView{}
	}
	c.JSON(http.StatusOK, resdto.Success("", resdto.ListData{
		Count:   len(entries),
		Entries: entries,
	}))
}

// @Summary Notify a waiting party
// @Description Mark a waiting entry as notified that its table is ready (staff only)
// @Tags waitlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Router /waitlist/notify/{id} [put]
func (h *WaitlistHandler) Notify(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid entry ID", nil))
		return
	}

	record, err := h.waitlistCommands.Notify(c.Request.Context(), entryID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.Success("Customer notified", resdto.FromEntryRecord(record)))
}

// @Summary Seat a party
// @Description Mark a waiting or notified entry as seated (staff only)
// @Tags waitlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} resdto.Envelope
// @Failure 409 {object} resdto.Envelope
// @Router /waitlist/seat/{id} [put]
func (h *WaitlistHandler) Seat(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid entry ID", nil))
		return
	}

	record, err := h.waitlistCommands.Seat(c.Request.Context(), entryID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.Success("Customer seated", resdto.FromEntryRecord(record)))
}

func (h *WaitlistHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, resdto.Failure("Waitlist entry not found", nil))
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusConflict, resdto.Failure("Entry is not in a valid state for this operation", nil))
	default:
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error", nil))
	}
}
