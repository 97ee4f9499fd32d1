package controller

import (
	"net/http"
	"time"

	"github.com/Circulx/Profile-management/internal/errors"
	"github.com/Circulx/Profile-management/internal/middleware"
	"github.com/Circulx/Profile-management/internal/session"
	"github.com/Circulx/Profile-management/pkg/util"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessions    *session.Manager
	tokenSecret string
	tokenExpiry time.Duration
}

func NewSessionController(sessions *session.Manager, tokenSecret string, tokenExpiry time.Duration) *SessionController {
	return &SessionController{
		sessions:    sessions,
		tokenSecret: tokenSecret,
		tokenExpiry: tokenExpiry,
	}
}

type AdvanceRequest struct {
	Step string `json:"step" binding:"required"`
}

// CreateSession starts a fresh wizard session and returns the bearer
// token the client presents on subsequent requests.
func (ctrl *SessionController) CreateSession(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	state, err := ctrl.sessions.Create(c.Request.Context())
	if err != nil {
		log.Error("Failed to create wizard session", err, nil)
		errors.InternalError(c, "Failed to create session")
		return
	}

	token, err := util.GenerateSessionToken(state.ID, ctrl.tokenSecret, ctrl.tokenExpiry)
	if err != nil {
		log.Error("Failed to mint session token", err, map[string]interface{}{
			"session_id": state.ID,
		})
		errors.InternalError(c, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Session created successfully",
		"session": state,
		"token":   token,
	})
}

// CurrentSession returns the authoritative wizard state for the token
func (ctrl *SessionController) CurrentSession(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, _ := middleware.GetSessionID(c)
	state, err := ctrl.sessions.Current(c.Request.Context(), sessionID)
	if err != nil {
		if err == session.ErrSessionNotFound {
			errors.NotFound(c, errors.SessionNotFound, "Session not found")
			return
		}
		log.Error("Failed to load wizard session", err, map[string]interface{}{
			"session_id": sessionID,
		})
		errors.InternalError(c, "Failed to load session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": state,
	})
}

// AdvanceSession tries to move the active step. A target that is neither
// completed nor next in sequence is ignored; the response always carries
// the authoritative state so the client re-renders from it.
func (ctrl *SessionController) AdvanceSession(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "A step name is required")
		return
	}

	step, err := session.ParseStep(req.Step)
	if err != nil {
		errors.BadRequest(c, errors.SessionInvalidStep, "Unknown wizard step")
		return
	}

	sessionID, _ := middleware.GetSessionID(c)
	state, moved, err := ctrl.sessions.Advance(c.Request.Context(), sessionID, step)
	if err != nil {
		if err == session.ErrSessionNotFound {
			errors.NotFound(c, errors.SessionNotFound, "Session not found")
			return
		}
		log.Error("Failed to advance wizard session", err, map[string]interface{}{
			"session_id": sessionID,
			"step":       step,
		})
		errors.InternalError(c, "Failed to advance session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": state,
		"moved":   moved,
	})
}
