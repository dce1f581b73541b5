package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	trackerUsecases "vita/internal/application/tracker/usecases"
	"vita/internal/shared/config"
	"vita/internal/shared/constants"
	apperrors "vita/internal/shared/errors"
	"vita/internal/shared/logger"
	"vita/internal/shared/utils"
)

type TrackerHandler struct {
	beginUC      BeginConnectionExecutor
	completeUC   CompleteConnectionExecutor
	syncUC       SyncExecutor
	statusUC     SyncStatusExecutor
	disconnectUC DisconnectExecutor
	recordsUC    RecordsExecutor
	profiles     ProfileReader
	tokens       ProfileTokenIssuer
	cookieCfg    *config.CookieConfig
	logger       logger.Interface
}

func NewTrackerHandler(
	beginUC BeginConnectionExecutor,
	completeUC CompleteConnectionExecutor,
	syncUC SyncExecutor,
	statusUC SyncStatusExecutor,
	disconnectUC DisconnectExecutor,
	recordsUC RecordsExecutor,
	profiles ProfileReader,
	tokens ProfileTokenIssuer,
	cookieCfg *config.CookieConfig,
	logger logger.Interface,
) *TrackerHandler {
	return &TrackerHandler{
		beginUC:      beginUC,
		completeUC:   completeUC,
		syncUC:       syncUC,
		statusUC:     statusUC,
		disconnectUC: disconnectUC,
		recordsUC:    recordsUC,
		profiles:     profiles,
		tokens:       tokens,
		cookieCfg:    cookieCfg,
		logger:       logger,
	}
}

// Connect starts the provider OAuth handoff and redirects the browser
// to the consent page.
func (h *TrackerHandler) Connect(c *gin.Context) {
	userID, userName, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	expecting := false
	if p, err := h.profiles.Get(c.Request.Context(), userID); err == nil && p != nil {
		expecting = p.Expecting
	}

	result, err := h.beginUC.Execute(c.Request.Context(), trackerUsecases.BeginConnectionCommand{
		UserID:    userID,
		UserName:  userName,
		Expecting: expecting,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

// Callback lands the browser after the provider consent page. It always
// answers with an HTML page: the request arrives as a top-level
// navigation, not an API call.
func (h *TrackerHandler) Callback(c *gin.Context) {
	cmd := trackerUsecases.CompleteConnectionCommand{
		State:         c.Query("state"),
		Code:          c.Query("code"),
		ProviderError: c.Query("error"),
	}
	if userID, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := userID.(uint); ok {
			cmd.ActiveUserID = id
		}
	}

	result, err := h.completeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.renderCallbackError(c, cmd.ProviderError, err)
		return
	}

	// The connecting user becomes the active profile again; the
	// redirect may have outlived the original cookie.
	if result.ReactivateUser || cmd.ActiveUserID == 0 {
		token, expiresAt, err := h.tokens.Generate(result.UserID, result.UserName)
		if err != nil {
			h.logger.Errorw("failed to reissue profile token", "user_id", result.UserID, "error", err)
		} else {
			utils.SetActiveProfileCookie(c, h.cookieCfg, token, expiresAt)
		}
	}

	h.renderCallbackSuccess(c, result.UserName)
}

type syncRequest struct {
	Days int `json:"days" binding:"omitempty,min=1,max=31"`
}

// Sync runs a synchronization pass and returns its outcome. A sync
// already running for the same profile answers 409.
func (h *TrackerHandler) Sync(c *gin.Context) {
	userID, userName, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponseWithError(c, err)
		return
	}

	outcome, err := h.syncUC.Execute(c.Request.Context(), trackerUsecases.SyncCommand{
		UserID:   userID,
		UserName: userName,
		Days:     req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSyncInProgress):
			utils.ErrorResponse(c, http.StatusConflict, "a sync is already running for this profile")
		case errors.Is(err, apperrors.ErrTransportUnreachable):
			// The outcome still describes the failed run.
			utils.SuccessResponse(c, http.StatusOK, "Sync failed", outcome)
		default:
			utils.ErrorResponseWithError(c, err)
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sync completed", outcome)
}

// Status reports connection state and data freshness.
func (h *TrackerHandler) Status(c *gin.Context) {
	userID, _, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	status, err := h.statusUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracker status retrieved", status)
}

// Records returns the synced data for all four domains over a range.
func (h *TrackerHandler) Records(c *gin.Context) {
	userID, from, to, ok := listRequest(c)
	if !ok {
		return
	}

	records, err := h.recordsUC.Execute(c.Request.Context(), userID, from, to)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Records retrieved", records)
}

// Disconnect deactivates the integration. Synced history stays.
func (h *TrackerHandler) Disconnect(c *gin.Context) {
	userID, _, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	if err := h.disconnectUC.Execute(c.Request.Context(), trackerUsecases.DisconnectCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// activeUser reads the authenticated profile from the request context.
func activeUser(c *gin.Context) (uint, string, bool) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, "", false
	}
	userID, ok := raw.(uint)
	if !ok {
		return 0, "", false
	}
	return userID, c.GetString("user_name"), true
}
