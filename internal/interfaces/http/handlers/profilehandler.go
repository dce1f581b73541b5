package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	profileApp "vita/internal/application/profile"
	"vita/internal/application/profile/dto"
	"vita/internal/shared/config"
	"vita/internal/shared/errors"
	"vita/internal/shared/logger"
	"vita/internal/shared/utils"
)

type ProfileHandler struct {
	service   *profileApp.Service
	cookieCfg *config.CookieConfig
	logger    logger.Interface
}

func NewProfileHandler(service *profileApp.Service, cookieCfg *config.CookieConfig, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		service:   service,
		cookieCfg: cookieCfg,
		logger:    logger,
	}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create profile", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Profile created successfully")
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profiles retrieved", profiles)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", result)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", result)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Activate makes the profile the browser's active one by setting the
// signed profile cookie.
func (h *ProfileHandler) Activate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Activate(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetActiveProfileCookie(c, h.cookieCfg, result.Token, result.ExpiresAt)
	utils.SuccessResponse(c, http.StatusOK, "Profile activated", result)
}

// Deactivate clears the active-profile cookie.
func (h *ProfileHandler) Deactivate(c *gin.Context) {
	utils.ClearActiveProfileCookie(c, h.cookieCfg)
	utils.NoContentResponse(c)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
