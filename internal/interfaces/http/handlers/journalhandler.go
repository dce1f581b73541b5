package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	journalApp "vita/internal/application/journal"
	"vita/internal/application/journal/dto"
	"vita/internal/shared/biztime"
	"vita/internal/shared/errors"
	"vita/internal/shared/logger"
	"vita/internal/shared/utils"
)

type JournalHandler struct {
	service *journalApp.Service
	logger  logger.Interface
}

func NewJournalHandler(service *journalApp.Service, logger logger.Interface) *JournalHandler {
	return &JournalHandler{
		service: service,
		logger:  logger,
	}
}

func (h *JournalHandler) CreateMood(c *gin.Context) {
	userID, _, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	var req dto.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.CreateMood(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Mood entry created")
}

func (h *JournalHandler) GetMood(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	result, err := h.service.GetMood(c.Request.Context(), userID, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Mood entry retrieved", result)
}

func (h *JournalHandler) ListMoods(c *gin.Context) {
	userID, from, to, ok := listRequest(c)
	if !ok {
		return
	}
	results, err := h.service.ListMoods(c.Request.Context(), userID, from, to)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Mood entries retrieved", results)
}

func (h *JournalHandler) UpdateMood(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	var req dto.UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	result, err := h.service.UpdateMood(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Mood entry updated", result)
}

func (h *JournalHandler) DeleteMood(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMood(c.Request.Context(), userID, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *JournalHandler) CreateMedication(c *gin.Context) {
	userID, _, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	var req dto.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.CreateMedication(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Medication entry created")
}

func (h *JournalHandler) GetMedication(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	result, err := h.service.GetMedication(c.Request.Context(), userID, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Medication entry retrieved", result)
}

func (h *JournalHandler) ListMedications(c *gin.Context) {
	userID, from, to, ok := listRequest(c)
	if !ok {
		return
	}
	results, err := h.service.ListMedications(c.Request.Context(), userID, from, to)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Medication entries retrieved", results)
}

func (h *JournalHandler) UpdateMedication(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	var req dto.UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	result, err := h.service.UpdateMedication(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Medication entry updated", result)
}

func (h *JournalHandler) DeleteMedication(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMedication(c.Request.Context(), userID, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *JournalHandler) CreateSeizure(c *gin.Context) {
	userID, _, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	var req dto.CreateSeizureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.CreateSeizure(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Seizure entry created")
}

func (h *JournalHandler) GetSeizure(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	result, err := h.service.GetSeizure(c.Request.Context(), userID, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Seizure entry retrieved", result)
}

func (h *JournalHandler) ListSeizures(c *gin.Context) {
	userID, from, to, ok := listRequest(c)
	if !ok {
		return
	}
	results, err := h.service.ListSeizures(c.Request.Context(), userID, from, to)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Seizure entries retrieved", results)
}

func (h *JournalHandler) UpdateSeizure(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	var req dto.UpdateSeizureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	result, err := h.service.UpdateSeizure(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Seizure entry updated", result)
}

func (h *JournalHandler) DeleteSeizure(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSeizure(c.Request.Context(), userID, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *JournalHandler) CreateCycle(c *gin.Context) {
	userID, _, ok := activeUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return
	}

	var req dto.CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.CreateCycle(c.Request.Context(), userID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Cycle entry created")
}

func (h *JournalHandler) GetCycle(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	result, err := h.service.GetCycle(c.Request.Context(), userID, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cycle entry retrieved", result)
}

func (h *JournalHandler) ListCycles(c *gin.Context) {
	userID, from, to, ok := listRequest(c)
	if !ok {
		return
	}
	results, err := h.service.ListCycles(c.Request.Context(), userID, from, to)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cycle entries retrieved", results)
}

func (h *JournalHandler) UpdateCycle(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	var req dto.UpdateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	result, err := h.service.UpdateCycle(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cycle entry updated", result)
}

func (h *JournalHandler) DeleteCycle(c *gin.Context) {
	userID, id, ok := entryRequest(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCycle(c.Request.Context(), userID, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// NoteHTML returns one entry's markdown note rendered to sanitized HTML.
// The entry kind comes from the route.
func (h *JournalHandler) NoteHTML(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, id, ok := entryRequest(c)
		if !ok {
			return
		}
		result, err := h.service.NoteHTML(c.Request.Context(), userID, kind, id)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Note rendered", result)
	}
}

// entryRequest reads the active user and :id path parameter, answering
// the error response itself on failure.
func entryRequest(c *gin.Context) (userID, id uint, ok bool) {
	userID, _, found := activeUser(c)
	if !found {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return 0, 0, false
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return userID, id, true
}

// listRequest reads the active user plus optional from/to query dates.
// The default window is the last 30 calendar days.
func listRequest(c *gin.Context) (userID uint, from, to time.Time, ok bool) {
	userID, _, found := activeUser(c)
	if !found {
		utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
		return 0, time.Time{}, time.Time{}, false
	}

	to = biztime.EndOfDayUTC(biztime.NowUTC())
	from = biztime.StartOfDayUTC(biztime.NowUTC().AddDate(0, 0, -30))

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid from date"))
			return 0, time.Time{}, time.Time{}, false
		}
		from = biztime.StartOfDayUTC(parsed)
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid to date"))
			return 0, time.Time{}, time.Time{}, false
		}
		to = biztime.EndOfDayUTC(parsed)
	}

	return userID, from, to, true
}
