package quest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/config"
)

const (
	msgUnavailable     = "AI model is not available."
	msgInvalidBody     = "invalid request body"
	msgGoalRequired    = "A goal must be provided."
	msgRefreshRequired = "Missing required data for refresh."
	msgGenerateFailed  = "Failed to generate quests from AI."
	msgRefreshFailed   = "Failed to generate refreshed quest."
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuests(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if !h.service.Available() {
		config.Error(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for quest generation")
		config.Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	quests, err := h.service.GenerateQuests(r.Context(), req)
	if err != nil {
		h.writeFailure(w, r, err, msgGoalRequired, msgGenerateFailed)
		return
	}

	config.JSON(w, http.StatusOK, QuestSetResponse{Quests: quests})
}

func (h *Handler) RefreshQuest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if !h.service.Available() {
		config.Error(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	var req RefreshRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for quest refresh")
		config.Error(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	q, err := h.service.RefreshQuest(r.Context(), req)
	if err != nil {
		h.writeFailure(w, r, err, msgRefreshRequired, msgRefreshFailed)
		return
	}

	config.JSON(w, http.StatusOK, RefreshResponse{NewQuest: *q})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	provider := "ready"
	if !h.service.Available() {
		provider = "unavailable"
	}
	config.JSON(w, http.StatusOK, HealthResponse{Status: "ok", Provider: provider})
}

// writeFailure maps service errors to responses. Provider and model output
// details are logged only, never written to the client.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error, badRequestMsg, failedMsg string) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrValidation):
		log.WithError(err).Warn("Rejected quest request")
		config.Error(w, http.StatusBadRequest, badRequestMsg)
	case errors.Is(err, ErrProviderUnavailable):
		config.Error(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		log.WithError(err).Error(failedMsg)
		config.Error(w, http.StatusInternalServerError, failedMsg)
	}
}
