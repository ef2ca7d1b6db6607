package quest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate-quests", h.GenerateQuests)
	r.Post("/refresh-quest", h.RefreshQuest)
	return r
}
