package generation

import (
	"github.com/go-chi/chi/v5"
)

// Routes registers the workspace content endpoints on a router already scoped
// to /projects/{projectID}.
func Routes(r chi.Router, h *Handler) {
	r.Post("/audio", h.UploadAudio)
	r.Put("/transcription", h.SaveTranscription)
	r.Post("/generate", h.Generate)
}
