package http

import (
	"io"
	"net/http"

	"github.com/traduzo/traduzo-backend/internal/logger"
	"github.com/traduzo/traduzo-backend/internal/utils"
	"github.com/traduzo/traduzo-backend/models"
)

// maxImageUploadBytes caps multipart uploads on the OCR endpoint at 10MB.
const maxImageUploadBytes = 10 << 20

func (h *Handler) translateImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, "no image provided", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("missing image field")
		writeError(w, "no image provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading uploaded image failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	text, err := h.services.TranslationService.ExtractText(ctx, image)
	if err != nil {
		log.Err(err).Msg("text extraction failed")
		writeMappedError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.OCRResponse{OriginalText: text}, http.StatusOK)
}
