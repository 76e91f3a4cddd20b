package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/service"
	"github.com/MKhiriev/go-model-vault/internal/utils"
	"github.com/MKhiriev/go-model-vault/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemoryLimit bounds how much of a multipart body is held in memory
// while parsing; larger files spill to temporary disk storage.
const multipartMemoryLimit = 32 << 20

// listModels handles GET /api/models?page=&limit=.
func (h *Handler) listModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, pagination, err := h.services.ModelService.List(ctx, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result == nil {
		result = []models.Model3D{}
	}

	utils.WriteJSON(w, models.ModelListResponse{
		Models:     result,
		Pagination: pagination,
	}, http.StatusOK)
}

// getModel handles GET /api/models/{modelID}.
func (h *Handler) getModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	modelID, err := parseModelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	model, err := h.services.ModelService.Get(ctx, modelID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, model, http.StatusOK)
}

// uploadModel handles POST /api/models: a multipart form with the model file
// under "model" plus title, description, and tags fields.
func (h *Handler) uploadModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	// Cap the whole request before reading the body; the per-file limit is
	// enforced again in the service layer from the part header.
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadSize+multipartMemoryLimit)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		log.Err(err).Msg("parsing multipart form failed")
		writeError(w, r, service.ErrFileTooLarge)
		return
	}

	file, header, err := r.FormFile("model")
	if err != nil {
		log.Err(err).Msg("upload request carries no file")
		writeError(w, r, service.ErrNoFileProvided)
		return
	}
	defer file.Close()

	saved, err := h.services.ModelService.Upload(ctx, userID, models.Model3DUpload{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Tags:         parseTags(r.Form["tags"]),
		OriginalName: header.Filename,
		Size:         header.Size,
		Content:      file,
	})
	if err != nil {
		log.Err(err).Str("file_name", header.Filename).Msg("model upload failed")
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", saved.ID).Int64("user_id", userID).Msg("model uploaded")

	utils.WriteJSON(w, saved, http.StatusCreated)
}

// updateModel handles PUT /api/models/{modelID}: a partial JSON update where
// absent fields stay untouched.
func (h *Handler) updateModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	modelID, err := parseModelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.Model3DUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ModelService.Update(ctx, userID, modelID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteModel handles DELETE /api/models/{modelID}.
func (h *Handler) deleteModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	modelID, err := parseModelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ModelService.Delete(ctx, userID, modelID); err != nil {
		writeError(w, r, err)
		return
	}

	email, _ := utils.GetUserEmailFromContext(ctx)
	log.Info().Int64("model_id", modelID).Int64("user_id", userID).Str("email", email).Msg("model deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: "model deleted successfully"}, http.StatusOK)
}

// rateModel handles POST /api/models/{modelID}/rate. Rating the same model
// twice replaces the previous value.
func (h *Handler) rateModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	modelID, err := parseModelID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.RateRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	rating, err := h.services.ModelService.Rate(ctx, userID, modelID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rating, http.StatusOK)
}

// searchModels handles GET /api/models/search?query=&tag=. Both filters are
// optional.
func (h *Handler) searchModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.services.ModelService.Search(ctx, r.URL.Query().Get("query"), r.URL.Query().Get("tag"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result == nil {
		result = []models.Model3D{}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// topRatedModels handles GET /api/models/top-rated?limit=.
func (h *Handler) topRatedModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.services.ModelService.TopRated(ctx, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result == nil {
		result = []models.RatedModel3D{}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// parseModelID extracts and validates the {modelID} path parameter.
func parseModelID(r *http.Request) (int64, error) {
	modelID, err := strconv.ParseInt(chi.URLParam(r, "modelID"), 10, 64)
	if err != nil || modelID < 1 {
		return 0, ErrInvalidModelID
	}

	return modelID, nil
}

// parseTags normalises the "tags" form values: a JSON array string, repeated
// fields, and comma-separated lists are all accepted, blanks are dropped.
func parseTags(values []string) []string {
	tags := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)

		if strings.HasPrefix(value, "[") {
			var parsed []string
			if err := json.Unmarshal([]byte(value), &parsed); err == nil {
				for _, tag := range parsed {
					if tag = strings.TrimSpace(tag); tag != "" {
						tags = append(tags, tag)
					}
				}
				continue
			}
		}

		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return tags
}
