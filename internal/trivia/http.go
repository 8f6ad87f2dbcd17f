package trivia

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the trivia REST endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the trivia HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register mounts the trivia routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/categories", h.HandleCategories)
	mux.HandleFunc("/categories/{id}/questions", h.HandleCategoryQuestions)
	mux.HandleFunc("/questions", h.HandleQuestions)
	mux.HandleFunc("/questions/search", h.HandleSearch)
	mux.HandleFunc("/questions/{id}", h.HandleQuestion)
	mux.HandleFunc("/quizzes", h.HandleQuiz)
}

// HandleCategories serves GET /categories.
func (h *HTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	payload, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}

// HandleQuestions serves GET /questions?page=N and POST /questions.
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		page := ParsePage(r.URL.Query().Get("page"))
		payload, err := h.svc.Questions(r.Context(), page)
		if err != nil {
			h.respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, payload)

	case http.MethodPost:
		req, err := DecodeCreateQuestion(r.Body)
		if err != nil {
			h.respondError(w, err)
			return
		}
		created, err := h.svc.CreateQuestion(r.Context(), req)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.logger.Info().Int64("question_id", created.ID).Msg("question created")
		respondJSON(w, http.StatusOK, SuccessPayload{Success: true})

	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// HandleQuestion serves GET and DELETE /questions/{id}.
func (h *HTTPHandler) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		payload, err := h.svc.Question(r.Context(), id)
		if err != nil {
			h.respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, payload)

	case http.MethodDelete:
		if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
			h.respondError(w, err)
			return
		}
		h.logger.Info().Int64("question_id", id).Msg("question deleted")
		respondJSON(w, http.StatusOK, SuccessPayload{Success: true})

	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// HandleSearch serves POST /questions/search.
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	term, err := DecodeSearchTerm(r.Body)
	if err != nil {
		h.respondError(w, err)
		return
	}
	payload, err := h.svc.Search(r.Context(), term)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}

// HandleCategoryQuestions serves GET /categories/{id}/questions?page=N.
func (h *HTTPHandler) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))
	payload, err := h.svc.CategoryQuestions(r.Context(), id, page)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}

// HandleQuiz serves POST /quizzes.
func (h *HTTPHandler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	req, err := DecodeQuizRequest(r.Body)
	if err != nil {
		h.respondError(w, err)
		return
	}
	result, err := h.svc.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, err error) {
	kind := KindOf(err)
	if kind == KindBadRequest || kind == KindUnprocessable {
		h.logger.Debug().Err(err).Str("kind", kind.String()).Msg("request rejected")
	}
	httperrors.RespondError(w, kind.Status())
}

// pathID parses the {id} wildcard. Ids are non-negative integers.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
