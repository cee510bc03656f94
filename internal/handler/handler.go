package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dealgrind/underwriting-service/internal/models"
	"github.com/dealgrind/underwriting-service/internal/repository"
	"github.com/dealgrind/underwriting-service/internal/service"
	"github.com/dealgrind/underwriting-service/internal/underwriting"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ComputeMetrics runs the engine over a form-shaped deal without storing it.
// Numeric fields may arrive as currency or percent strings; coercion absorbs
// them, so the only client error left is an unknown strategy tag.
func (h *Handler) ComputeMetrics(w http.ResponseWriter, r *http.Request) {
	var form map[string]any
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	analysis := underwriting.AnalysisFromForm(form)
	metrics, err := h.svc.Compute(analysis)
	if err != nil {
		if errors.Is(err, underwriting.ErrUnknownStrategy) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to compute metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

// CreateAnalysis stores a deal analysis with freshly computed metrics
func (h *Handler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string          `json:"name"`
		Analysis models.Analysis `json:"analysis"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sa, err := h.svc.CreateAnalysis(r.Context(), req.Name, &req.Analysis)
	if err != nil {
		if errors.Is(err, underwriting.ErrUnknownStrategy) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create analysis", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sa)
}

// ListAnalyses returns the caller's stored analyses
func (h *Handler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.svc.ListAnalyses(r.Context())
	if err != nil {
		http.Error(w, "Failed to list analyses", http.StatusInternalServerError)
		return
	}
	if analyses == nil {
		analyses = []*models.SavedAnalysis{}
	}
	writeJSON(w, http.StatusOK, analyses)
}

// GetAnalysis returns one stored analysis
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	sa, err := h.svc.GetAnalysis(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Analysis not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get analysis", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sa)
}

// DeleteAnalysis removes one stored analysis
func (h *Handler) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteAnalysis(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Analysis not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete analysis", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
