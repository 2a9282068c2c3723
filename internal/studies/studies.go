package studies

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"Floatex/internal/auth"
	floater "Floatex/internal/calc/floater"
	"Floatex/internal/repo"

	"github.com/gorilla/mux"
)

// Handler persists evaluated floater studies per authenticated user.
type Handler struct {
	Repo repo.Repository
}

type saveRequest struct {
	Name   string         `json:"name"`
	Config floater.Config `json:"config"`
}

type saveResponse struct {
	ID     int            `json:"id"`
	Result floater.Result `json:"result"`
}

// Save evaluates the submitted configuration and stores config and result
// under the given name. The evaluation runs here so a stored study can never
// hold a result that disagrees with its config.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Study name required", http.StatusBadRequest)
		return
	}

	res, err := floater.Evaluate(req.Config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfgJSON, err := json.Marshal(req.Config)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	resJSON, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	id, err := h.Repo.SaveStudy(r.Context(), userID, req.Name, cfgJSON, resJSON)
	if err != nil {
		log.Printf("SaveStudy: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListStudies(r.Context(), userID)
	if err != nil {
		log.Printf("ListStudies: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []repo.StudySummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid study id", http.StatusBadRequest)
		return
	}

	study, err := h.Repo.GetStudy(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Study not found", http.StatusNotFound)
			return
		}
		log.Printf("GetStudy: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(study)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid study id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteStudy(r.Context(), userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Study not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteStudy: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
