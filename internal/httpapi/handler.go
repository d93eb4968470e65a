package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"seller-be/internal/logger"
	"seller-be/internal/seller"
	"seller-be/internal/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 16

type Handler struct {
	svc seller.Service
}

func NewHandler(svc seller.Service) *Handler {
	return &Handler{svc: svc}
}

type createSellerRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	PasswordSalt string `json:"passwordSalt"`
}

type updateSellerRequest struct {
	Email        *string `json:"email"`
	PasswordHash *string `json:"passwordHash"`
	PasswordSalt *string `json:"passwordSalt"`
}

// sellerResponse never carries the hash or salt.
type sellerResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func toResponse(s *seller.Seller) sellerResponse {
	id, _ := s.ID()
	return sellerResponse{ID: id, Email: s.Email()}
}

// Routes registers the seller endpoints on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /sellers", h.createSeller)
	mux.HandleFunc("GET /sellers/{id}", h.getSeller)
	mux.HandleFunc("PUT /sellers/{id}", h.updateSeller)
	mux.HandleFunc("DELETE /sellers/{id}", h.deleteSeller)
	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *Handler) createSeller(w http.ResponseWriter, r *http.Request) {
	var req createSellerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s, err := h.svc.Register(r.Context(), req.Email, req.PasswordHash, req.PasswordSalt)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, toResponse(s))
}

func (h *Handler) getSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, toResponse(s))
}

func (h *Handler) updateSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateSellerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == nil && req.PasswordHash == nil && req.PasswordSalt == nil {
		utils.WriteJSONError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	s, err := h.svc.Update(r.Context(), id, seller.UpdateInput{
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		PasswordSalt: req.PasswordSalt,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, toResponse(s))
}

func (h *Handler) deleteSeller(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps service errors to HTTP status codes. Persistence
// failures are logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, seller.ErrSellerNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, seller.ErrEmailExists):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
		return
	}

	switch seller.KindOf(err) {
	case seller.KindInvalidArgument, seller.KindOutOfRange:
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case seller.KindPreconditionFailed:
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
	default:
		logger.FromCtx(r.Context()).Error("seller request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
