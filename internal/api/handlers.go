package api

import (
	"encoding/json"
	"net/http"

	"wedding-api/internal/middleware"
	"wedding-api/internal/models"
)

func (rt *Router) handleGetGuests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	guests, err := rt.guests.List(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

func (rt *Router) handleGetRSVPs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	rsvps, err := rt.rsvps.List(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rsvps)
}

func (rt *Router) handleGetFAQs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	faqs, err := rt.faqs.List(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, faqs)
}

func (rt *Router) handleGetRoleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	cfg, err := rt.roles.Get(r.Context())
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (rt *Router) handleSaveGuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		GuestData models.Guest `json:"guestData"`
		IsUpdate  bool         `json:"isUpdate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid guest data: pin, name, and role are required"})
		return
	}
	msg, err := rt.guests.Save(r.Context(), req.GuestData, req.IsUpdate)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: msg})
}

func (rt *Router) handleSaveRSVP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		RSVPData models.RSVP `json:"rsvpData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid RSVP data"})
		return
	}
	msg, err := rt.rsvps.Save(r.Context(), req.RSVPData)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: msg})
}

func (rt *Router) handleSaveFAQs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		FAQsData []models.FAQ `json:"faqsData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid FAQs data: must be an array"})
		return
	}
	msg, err := rt.faqs.Save(r.Context(), req.FAQsData)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: msg})
}

func (rt *Router) handleDeleteGuest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	pin := r.URL.Query().Get("pin")
	rt.auditDelete(r, "guest", pin)
	msg, err := rt.guests.Delete(r.Context(), pin)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: msg})
}

func (rt *Router) handleDeleteRSVP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	pin := r.URL.Query().Get("pin")
	rt.auditDelete(r, "rsvp", pin)
	msg, err := rt.rsvps.Delete(r.Context(), pin, r.URL.Query().Get("submitted_at"))
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: msg})
}

func (rt *Router) handleLogGuestLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "PIN is required"})
		return
	}
	msg, err := rt.guests.LogLogin(r.Context(), req.Pin)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: msg})
}

func (rt *Router) handleValidateAdminPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Password is required"})
		return
	}
	token, err := rt.admin.Validate(req.Password)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Token: token})
}

// auditDelete records who is deleting what; endpoints are not gated, so the
// admin-session flag is the only attribution available.
func (rt *Router) auditDelete(r *http.Request, entity, pin string) {
	rt.log.Info().
		Str("entity", entity).
		Str("pin", pin).
		Bool("admin_session", middleware.IsAdmin(r.Context())).
		Msg("delete requested")
}
