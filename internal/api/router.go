package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"wedding-api/internal/services"
)

type Router struct {
	guests *services.GuestService
	rsvps  *services.RSVPService
	faqs   *services.FAQService
	roles  *services.RoleConfigService
	admin  *services.AdminService
	log    zerolog.Logger
}

func NewRouter(
	guests *services.GuestService,
	rsvps *services.RSVPService,
	faqs *services.FAQService,
	roles *services.RoleConfigService,
	admin *services.AdminService,
	log zerolog.Logger,
) *Router {
	return &Router{guests: guests, rsvps: rsvps, faqs: faqs, roles: roles, admin: admin, log: log}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/get-guests", rt.handleGetGuests)                           // GET
	mux.HandleFunc("/api/get-rsvps", rt.handleGetRSVPs)                             // GET
	mux.HandleFunc("/api/get-faqs", rt.handleGetFAQs)                               // GET
	mux.HandleFunc("/api/get-role-config", rt.handleGetRoleConfig)                  // GET
	mux.HandleFunc("/api/save-guest", rt.handleSaveGuest)                           // POST
	mux.HandleFunc("/api/save-rsvp", rt.handleSaveRSVP)                             // POST
	mux.HandleFunc("/api/save-faqs", rt.handleSaveFAQs)                             // POST
	mux.HandleFunc("/api/delete-guest", rt.handleDeleteGuest)                       // DELETE
	mux.HandleFunc("/api/delete-rsvp", rt.handleDeleteRSVP)                         // DELETE
	mux.HandleFunc("/api/log-guest-login", rt.handleLogGuestLogin)                  // POST
	mux.HandleFunc("/api/validate-admin-password", rt.handleValidateAdminPassword)  // POST
}
