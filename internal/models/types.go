package models

// Role is the guest category driving section and FAQ visibility.
type Role string

const (
	RoleDayGuestStaying    Role = "day_guest_staying"
	RoleDayGuestNotStaying Role = "day_guest_not_staying"
	RoleEveningGuest       Role = "evening_guest"
)

// ValidRole reports whether r is one of the three guest categories.
func ValidRole(r Role) bool {
	switch r {
	case RoleDayGuestStaying, RoleDayGuestNotStaying, RoleEveningGuest:
		return true
	}
	return false
}

// LogonEntry is one append-only login audit record on a guest.
type LogonEntry struct {
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Guest is one invited party, identified by a 4-digit PIN.
type Guest struct {
	Pin        string       `json:"pin"`
	Name       string       `json:"name"`
	Role       Role         `json:"role"`
	HasRoom    bool         `json:"has_room"`
	GuestNames []string     `json:"guest_names"`
	Logon      []LogonEntry `json:"logon,omitempty"`
}

// AttendingGuest is one named attendee within an RSVP.
type AttendingGuest struct {
	Name                string `json:"name"`
	DietaryRequirements string `json:"dietary_requirements"`
}

// RSVP is a party's response, at most one per PIN.
// GuestsCount and DietaryRequirements are the pre-attending_guests format;
// they survive decoding so Normalize can migrate old records.
type RSVP struct {
	Pin             string           `json:"pin"`
	Name            string           `json:"name"`
	Attending       string           `json:"attending"`
	AttendingGuests []AttendingGuest `json:"attending_guests,omitempty"`
	CoachNeeded     string           `json:"coach_needed,omitempty"`
	Message         string           `json:"message,omitempty"`
	SubmittedAt     string           `json:"submitted_at"`

	GuestsCount         *int   `json:"guests_count,omitempty"`
	DietaryRequirements string `json:"dietary_requirements,omitempty"`
}

// Normalize upgrades a legacy record in place: guests_count is always dropped,
// the scalar dietary_requirements only once the per-guest format is present.
func (r *RSVP) Normalize() {
	r.GuestsCount = nil
	if len(r.AttendingGuests) > 0 {
		r.DietaryRequirements = ""
	}
}

// RoleFlags is per-role visibility for one section or FAQ question.
type RoleFlags struct {
	DayGuestStaying    bool `json:"day_guest_staying"`
	DayGuestNotStaying bool `json:"day_guest_not_staying"`
	EveningGuest       bool `json:"evening_guest"`
}

// FAQButton is a link button rendered under an FAQ answer.
type FAQButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// InfoBox is a highlighted note rendered under an FAQ answer.
type InfoBox struct {
	Text string `json:"text"`
}

// FAQ is one question/answer entry. ID is unique and immutable once assigned.
type FAQ struct {
	ID          string      `json:"id"`
	Question    string      `json:"question"`
	Answer      string      `json:"answer"`
	Order       int         `json:"order"`
	Roles       RoleFlags   `json:"roles"`
	Buttons     []FAQButton `json:"buttons,omitempty"`
	InfoBoxes   []InfoBox   `json:"infoBoxes,omitempty"`
	LargeMargin bool        `json:"largeMargin,omitempty"`
}

// RoleConfig maps section and FAQ-question names to per-role visibility.
type RoleConfig struct {
	Sections     map[string]RoleFlags `json:"sections"`
	FAQQuestions map[string]RoleFlags `json:"faqQuestions"`
}

var allRoles = RoleFlags{DayGuestStaying: true, DayGuestNotStaying: true, EveningGuest: true}

// DefaultRoleConfig is served when data/role-config.json does not exist yet.
func DefaultRoleConfig() RoleConfig {
	return RoleConfig{
		Sections: map[string]RoleFlags{
			"intro":     allRoles,
			"venue":     allRoles,
			"dresscode": allRoles,
			"schedule":  allRoles,
			"faq":       allRoles,
			"rsvp":      allRoles,
		},
		FAQQuestions: map[string]RoleFlags{
			"parking":       {DayGuestStaying: true, DayGuestNotStaying: true},
			"accommodation": {DayGuestStaying: true, DayGuestNotStaying: true},
			"carriages":     {DayGuestNotStaying: true, EveningGuest: true},
			"taxi":          {DayGuestNotStaying: true, EveningGuest: true},
			"gifts":         allRoles,
			"children":      allRoles,
		},
	}
}
