package services

import (
	"context"
	"fmt"
	"time"

	"wedding-api/internal/models"
)

// GuestStore is the persistence surface the guest service needs: the whole
// collection in, the whole collection out, with the sha tying the two together.
type GuestStore interface {
	Load(ctx context.Context) ([]models.Guest, string, error)
	Save(ctx context.Context, guests []models.Guest, sha, message string) error
}

type GuestService struct {
	store GuestStore
	now   func() time.Time
}

func NewGuestService(store GuestStore) *GuestService {
	return &GuestService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// List returns every guest, or an empty slice when the file does not exist yet.
func (s *GuestService) List(ctx context.Context) ([]models.Guest, error) {
	guests, _, err := s.store.Load(ctx)
	return guests, err
}

func validPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Save inserts a new guest or, with isUpdate, replaces an existing one keyed
// by PIN. Returns the user-facing success message.
func (s *GuestService) Save(ctx context.Context, guest models.Guest, isUpdate bool) (string, error) {
	if guest.Pin == "" || guest.Name == "" || guest.Role == "" {
		return "", NewInvalidError("Invalid guest data: pin, name, and role are required")
	}
	if !validPin(guest.Pin) {
		return "", NewInvalidError("PIN must be exactly 4 digits")
	}
	if len(guest.GuestNames) == 0 {
		return "", NewInvalidError("At least one guest name is required")
	}
	if !models.ValidRole(guest.Role) {
		return "", NewInvalidError("Invalid role. Must be one of: day_guest_staying, day_guest_not_staying, evening_guest")
	}
	guest.HasRoom = guest.Role == models.RoleDayGuestStaying

	guests, sha, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	idx := findGuest(guests, guest.Pin)
	if !isUpdate {
		if idx != -1 {
			return "", NewConflictError("A guest with this PIN already exists")
		}
		guests = append(guests, guest)
		if err := s.store.Save(ctx, guests, sha, "Added new guest"); err != nil {
			return "", err
		}
		return "Guest added", nil
	}

	if idx == -1 {
		return "", NewNotFoundError("Guest not found")
	}
	guests[idx] = guest
	if err := s.store.Save(ctx, guests, sha, "Updated guest"); err != nil {
		return "", err
	}
	return "Guest updated", nil
}

// Delete removes the guest with the given PIN.
func (s *GuestService) Delete(ctx context.Context, pin string) (string, error) {
	if pin == "" {
		return "", NewInvalidError("PIN is required")
	}
	guests, sha, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	idx := findGuest(guests, pin)
	if idx == -1 {
		return "", NewNotFoundError("Guest not found")
	}
	guests = append(guests[:idx], guests[idx+1:]...)
	if err := s.store.Save(ctx, guests, sha, "Deleted guest"); err != nil {
		return "", err
	}
	return "Guest deleted", nil
}

// LogLogin appends a login audit entry to the guest's logon history.
func (s *GuestService) LogLogin(ctx context.Context, pin string) (string, error) {
	if pin == "" {
		return "", NewInvalidError("PIN is required")
	}
	guests, sha, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	idx := findGuest(guests, pin)
	if idx == -1 {
		return "", NewNotFoundError("Guest not found")
	}
	now := s.now()
	guests[idx].Logon = append(guests[idx].Logon, models.LogonEntry{
		Timestamp: now.Format(time.RFC3339),
		Date:      now.Format("02/01/2006"),
		Time:      now.Format("15:04:05"),
	})
	msg := fmt.Sprintf("Logged guest login for PIN %s", pin)
	if err := s.store.Save(ctx, guests, sha, msg); err != nil {
		return "", err
	}
	return "Login logged successfully", nil
}

func findGuest(guests []models.Guest, pin string) int {
	for i, g := range guests {
		if g.Pin == pin {
			return i
		}
	}
	return -1
}
