// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// Freedge is one community refrigerator installation and its caretaker contact record.
// A zero civil.Date means the date is not known.
type Freedge struct {
	ID                 int64         // Store-assigned identity, zero until first insert.
	ProjectName        string        // Natural key used to match entries across imports.
	NetworkName        string        // The organizing network.
	CaretakerName      string        // The person looking after the freedge.
	Address            Address       // Where the freedge is installed.
	DateInstalled      civil.Date    // Installation date, zero when unknown.
	PermissionToNotify bool          // Whether the caretaker agreed to be contacted.
	ContactMethod      ContactMethod // The caretaker's preferred channel.
	PhoneNumber        string        // SMS destination, may be empty.
	EmailAddress       string        // Email destination, may be empty.
	Status             Status        // Current activity state.
	LastStatusUpdate   civil.Date    // Last confirmation, zero when never confirmed.
}

// HasID reports whether the entry has been persisted.
func (f *Freedge) HasID() bool {
	return f.ID != 0
}

// DaysSinceLastUpdate returns the whole days between the last confirmation and today.
// It reports false for unknown entries or entries that were never confirmed.
// Future-dated confirmations count as zero days.
func (f *Freedge) DaysSinceLastUpdate(today civil.Date) (int, bool) {
	if f.Status == StatusUnknown || f.LastStatusUpdate.IsZero() {
		return 0, false
	}

	return max(0, today.DaysSince(f.LastStatusUpdate)), true
}

// CanNotify reports whether the caretaker consented to notifications.
func (f *Freedge) CanNotify() bool {
	return f.PermissionToNotify
}

// Advance returns a copy of the entry moved to status and confirmed today.
func (f *Freedge) Advance(status Status, today civil.Date) *Freedge {
	next := *f
	next.Status = status
	next.LastStatusUpdate = today

	return &next
}

// ContactDestination returns the phone number or email address matching the preferred method.
func (f *Freedge) ContactDestination() string {
	if f.ContactMethod == ContactEmail {
		return f.EmailAddress
	}

	return f.PhoneNumber
}

// Detail renders every field for operator review.
func (f *Freedge) Detail() string {
	var b strings.Builder

	id := NotGiven
	if f.HasID() {
		id = strconv.FormatInt(f.ID, 10)
	}

	fmt.Fprintf(&b, "Database ID: %s\n", id)
	fmt.Fprintf(&b, "Project Name: %s\n", orNotGiven(f.ProjectName))
	fmt.Fprintf(&b, "Network Name: %s\n", orNotGiven(f.NetworkName))
	fmt.Fprintf(&b, "Caretaker: %s\n", orNotGiven(f.CaretakerName))
	fmt.Fprintf(&b, "Location: %s\n", f.Address.String())
	fmt.Fprintf(&b, "Date Installed: %s\n", FormatDate(f.DateInstalled))
	fmt.Fprintf(&b, "Permission to Notify: %s\n", formatBool(f.PermissionToNotify))
	fmt.Fprintf(&b, "Preferred Contact Method: %s\n", f.ContactMethod)
	fmt.Fprintf(&b, "Phone Number: %s\n", orNotGiven(f.PhoneNumber))
	fmt.Fprintf(&b, "Email Address: %s\n", orNotGiven(f.EmailAddress))
	fmt.Fprintf(&b, "Status: %s\n", f.Status)
	fmt.Fprintf(&b, "Last Status Update: %s", FormatDate(f.LastStatusUpdate))

	return b.String()
}

// FormatDate renders a calendar date, or NotGiven for the zero date.
func FormatDate(d civil.Date) string {
	if d.IsZero() {
		return NotGiven
	}

	return d.String()
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}

	return "No"
}

func orNotGiven(s string) string {
	if s == "" {
		return NotGiven
	}

	return s
}
