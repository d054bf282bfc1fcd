// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Field names in the order they are compared and displayed.
const (
	FieldDatabaseID       = "Database ID"
	FieldProjectName      = "Project Name"
	FieldNetworkName      = "Network Name"
	FieldCaretaker        = "Caretaker"
	FieldLocation         = "Location"
	FieldDateInstalled    = "Date Installed"
	FieldPermission       = "Permission to Notify"
	FieldContactMethod    = "Preferred Contact Method"
	FieldPhoneNumber      = "Phone Number"
	FieldEmailAddress     = "Email Address"
	FieldStatus           = "Status"
	FieldLastStatusUpdate = "Last Status Update"
)

// FieldChange is one differing field between two versions of an entry.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Comparison renders the change as an old/new pair.
func (c FieldChange) Comparison() string {
	return c.Field + "\nOld: " + c.Old + "\nNew: " + c.New
}

// Inline renders the change as a character diff, marking removals [-like this-] and additions {+like this+}.
func (c FieldChange) Inline() string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(c.Old, c.New, false))

	var out []byte
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			out = append(out, "[-"+d.Text+"-]"...)
		case diffmatchpatch.DiffInsert:
			out = append(out, "{+"+d.Text+"+}"...)
		default:
			out = append(out, d.Text...)
		}
	}

	return string(out)
}

type comparedField struct {
	name     string
	identity bool
	value    func(*Freedge) any
	render   func(*Freedge) string
}

// comparedFields is fixed and ordered; values must be comparable with ==.
var comparedFields = []comparedField{
	{
		name:     FieldDatabaseID,
		identity: true,
		value:    func(f *Freedge) any { return f.ID },
		render: func(f *Freedge) string {
			if !f.HasID() {
				return NotGiven
			}

			return strconv.FormatInt(f.ID, 10)
		},
	},
	stringField(FieldProjectName, func(f *Freedge) string { return f.ProjectName }),
	stringField(FieldNetworkName, func(f *Freedge) string { return f.NetworkName }),
	stringField(FieldCaretaker, func(f *Freedge) string { return f.CaretakerName }),
	{
		name:   FieldLocation,
		value:  func(f *Freedge) any { return f.Address },
		render: func(f *Freedge) string { return f.Address.String() },
	},
	{
		name:   FieldDateInstalled,
		value:  func(f *Freedge) any { return f.DateInstalled },
		render: func(f *Freedge) string { return FormatDate(f.DateInstalled) },
	},
	{
		name:   FieldPermission,
		value:  func(f *Freedge) any { return f.PermissionToNotify },
		render: func(f *Freedge) string { return formatBool(f.PermissionToNotify) },
	},
	{
		name:   FieldContactMethod,
		value:  func(f *Freedge) any { return f.ContactMethod },
		render: func(f *Freedge) string { return f.ContactMethod.String() },
	},
	stringField(FieldPhoneNumber, func(f *Freedge) string { return f.PhoneNumber }),
	stringField(FieldEmailAddress, func(f *Freedge) string { return f.EmailAddress }),
	{
		name:   FieldStatus,
		value:  func(f *Freedge) any { return f.Status },
		render: func(f *Freedge) string { return f.Status.String() },
	},
	{
		name:   FieldLastStatusUpdate,
		value:  func(f *Freedge) any { return f.LastStatusUpdate },
		render: func(f *Freedge) string { return FormatDate(f.LastStatusUpdate) },
	},
}

func stringField(name string, get func(*Freedge) string) comparedField {
	return comparedField{
		name:   name,
		value:  func(f *Freedge) any { return get(f) },
		render: func(f *Freedge) string { return orNotGiven(get(f)) },
	}
}

// FieldDiff lists the fields that differ between a and b, in display order.
func FieldDiff(a, b *Freedge) []FieldChange {
	var changes []FieldChange
	for _, field := range comparedFields {
		if field.value(a) == field.value(b) {
			continue
		}
		changes = append(changes, FieldChange{
			Field: field.name,
			Old:   field.render(a),
			New:   field.render(b),
		})
	}

	return changes
}

// SameContent reports whether a and b agree on every field except identity.
func SameContent(a, b *Freedge) bool {
	for _, field := range comparedFields {
		if field.identity {
			continue
		}
		if field.value(a) != field.value(b) {
			return false
		}
	}

	return true
}
