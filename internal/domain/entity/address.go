// Package entity contains the core business objects of the project.
package entity

import "strings"

// NotGiven is rendered in place of missing values.
const NotGiven = "NOT GIVEN"

// Address is the location of a freedge. Empty fields mean "not given".
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Short renders the city, state and country the way operators scan a list.
// State without a city never renders on its own.
func (a Address) Short() string {
	hasCity, hasState, hasCountry := a.City != "", a.State != "", a.Country != ""

	switch {
	case hasCity && hasState && hasCountry:
		return a.City + ", " + a.State + ", " + a.Country
	case hasCity && hasState:
		return a.City + ", " + a.State
	case hasCity && hasCountry:
		return a.City + ", " + a.Country
	case !hasCity && !hasState && hasCountry:
		return a.Country
	case hasCity && !hasState && !hasCountry:
		return a.City
	default:
		return NotGiven
	}
}

// String renders every given field on one line.
func (a Address) String() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.Street, a.City, a.State, a.ZipCode, a.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return NotGiven
	}

	return strings.Join(parts, ", ")
}

// DisplayLines renders the address as a mailing label, skipping empty lines.
func (a Address) DisplayLines() []string {
	var lines []string
	if a.Street != "" {
		lines = append(lines, a.Street)
	}

	locality := a.City
	if a.State != "" {
		if locality != "" {
			locality += ", "
		}
		locality += a.State
	}
	if a.ZipCode != "" {
		if locality != "" {
			locality += " "
		}
		locality += a.ZipCode
	}
	if locality != "" {
		lines = append(lines, locality)
	}

	if a.Country != "" {
		lines = append(lines, a.Country)
	}

	return lines
}

// IsEmpty reports whether no field is given.
func (a Address) IsEmpty() bool {
	return a == Address{}
}
