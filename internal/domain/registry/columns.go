// Package registry holds the pure rules that turn imported datasets into registry changes
// and move entries through their status lifecycle.
package registry

import "strconv"

// Column labels of an imported dataset.
const (
	ColumnProject         = "Project"
	ColumnNetwork         = "Network"
	ColumnStreetAddress   = "Street address"
	ColumnCity            = "City"
	ColumnStateProvince   = "State / Province"
	ColumnZipCode         = "Zip Code"
	ColumnCountry         = "Country"
	ColumnDateInstalled   = "Date Installed"
	ColumnContactName     = "Contact Name"
	ColumnPhoneNumber     = "Phone Number"
	ColumnEmailAddress    = "Email Address"
	ColumnPermission      = "Permission to Contact"
	ColumnPreferredMethod = "Preferred Contact Method"
	ColumnActive          = "Active?"
)

// GeneralColumns are the descriptive and contact columns of a row.
var GeneralColumns = []string{
	ColumnProject,
	ColumnNetwork,
	ColumnDateInstalled,
	ColumnContactName,
	ColumnPhoneNumber,
	ColumnEmailAddress,
	ColumnPermission,
	ColumnPreferredMethod,
	ColumnActive,
}

// AddressColumns are the location columns of a row.
var AddressColumns = []string{
	ColumnStreetAddress,
	ColumnCity,
	ColumnStateProvince,
	ColumnZipCode,
	ColumnCountry,
}

// RequiredColumns returns every column a dataset must carry, in spreadsheet order.
func RequiredColumns() []string {
	return []string{
		ColumnProject,
		ColumnNetwork,
		ColumnStreetAddress,
		ColumnCity,
		ColumnStateProvince,
		ColumnZipCode,
		ColumnCountry,
		ColumnDateInstalled,
		ColumnContactName,
		ColumnPhoneNumber,
		ColumnEmailAddress,
		ColumnPermission,
		ColumnPreferredMethod,
		ColumnActive,
	}
}

// lineKey holds the source line of a row. Header labels are never empty, so it cannot collide.
const lineKey = ""

// Row maps column labels to raw cell values for one site.
type Row map[string]string

// SetLine records the one-based line the row was read from.
func (r Row) SetLine(line int) {
	r[lineKey] = strconv.Itoa(line)
}

// Line returns the one-based source line, or 0 when the row was not read from a file.
func (r Row) Line() int {
	line, err := strconv.Atoi(r[lineKey])
	if err != nil {
		return 0
	}

	return line
}
