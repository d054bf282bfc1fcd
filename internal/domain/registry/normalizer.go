package registry

import (
	"strings"
	"time"

	"freedge/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// dateLayouts are tried in order after ISO dates.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006/01/02",
	"2006-1-2",
}

// Normalize converts raw rows into candidate entries without identities.
// The whole dataset is rejected on the first structural error.
func Normalize(rows []Row, today civil.Date) ([]*entity.Freedge, error) {
	if len(rows) == 0 {
		return nil, EmptyDatasetError{}
	}

	candidates := make([]*entity.Freedge, 0, len(rows))
	for i, row := range rows {
		candidate, err := NormalizeRow(i, row, today)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// NormalizeRow converts a single row. index is only used for error reporting.
func NormalizeRow(index int, row Row, today civil.Date) (*entity.Freedge, error) {
	for _, column := range RequiredColumns() {
		if _, ok := row[column]; !ok {
			return nil, &MalformedRowError{Index: index, Line: row.Line(), Column: column}
		}
	}

	status, lastUpdate := InferStatus(row[ColumnActive], row[ColumnPermission], today)

	return &entity.Freedge{
		ProjectName:   row[ColumnProject],
		NetworkName:   row[ColumnNetwork],
		CaretakerName: row[ColumnContactName],
		Address: entity.Address{
			Street:  row[ColumnStreetAddress],
			City:    row[ColumnCity],
			State:   row[ColumnStateProvince],
			ZipCode: row[ColumnZipCode],
			Country: row[ColumnCountry],
		},
		DateInstalled:      ParseDate(row[ColumnDateInstalled]),
		PermissionToNotify: ParsePermission(row[ColumnPermission]),
		ContactMethod:      ParsePreferredMethod(row[ColumnPreferredMethod]),
		PhoneNumber:        row[ColumnPhoneNumber],
		EmailAddress:       row[ColumnEmailAddress],
		Status:             status,
		LastStatusUpdate:   lastUpdate,
	}, nil
}

// InferStatus applies the import status rule. An explicit "Active?" answer is a fresh
// confirmation; silence there plus any permission answer counts as presumptive activity.
// SuspectedInactive is never produced here.
func InferStatus(active, permission string, today civil.Date) (entity.Status, civil.Date) {
	answer := strings.ToUpper(strings.TrimSpace(active))
	if answer != "" {
		switch answer {
		case "YES":
			return entity.StatusActive, today
		case "NO":
			return entity.StatusConfirmedInactive, today
		default:
			return entity.StatusUnknown, today
		}
	}

	if strings.TrimSpace(permission) != "" {
		return entity.StatusActive, today
	}

	return entity.StatusUnknown, civil.Date{}
}

// ParsePermission reports whether the caretaker answered yes.
func ParsePermission(raw string) bool {
	return strings.ToUpper(strings.TrimSpace(raw)) == "YES"
}

// ParsePreferredMethod maps "email" to ContactEmail and everything else, including "text", to ContactSMS.
func ParsePreferredMethod(raw string) entity.ContactMethod {
	if strings.EqualFold(strings.TrimSpace(raw), "email") {
		return entity.ContactEmail
	}

	return entity.ContactSMS
}

// ParseDate reads a calendar date. Unparseable values yield the zero date.
func ParseDate(raw string) civil.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return civil.Date{}
	}

	if d, err := civil.ParseDate(raw); err == nil && d.IsValid() {
		return d
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return civil.DateOf(t)
		}
	}

	return civil.Date{}
}
