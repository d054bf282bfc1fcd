package postgres

import (
	"time"

	"freedge/internal/domain/entity"
	"freedge/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

func toFreedgeDomains(freedgeModels []*model.FreedgeModel) ([]*entity.Freedge, error) {
	freedges := make([]*entity.Freedge, 0, len(freedgeModels))
	for _, freedgeM := range freedgeModels {
		freedge, err := toFreedgeDomain(freedgeM)
		if err != nil {
			return nil, err
		}
		freedges = append(freedges, freedge)
	}

	return freedges, nil
}

// toFreedgeDomain converts a FreedgeModel to a domain entity.
// A missing address row maps to an empty address.
func toFreedgeDomain(data *model.FreedgeModel) (*entity.Freedge, error) {
	status, err := entity.ParseStatus(data.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "freedge %d", data.ID)
	}
	method, err := entity.ParseContactMethod(data.PreferredContactMethod)
	if err != nil {
		return nil, errors.Wrapf(err, "freedge %d", data.ID)
	}

	freedge := &entity.Freedge{
		ID:                 data.ID,
		ProjectName:        data.ProjectName,
		NetworkName:        data.NetworkName,
		CaretakerName:      data.CaretakerName,
		DateInstalled:      toCivilDate(data.DateInstalled),
		PermissionToNotify: data.PermissionToNotify,
		ContactMethod:      method,
		PhoneNumber:        data.PhoneNumber,
		EmailAddress:       data.EmailAddress,
		Status:             status,
		LastStatusUpdate:   toCivilDate(data.LastStatusUpdate),
	}

	if data.Address != nil {
		freedge.Address = entity.Address{
			Street:  data.Address.StreetAddress,
			City:    data.Address.City,
			State:   data.Address.StateProvince,
			ZipCode: data.Address.ZipCode,
			Country: data.Address.Country,
		}
	}

	return freedge, nil
}

// fromFreedgeDomain converts a domain entity to a FreedgeModel with its address attached.
func fromFreedgeDomain(data *entity.Freedge) *model.FreedgeModel {
	return &model.FreedgeModel{
		ID:                     data.ID,
		ProjectName:            data.ProjectName,
		NetworkName:            data.NetworkName,
		CaretakerName:          data.CaretakerName,
		DateInstalled:          fromCivilDate(data.DateInstalled),
		PermissionToNotify:     data.PermissionToNotify,
		PreferredContactMethod: data.ContactMethod.String(),
		PhoneNumber:            data.PhoneNumber,
		EmailAddress:           data.EmailAddress,
		Status:                 data.Status.String(),
		LastStatusUpdate:       fromCivilDate(data.LastStatusUpdate),
		Address: &model.FreedgeAddressModel{
			FreedgeID:     data.ID,
			StreetAddress: data.Address.Street,
			City:          data.Address.City,
			StateProvince: data.Address.State,
			ZipCode:       data.Address.ZipCode,
			Country:       data.Address.Country,
		},
	}
}

// Dates are stored as DATE columns; UTC midnight keeps the calendar day intact.
func fromCivilDate(d civil.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.In(time.UTC)

	return &t
}

func toCivilDate(t *time.Time) civil.Date {
	if t == nil {
		return civil.Date{}
	}

	return civil.DateOf(t.UTC())
}
