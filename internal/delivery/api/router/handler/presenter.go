package handler

import (
	"time"

	"freedge/internal/domain/entity"
	"freedge/internal/domain/registry"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// AddressResponse is the JSON form of an entry's location
type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// FreedgeResponse is the JSON form of a registry entry. Unknown dates are null.
type FreedgeResponse struct {
	ID                 int64                `json:"id,omitempty"`
	ProjectName        string               `json:"project_name"`
	NetworkName        string               `json:"network_name"`
	CaretakerName      string               `json:"caretaker_name"`
	Address            AddressResponse      `json:"address"`
	DateInstalled      *civil.Date          `json:"date_installed"`
	PermissionToNotify bool                 `json:"permission_to_notify"`
	ContactMethod      entity.ContactMethod `json:"contact_method"`
	PhoneNumber        string               `json:"phone_number,omitempty"`
	EmailAddress       string               `json:"email_address,omitempty"`
	Status             entity.Status        `json:"status"`
	LastStatusUpdate   *civil.Date          `json:"last_status_update"`
}

// ModificationResponse lists what an import would change on one existing entry
type ModificationResponse struct {
	ID          int64                `json:"id"`
	ProjectName string               `json:"project_name"`
	Changes     []entity.FieldChange `json:"changes"`
}

// ImportPreviewResponse is returned when a dataset is uploaded
type ImportPreviewResponse struct {
	ID            uuid.UUID              `json:"id"`
	Checksum      string                 `json:"checksum"`
	Summary       []string               `json:"summary"`
	RemovesAll    bool                   `json:"removes_all"`
	ExistingCount int                    `json:"existing_count"`
	Added         []FreedgeResponse      `json:"added"`
	Removed       []FreedgeResponse      `json:"removed"`
	Modified      []ModificationResponse `json:"modified"`
	Collisions    []string               `json:"collisions,omitempty"`
}

// ImportResultResponse counts the entries an applied import changed
type ImportResultResponse struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// OverdueEntryResponse is an entry past the confirmation threshold
type OverdueEntryResponse struct {
	Freedge         FreedgeResponse `json:"freedge"`
	DaysSinceUpdate *int            `json:"days_since_update"`
	Notifiable      bool            `json:"notifiable"`
}

// AttemptResponse is the JSON form of a check-in attempt
type AttemptResponse struct {
	ID          uuid.UUID              `json:"id"`
	FreedgeID   int64                  `json:"freedge_id"`
	Sequence    int                    `json:"sequence"`
	Method      entity.ContactMethod   `json:"method"`
	Destination string                 `json:"destination,omitempty"`
	State       entity.AttemptState    `json:"state"`
	Response    entity.CheckInResponse `json:"response"`
	CreatedAt   time.Time              `json:"created_at"`
	ResolvedAt  *time.Time             `json:"resolved_at,omitempty"`
}

// DispatchResponse reports one dispatch round
type DispatchResponse struct {
	Overdue  int               `json:"overdue"`
	Attempts []AttemptResponse `json:"attempts"`
}

func optionalDate(d civil.Date) *civil.Date {
	if d.IsZero() {
		return nil
	}

	return &d
}

func toFreedgeResponse(f *entity.Freedge) FreedgeResponse {
	return FreedgeResponse{
		ID:            f.ID,
		ProjectName:   f.ProjectName,
		NetworkName:   f.NetworkName,
		CaretakerName: f.CaretakerName,
		Address: AddressResponse{
			Street:  f.Address.Street,
			City:    f.Address.City,
			State:   f.Address.State,
			ZipCode: f.Address.ZipCode,
			Country: f.Address.Country,
		},
		DateInstalled:      optionalDate(f.DateInstalled),
		PermissionToNotify: f.PermissionToNotify,
		ContactMethod:      f.ContactMethod,
		PhoneNumber:        f.PhoneNumber,
		EmailAddress:       f.EmailAddress,
		Status:             f.Status,
		LastStatusUpdate:   optionalDate(f.LastStatusUpdate),
	}
}

func toFreedgeResponses(entries []*entity.Freedge) []FreedgeResponse {
	out := make([]FreedgeResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toFreedgeResponse(entry))
	}

	return out
}

func toImportPreviewResponse(preview *usecase.ImportPreview, checksum string) *ImportPreviewResponse {
	resp := &ImportPreviewResponse{
		ID:            preview.ID,
		Checksum:      checksum,
		Summary:       preview.Summary,
		RemovesAll:    preview.RemovesAll,
		ExistingCount: preview.ExistingCount,
		Added:         []FreedgeResponse{},
		Removed:       []FreedgeResponse{},
		Modified:      []ModificationResponse{},
	}
	if preview.Delta == nil {
		return resp
	}

	resp.Added = toFreedgeResponses(preview.Delta.ToAdd)
	resp.Removed = toFreedgeResponses(preview.Delta.ToRemove)
	for _, mod := range preview.Delta.ToModify {
		resp.Modified = append(resp.Modified, toModificationResponse(mod))
	}
	for _, collision := range preview.Delta.Collisions {
		resp.Collisions = append(resp.Collisions, collision.String())
	}

	return resp
}

func toModificationResponse(mod registry.Modification) ModificationResponse {
	return ModificationResponse{
		ID:          mod.Existing.ID,
		ProjectName: mod.Existing.ProjectName,
		Changes:     mod.Changes(),
	}
}

func toOverdueResponses(entries []*usecase.OverdueEntry) []OverdueEntryResponse {
	out := make([]OverdueEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp := OverdueEntryResponse{
			Freedge:    toFreedgeResponse(entry.Freedge),
			Notifiable: entry.Notifiable,
		}
		if entry.Freedge.Status != entity.StatusUnknown && !entry.Freedge.LastStatusUpdate.IsZero() {
			days := entry.DaysSinceUpdate
			resp.DaysSinceUpdate = &days
		}
		out = append(out, resp)
	}

	return out
}

func toAttemptResponse(a *entity.CheckInAttempt) AttemptResponse {
	return AttemptResponse{
		ID:          a.ID,
		FreedgeID:   a.FreedgeID,
		Sequence:    a.Sequence,
		Method:      a.Method,
		Destination: a.Destination,
		State:       a.State,
		Response:    a.Response,
		CreatedAt:   a.CreatedAt,
		ResolvedAt:  a.ResolvedAt,
	}
}
