package pocketbase

import (
	"encoding/json"
	"strings"
	"time"

	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/errors"
)

// timeLayout is the record store's datetime format.
const timeLayout = "2006-01-02 15:04:05.000Z"

// Time decodes record store datetimes; the empty string is the zero time.
type Time struct {
	time.Time
}

// UnmarshalJSON accepts the record store layout, RFC 3339 and "".
func (t *Time) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "datetime must be a string")
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}

		return nil
	}

	for _, layout := range []string{timeLayout, "2006-01-02 15:04:05Z07:00", time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()

			return nil
		}
	}

	return errors.Errorf("unsupported datetime %q", raw)
}

// MarshalJSON writes the record store layout, or "" for the zero time.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}

	return json.Marshal(t.UTC().Format(timeLayout))
}

func (t Time) ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time

	return &v
}

type addressRecord struct {
	ID      string `json:"id,omitempty"`
	Line    string `json:"line"`
	Line2   string `json:"line_2"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	State   string `json:"state"`
	Country string `json:"country"`
}

func (r *addressRecord) toEntity() *entity.Address {
	if r == nil {
		return nil
	}

	return &entity.Address{
		ID:      r.ID,
		Line:    r.Line,
		Line2:   r.Line2,
		City:    r.City,
		Zip:     r.Zip,
		State:   r.State,
		Country: r.Country,
	}
}

func fromAddress(a *entity.Address) addressRecord {
	return addressRecord{
		Line:    a.Line,
		Line2:   a.Line2,
		City:    a.City,
		Zip:     a.Zip,
		State:   a.State,
		Country: a.Country,
	}
}

type businessRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Address string `json:"address"`
	Created Time   `json:"created"`
	Updated Time   `json:"updated"`
	Expand  struct {
		Address *addressRecord `json:"address"`
	} `json:"expand"`
}

func (r *businessRecord) toEntity(kind entity.BusinessKind) *entity.Business {
	if r == nil {
		return nil
	}

	return &entity.Business{
		ID:        r.ID,
		Kind:      kind,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Website:   r.Website,
		AddressID: r.Address,
		Address:   r.Expand.Address.toEntity(),
		CreatedAt: r.Created.Time,
		UpdatedAt: r.Updated.Time,
	}
}

// businessPayload is the writable part of an agency or store.
// A nil Address clears the relation.
type businessPayload struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
	Website string  `json:"website"`
	Address *string `json:"address"`
}

func fromBusiness(b *entity.Business) businessPayload {
	payload := businessPayload{
		Name:    b.Name,
		Phone:   b.Phone,
		Email:   b.Email,
		Website: b.Website,
	}
	if b.AddressID != "" {
		id := b.AddressID
		payload.Address = &id
	}

	return payload
}

type relationRecord struct {
	ID           string `json:"id"`
	Agency       string `json:"agency"`
	Store        string `json:"store"`
	RelationHash string `json:"relation_hash"`
	Created      Time   `json:"created"`
	Expand       struct {
		Agency *businessRecord `json:"agency"`
		Store  *businessRecord `json:"store"`
	} `json:"expand"`
}

func (r *relationRecord) toEntity() *entity.RelationLink {
	return &entity.RelationLink{
		ID:        r.ID,
		AgencyID:  r.Agency,
		StoreID:   r.Store,
		Hash:      r.RelationHash,
		Agency:    r.Expand.Agency.toEntity(entity.BusinessKindAgency),
		Store:     r.Expand.Store.toEntity(entity.BusinessKindStore),
		CreatedAt: r.Created.Time,
	}
}

type relationPayload struct {
	Agency       string `json:"agency"`
	Store        string `json:"store"`
	RelationHash string `json:"relation_hash"`
}

type contactRecord struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	LastName           string `json:"last_name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Acceptance         bool   `json:"acceptance"`
	VirtualCheckActive bool   `json:"virtual_check_active"`
	EmailSent          bool   `json:"email_sent"`
	Redeemed           bool   `json:"redeemed"`
	RedeemedAt         Time   `json:"redeemed_at"`
	Address            string `json:"address"`
	Agency             string `json:"agency"`
	Store              string `json:"store"`
	Created            Time   `json:"created"`
	Expand             struct {
		Agency *businessRecord `json:"agency"`
		Store  *businessRecord `json:"store"`
	} `json:"expand"`
}

func (r *contactRecord) toEntity() *entity.Contact {
	return &entity.Contact{
		ID:                 r.ID,
		Name:               r.Name,
		LastName:           r.LastName,
		Phone:              r.Phone,
		Email:              r.Email,
		Acceptance:         r.Acceptance,
		VirtualCheckActive: r.VirtualCheckActive,
		EmailSent:          r.EmailSent,
		Redeemed:           r.Redeemed,
		RedeemedAt:         r.RedeemedAt.ptr(),
		AddressID:          r.Address,
		AgencyID:           r.Agency,
		StoreID:            r.Store,
		Agency:             r.Expand.Agency.toEntity(entity.BusinessKindAgency),
		Store:              r.Expand.Store.toEntity(entity.BusinessKindStore),
		CreatedAt:          r.Created.Time,
	}
}

// contactPayload is what a redemption writes. Address is never set here.
type contactPayload struct {
	Name               string `json:"name"`
	LastName           string `json:"last_name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Acceptance         bool   `json:"acceptance"`
	VirtualCheckActive bool   `json:"virtual_check_active"`
	EmailSent          bool   `json:"email_sent"`
	Redeemed           bool   `json:"redeemed"`
	Agency             string `json:"agency"`
	Store              string `json:"store"`
}

func fromContact(c *entity.Contact) contactPayload {
	return contactPayload{
		Name:               c.Name,
		LastName:           c.LastName,
		Phone:              c.Phone,
		Email:              c.Email,
		Acceptance:         c.Acceptance,
		VirtualCheckActive: c.VirtualCheckActive,
		EmailSent:          c.EmailSent,
		Redeemed:           c.Redeemed,
		Agency:             c.AgencyID,
		Store:              c.StoreID,
	}
}

type userRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	Token  string          `json:"token"`
	Record json.RawMessage `json:"record"`
}

func (r *authResponse) toSession() (entity.Session, error) {
	if r.Token == "" {
		return entity.AnonymousSession, errors.New("auth response carries no token")
	}

	var user userRecord
	if err := json.Unmarshal(r.Record, &user); err != nil {
		return entity.AnonymousSession, errors.Wrap(err, "failed to decode auth record")
	}

	return entity.NewSession(entity.Credential(r.Token), &entity.Principal{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Snapshot: r.Record,
	}), nil
}

func newPage[R any, E any](resp *listResponse[R], convert func(*R) E) *entity.Page[E] {
	items := make([]E, 0, len(resp.Items))
	for i := range resp.Items {
		items = append(items, convert(&resp.Items[i]))
	}

	return &entity.Page[E]{
		Items:      items,
		Page:       resp.Page,
		PerPage:    resp.PerPage,
		TotalItems: resp.TotalItems,
		TotalPages: resp.TotalPages,
	}
}
