package entity

import "time"

// RelationLink pairs exactly one agency with exactly one store. It is addressed
// publicly by Hash, never by its record id.
type RelationLink struct {
	ID        string
	AgencyID  string
	StoreID   string
	Hash      string
	Agency    *Business // Populated only when expanded.
	Store     *Business // Populated only when expanded.
	CreatedAt time.Time
}

// AgencyName returns the expanded agency name, or an empty string.
func (r *RelationLink) AgencyName() string {
	if r.Agency == nil {
		return ""
	}

	return r.Agency.Name
}

// StoreName returns the expanded store name, or an empty string.
func (r *RelationLink) StoreName() string {
	if r.Store == nil {
		return ""
	}

	return r.Store.Name
}
