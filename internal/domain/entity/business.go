package entity

import "time"

// BusinessKind distinguishes the two kinds of parties a relation link pairs.
type BusinessKind string

const (
	BusinessKindAgency BusinessKind = "agency"
	BusinessKindStore  BusinessKind = "store"
)

// IsValid reports whether the kind is one of the known kinds.
func (k BusinessKind) IsValid() bool {
	return k == BusinessKindAgency || k == BusinessKindStore
}

// Business is an agency or a store managed from the admin area.
type Business struct {
	ID        string
	Kind      BusinessKind
	Name      string
	Phone     string
	Email     string
	Website   string
	AddressID string   // Empty when no address is attached.
	Address   *Address // Populated only when the address relation is expanded.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address is an optional detail record owned by one agency or store.
type Address struct {
	ID      string
	Line    string
	Line2   string
	City    string
	Zip     string
	State   string
	Country string
}

// IsEmpty reports whether none of the editable address fields are set.
func (a Address) IsEmpty() bool {
	return a.Line == "" && a.City == "" && a.Zip == "" && a.Country == ""
}
