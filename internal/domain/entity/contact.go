package entity

import "time"

// ContactFlag names a boolean workflow flag on a contact that admins may toggle.
type ContactFlag string

const (
	ContactFlagAcceptance         ContactFlag = "acceptance"
	ContactFlagVirtualCheckActive ContactFlag = "virtual_check_active"
	ContactFlagEmailSent          ContactFlag = "email_sent"
	ContactFlagRedeemed           ContactFlag = "redeemed"
)

// ParseContactFlag maps a submitted field name to a known flag.
func ParseContactFlag(field string) (ContactFlag, bool) {
	switch flag := ContactFlag(field); flag {
	case ContactFlagAcceptance, ContactFlagVirtualCheckActive, ContactFlagEmailSent, ContactFlagRedeemed:
		return flag, true
	default:
		return "", false
	}
}

// Contact is a customer self-registration produced by a redemption.
// AgencyID and StoreID always come from the relation link that produced it.
type Contact struct {
	ID                 string
	Name               string
	LastName           string
	Phone              string
	Email              string
	Acceptance         bool
	VirtualCheckActive bool
	EmailSent          bool
	Redeemed           bool
	RedeemedAt         *time.Time
	AgencyID           string
	StoreID            string
	AddressID          string
	Agency             *Business // Populated only when expanded.
	Store              *Business // Populated only when expanded.
	CreatedAt          time.Time
}

// NewRedemptionContact builds the contact stored for a fresh redemption.
func NewRedemptionContact(name, lastName, phone, email string, link *RelationLink) *Contact {
	return &Contact{
		Name:               name,
		LastName:           lastName,
		Phone:              phone,
		Email:              email,
		Acceptance:         false,
		VirtualCheckActive: true,
		EmailSent:          false,
		Redeemed:           false,
		AgencyID:           link.AgencyID,
		StoreID:            link.StoreID,
	}
}
