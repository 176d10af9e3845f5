package handler

import (
	"strconv"
	"time"

	"virtualcheck/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PageView is the listing envelope shared by the admin pages.
type PageView[T any] struct {
	Records     []T    `json:"records"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	TotalItems  int    `json:"total_items"`
	Search      string `json:"search"`
}

func newPageView[E any, T any](page *entity.Page[E], search string, convert func(E) T) PageView[T] {
	records := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		records = append(records, convert(item))
	}

	return PageView[T]{
		Records:     records,
		TotalPages:  page.TotalPages,
		CurrentPage: page.Page,
		TotalItems:  page.TotalItems,
		Search:      search,
	}
}

// listQuery reads ?page and ?search. An unparsable page falls back to the first one.
func listQuery(c echo.Context) entity.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	return entity.ListQuery{
		Page:    page,
		PerPage: entity.DefaultPerPage,
		Search:  c.QueryParam("search"),
	}.Normalize()
}

// AddressView is an address as shown in the admin area.
type AddressView struct {
	ID      string `json:"id"`
	Line    string `json:"line"`
	Line2   string `json:"line_2"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// BusinessView is an agency or store as shown in the admin area.
type BusinessView struct {
	ID        string       `json:"id"`
	Kind      string       `json:"kind"`
	Name      string       `json:"name"`
	Phone     string       `json:"phone"`
	Email     string       `json:"email"`
	Website   string       `json:"website"`
	AddressID string       `json:"address_id,omitempty"`
	Address   *AddressView `json:"address,omitempty"`
	Created   time.Time    `json:"created"`
}

func newBusinessView(b *entity.Business) BusinessView {
	view := BusinessView{
		ID:        b.ID,
		Kind:      string(b.Kind),
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		Website:   b.Website,
		AddressID: b.AddressID,
		Created:   b.CreatedAt,
	}
	if b.Address != nil {
		view.Address = &AddressView{
			ID:      b.Address.ID,
			Line:    b.Address.Line,
			Line2:   b.Address.Line2,
			City:    b.Address.City,
			Zip:     b.Address.Zip,
			State:   b.Address.State,
			Country: b.Address.Country,
		}
	}

	return view
}

// ContactView is a redeemed contact as shown in the admin area.
type ContactView struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	LastName           string     `json:"last_name"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email"`
	Acceptance         bool       `json:"acceptance"`
	VirtualCheckActive bool       `json:"virtual_check_active"`
	EmailSent          bool       `json:"email_sent"`
	Redeemed           bool       `json:"redeemed"`
	RedeemedAt         *time.Time `json:"redeemed_at,omitempty"`
	AgencyID           string     `json:"agency_id"`
	AgencyName         string     `json:"agency_name"`
	StoreID            string     `json:"store_id"`
	StoreName          string     `json:"store_name"`
	Created            time.Time  `json:"created"`
}

func newContactView(c *entity.Contact) ContactView {
	view := ContactView{
		ID:                 c.ID,
		Name:               c.Name,
		LastName:           c.LastName,
		Phone:              c.Phone,
		Email:              c.Email,
		Acceptance:         c.Acceptance,
		VirtualCheckActive: c.VirtualCheckActive,
		EmailSent:          c.EmailSent,
		Redeemed:           c.Redeemed,
		RedeemedAt:         c.RedeemedAt,
		AgencyID:           c.AgencyID,
		StoreID:            c.StoreID,
		Created:            c.CreatedAt,
	}
	if c.Agency != nil {
		view.AgencyName = c.Agency.Name
	}
	if c.Store != nil {
		view.StoreName = c.Store.Name
	}

	return view
}

// RelationView is a relation link as shown in the admin area.
type RelationView struct {
	ID         string    `json:"id"`
	Hash       string    `json:"relation_hash"`
	AgencyID   string    `json:"agency_id"`
	AgencyName string    `json:"agency_name"`
	StoreID    string    `json:"store_id"`
	StoreName  string    `json:"store_name"`
	URL        string    `json:"url"`
	Created    time.Time `json:"created"`
}
