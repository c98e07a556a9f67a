// Package entity contains the core business objects of the project.
package entity

import "time"

// Brand is one merchant on the platform together with its owned deals.
// ID is the only stable identifier; Name doubles as a routing key and is
// treated as unique even though the upstream API does not guarantee it, so
// lookups by name return the first match.
type Brand struct {
	ID           string         `json:"brand_id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	LogoImage    string         `json:"logo_image"`
	Banner       string         `json:"banner"`
	WhatsAppNo   string         `json:"whatsapp_no"`
	Description  string         `json:"description"`
	WorkingHours []WorkingHours `json:"working_hours"`
	Deals        []Deal         `json:"deals"`
	CreatedAt    time.Time      `json:"created_at"`
}

// WorkingHours is one weekday's opening window. The upstream API also ships
// a legacy "HH:MM to HH:MM" string for the whole week; the mapper expands
// that form into a single record with an empty Day.
type WorkingHours struct {
	Day    string `json:"day,omitempty"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Closed bool   `json:"closed"`
}

// DealType tags how a deal is presented.
type DealType string

const (
	DealTypeDeal     DealType = "deal"
	DealTypeDiscount DealType = "discount"
)

// Deal is an offer owned by exactly one brand (contained, not referenced).
type Deal struct {
	ID          string       `json:"deal_id"`
	Type        DealType     `json:"type"`
	Title       string       `json:"title"`
	Tagline     string       `json:"tagline"` // free text, or "Upto/Flat N% off" for discounts
	Description string       `json:"description"`
	Picture     string       `json:"picture"`
	Banner      string       `json:"banner"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	CreatedAt   time.Time    `json:"created_at"`
	Redemptions []Redemption `json:"redemptions"`
}

// Redemption records one end-user using a deal. The upstream API calls the
// list either "code" or "redeem" depending on version; this is the single
// canonical shape for both.
type Redemption struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RedemptionCount is the engagement weight of a deal. A nil list counts as
// zero, never as an error.
func (d Deal) RedemptionCount() int {
	return len(d.Redemptions)
}

// TotalRedemptions sums redemption counts across all the brand's deals.
func (b Brand) TotalRedemptions() int {
	total := 0
	for _, deal := range b.Deals {
		total += deal.RedemptionCount()
	}

	return total
}
