package upstream

import (
	"encoding/json"
	"strings"
	"time"

	"squareone/internal/domain/entity"
)

// The platform API ships lowercase concatenated field names on reads
// (brandid, logoimage, whatsappno) and camelCase on some write paths. The
// wire types below are the only place both casings exist; everything past
// this file speaks the canonical entity shapes.

type wireAdmin struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
}

func (w wireAdmin) toEntity() entity.Admin {
	return entity.Admin{ID: w.ID, Email: w.Email, FullName: w.FullName}
}

type wireBrand struct {
	BrandID      string          `json:"brandid"`
	BrandName    string          `json:"brandname"`
	Category     string          `json:"category"`
	LogoImage    string          `json:"logoimage"`
	Banner       string          `json:"banner"`
	WhatsAppNo   string          `json:"whatsappno"`
	Description  string          `json:"description"`
	WorkingHours json.RawMessage `json:"workinghours"`
	CreatedAt    string          `json:"createdat"`
	Deals        []wireDeal      `json:"deals"`
}

func (w wireBrand) toEntity() entity.Brand {
	deals := make([]entity.Deal, 0, len(w.Deals))
	for _, d := range w.Deals {
		deals = append(deals, d.toEntity())
	}

	return entity.Brand{
		ID:           w.BrandID,
		Name:         w.BrandName,
		Category:     w.Category,
		LogoImage:    w.LogoImage,
		Banner:       w.Banner,
		WhatsAppNo:   w.WhatsAppNo,
		Description:  w.Description,
		WorkingHours: parseWorkingHours(w.WorkingHours),
		CreatedAt:    parseTime(w.CreatedAt),
		Deals:        deals,
	}
}

type wireWorkingHours struct {
	Day    string `json:"day"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Closed bool   `json:"closes"`
}

// parseWorkingHours tolerates both schema generations: a list of per-weekday
// records, or the legacy whole-week "09:00 to 21:00" string.
func parseWorkingHours(raw json.RawMessage) []entity.WorkingHours {
	if len(raw) == 0 {
		return nil
	}

	var structured []wireWorkingHours
	if err := json.Unmarshal(raw, &structured); err == nil {
		hours := make([]entity.WorkingHours, 0, len(structured))
		for _, h := range structured {
			hours = append(hours, entity.WorkingHours{
				Day:    h.Day,
				Start:  strings.TrimSpace(h.Start),
				End:    strings.TrimSpace(h.End),
				Closed: h.Closed,
			})
		}

		return hours
	}

	var legacy string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil
	}
	start, end, ok := strings.Cut(legacy, "to")
	if !ok {
		return nil
	}

	return []entity.WorkingHours{{
		Start: strings.TrimSpace(start),
		End:   strings.TrimSpace(end),
	}}
}

type wireDeal struct {
	DealID      string           `json:"dealid"`
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Tagline     string           `json:"tagline"`
	Description string           `json:"description"`
	Picture     string           `json:"Picture"`
	Banner      string           `json:"Banner"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	CreatedAt   string           `json:"createdAt"`
	Code        []wireRedemption `json:"code"`
	Redeem      []wireRedemption `json:"redeem"`
}

func (w wireDeal) toEntity() entity.Deal {
	// "code" and "redeem" are the same concept across API versions; code
	// wins when both are present.
	records := w.Code
	if len(records) == 0 {
		records = w.Redeem
	}

	redemptions := make([]entity.Redemption, 0, len(records))
	for _, r := range records {
		redemptions = append(redemptions, entity.Redemption{
			UserID:    r.UserID,
			FullName:  r.FullName,
			CreatedAt: parseTime(r.CreatedAt),
		})
	}

	dealType := entity.DealType(w.Type)
	if dealType != entity.DealTypeDiscount {
		dealType = entity.DealTypeDeal
	}

	return entity.Deal{
		ID:          w.DealID,
		Type:        dealType,
		Title:       w.Title,
		Tagline:     w.Tagline,
		Description: w.Description,
		Picture:     w.Picture,
		Banner:      w.Banner,
		StartDate:   parseTime(w.StartDate),
		EndDate:     parseTime(w.EndDate),
		CreatedAt:   parseTime(w.CreatedAt),
		Redemptions: redemptions,
	}
}

type wireRedemption struct {
	UserID    string `json:"userid"`
	FullName  string `json:"fullname"`
	CreatedAt string `json:"createdat"`
}

type wireAd struct {
	ID        string `json:"id"`
	Banner    string `json:"banner"`
	BrandID   string `json:"brandid"`
	DealID    string `json:"dealid"`
	StartAt   string `json:"startat"`
	EndAt     string `json:"endat"`
	CreatedBy string `json:"createdby"`
}

func (w wireAd) toEntity() entity.Ad {
	return entity.Ad{
		ID:        w.ID,
		Banner:    w.Banner,
		BrandID:   w.BrandID,
		DealID:    w.DealID,
		StartAt:   parseTime(w.StartAt),
		EndAt:     parseTime(w.EndAt),
		CreatedBy: w.CreatedBy,
	}
}

type wireEvent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Background  string   `json:"background"`
	Banner      string   `json:"banner"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Activities  []string `json:"activities"`
	Liked       int      `json:"liked"`
	Going       int      `json:"going"`
}

func (w wireEvent) toEntity() entity.Event {
	return entity.Event{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Background:  w.Background,
		Banner:      w.Banner,
		StartDate:   parseTime(w.StartDate),
		EndDate:     parseTime(w.EndDate),
		Activities:  w.Activities,
		Liked:       w.Liked,
		Going:       w.Going,
	}
}

type wireUser struct {
	ID           string `json:"id"`
	FullName     string `json:"fullname"`
	WhatsAppNo   string `json:"whatsappno"`
	DateOfBirth  string `json:"dob"`
	Location     string `json:"location"`
	Gender       string `json:"gender"`
	ProfileImage string `json:"profileimage"`
	CreatedAt    string `json:"createdat"`
	LastLogin    string `json:"lastlogin"`
}

func (w wireUser) toEntity() entity.User {
	return entity.User{
		ID:           w.ID,
		FullName:     w.FullName,
		WhatsAppNo:   w.WhatsAppNo,
		DateOfBirth:  w.DateOfBirth,
		Location:     w.Location,
		Gender:       w.Gender,
		ProfileImage: w.ProfileImage,
		RegisteredAt: parseTime(w.CreatedAt),
		LastLoginAt:  parseTime(w.LastLogin),
	}
}

type wireSupportMessage struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Status     bool   `json:"status"`
	FullName   string `json:"fullname"`
	WhatsAppNo string `json:"whatsappno"`
}

func (w wireSupportMessage) toEntity() entity.SupportMessage {
	return entity.SupportMessage{
		ID:         w.ID,
		Title:      w.Title,
		Message:    w.Message,
		Open:       w.Status,
		FullName:   w.FullName,
		WhatsAppNo: w.WhatsAppNo,
	}
}

// Outbound payloads keep the casing each write endpoint expects.

func brandPayload(brand entity.Brand) map[string]any {
	hours := make([]wireWorkingHours, 0, len(brand.WorkingHours))
	for _, h := range brand.WorkingHours {
		hours = append(hours, wireWorkingHours{Day: h.Day, Start: h.Start, End: h.End, Closed: h.Closed})
	}

	return map[string]any{
		"brandname":    brand.Name,
		"category":     brand.Category,
		"logoimage":    brand.LogoImage,
		"banner":       brand.Banner,
		"whatsappno":   brand.WhatsAppNo,
		"description":  brand.Description,
		"workinghours": hours,
	}
}

func dealPayload(brandID string, deal entity.Deal) map[string]any {
	return map[string]any{
		"brandId":     brandID,
		"type":        string(deal.Type),
		"title":       deal.Title,
		"description": deal.Description,
		"tagline":     deal.Tagline,
		"startDate":   formatTime(deal.StartDate),
		"endDate":     formatTime(deal.EndDate),
		"picture":     deal.Picture,
		"banner":      deal.Banner,
		"createdAt":   formatTime(deal.CreatedAt),
	}
}

func eventPayload(event entity.Event) map[string]any {
	return map[string]any{
		"title":       event.Title,
		"description": event.Description,
		"background":  event.Background,
		"banner":      event.Banner,
		"start_date":  formatTime(event.StartDate),
		"end_date":    formatTime(event.EndDate),
		"activities":  event.Activities,
	}
}

// parseTime accepts the timestamp shapes seen across upstream versions:
// RFC3339 and bare dates. Anything else maps to the zero time rather than an
// error; the dashboard renders what it can.
func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
