package entity

// SupportMessage is a ticket submitted by an end user. Open is true while
// the ticket is in progress and flips to false once resolved.
type SupportMessage struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Open       bool   `json:"open"`
	FullName   string `json:"full_name"`
	WhatsAppNo string `json:"whatsapp_no"`
}
