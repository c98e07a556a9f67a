package entity

import "time"

// User is an end customer of the platform, distinct from the Admin operating
// the dashboard.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	WhatsAppNo   string    `json:"whatsapp_no"`
	DateOfBirth  string    `json:"date_of_birth"`
	Location     string    `json:"location"`
	Gender       string    `json:"gender"`
	ProfileImage string    `json:"profile_image"`
	RegisteredAt time.Time `json:"registered_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

// Admin is the currently authenticated operator. A singleton record, not a
// collection.
type Admin struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
