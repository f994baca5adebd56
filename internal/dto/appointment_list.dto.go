package dto

import "time"

type AppointmentListDTO struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Day              string    `json:"day"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	PriceInCents     int       `json:"appointment_price_in_cents"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
}

type CheckoutDTO struct {
	AppointmentID string `json:"appointment_id"`
	PreferenceID  string `json:"preference_id"`
	InitPoint     string `json:"init_point"`
}
