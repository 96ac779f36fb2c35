package model

import "time"

// Profile : персональные данные клиента, не больше одной записи на клиента
type Profile struct {
	UUID         string    `db:"id" json:"id"`
	CustomerID   string    `db:"customer_id" json:"customer_id"`
	Name         string    `db:"name" json:"name"`
	FatherName   string    `db:"father_name" json:"father_name"`
	Gender       string    `db:"gender" json:"gender"`
	Nationality  string    `db:"nationality" json:"nationality"`
	DateOfBirth  time.Time `db:"date_of_birth" json:"date_of_birth"`
	Address      string    `db:"address" json:"address"`
	PlaceOfBirth string    `db:"place_of_birth" json:"place_of_birth"`
	PhoneNumber  string    `db:"phone_number" json:"phone_number"`
	EmailAddress string    `db:"email_address" json:"email_address"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ProfileDetails : входные данные анкеты, DateOfBirth в формате 2006-01-02
type ProfileDetails struct {
	CustomerID   string
	Name         string
	FatherName   string
	Gender       string
	Nationality  string
	DateOfBirth  string
	Address      string
	PlaceOfBirth string
	PhoneNumber  string
	EmailAddress string
}
