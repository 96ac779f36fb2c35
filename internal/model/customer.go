package model

import "time"

// Customer : учётная запись клиента. PasswordHash это bcrypt хэш, исходный пароль не хранится
type Customer struct {
	CustomerID   string    `db:"customer_id" json:"customer_id"`
	UserName     string    `db:"user_name" json:"user_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	PhoneNumber  string    `db:"phone_number" json:"phone_number"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Registration : входные данные регистрации
type Registration struct {
	UserName        string
	Password        string
	ConfirmPassword string
	Name            string
	PhoneNumber     string
}
