package requestresponse

import "customer-onboarding/internal/model"

// ProfileRequest : анкета клиента, customer_id берётся из пути
type ProfileRequest struct {
	Name         string `json:"name" example:"Alice"`
	FatherName   string `json:"fatherName" example:"Bob"`
	Gender       string `json:"gender" example:"Female"`
	Nationality  string `json:"nationality" example:"Indian"`
	DateOfBirth  string `json:"dateOfBirth" example:"1990-05-17"`
	Address      string `json:"address" example:"12 MG Road"`
	PlaceOfBirth string `json:"placeOfBirth" example:"Pune"`
	PhoneNumber  string `json:"phoneNumber" example:"+919876543210"`
	EmailAddress string `json:"emailAddress" example:"alice@example.com"`
}

type ProfileResponse struct {
	Data struct {
		Profile model.Profile `json:"profile"`
	} `json:"data"`
}
