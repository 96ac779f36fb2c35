package requestresponse

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	UserName        string `json:"userName" example:"alice01"`
	Password        string `json:"password" example:"Secret123"`
	ConfirmPassword string `json:"confirmPassword" example:"Secret123"`
	Name            string `json:"name" example:"Alice"`
	PhoneNumber     string `json:"phoneNumber" example:"+919876543210"`
}

// RegisterResponse : успешный ответ
type RegisterResponse struct {
	Response struct {
		Message string `json:"message" example:"Customer registered successfully"`
	} `json:"response"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	UserName string `json:"userName" example:"alice01"`
	Password string `json:"password" example:"Secret123"`
}

// LoginResponse : ответ на успешную аутентификацию
type LoginResponse struct {
	Response struct {
		AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken string `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
		CustomerID   string `json:"customerId" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
		Message      string `json:"message" example:"Successfully logged in"`
	} `json:"response"`
}

// RefreshTokenRequest : запрос на получение нового access токена
type RefreshTokenRequest struct {
	UserName     string `json:"userName" example:"alice01"`
	RefreshToken string `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
}

// RefreshTokenResponse : refresh токен меняется только при включённой ротации
type RefreshTokenResponse struct {
	Response struct {
		AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken string `json:"refreshToken" example:"vcSi0369y1I62wOpxZFpgZ..."`
	} `json:"response"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Response struct {
		Revoked bool `json:"revoked" example:"true"`
	} `json:"response"`
}
