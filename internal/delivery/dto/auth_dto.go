package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterCustomerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"omitempty,max=255"`
	LastName    string `json:"last_name" validate:"omitempty,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	City        string `json:"city" validate:"omitempty,max=100"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type RegisterProfessionalRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6"`
	FirstName   string   `json:"first_name" validate:"omitempty,max=255"`
	LastName    string   `json:"last_name" validate:"omitempty,max=255"`
	PhoneNumber string   `json:"phone_number" validate:"omitempty,max=20"`
	City        string   `json:"city" validate:"omitempty,max=100"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	Profession  string   `json:"profession" validate:"required"`
	Fee         *float64 `json:"fee" validate:"omitempty,gte=0"`
}

type RegisterAdminRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"omitempty,max=255"`
	LastName  string `json:"last_name" validate:"omitempty,max=255"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// CurrentUserResponse carries exactly one of the three account shapes,
// discriminated by UserType.
type CurrentUserResponse struct {
	UserType     string                `json:"user_type"`
	Customer     *CustomerResponse     `json:"customer,omitempty"`
	Professional *ProfessionalResponse `json:"professional,omitempty"`
	Admin        *AdminResponse        `json:"admin,omitempty"`
}
