package dto

import (
	"time"

	"careerlink/internal/models"
)

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Role        string `json:"role" validate:"required,is-user-role"`
	CompanyName string `json:"companyName" validate:"max=255"`
	Location    string `json:"location" validate:"max=255"`
	Website     string `json:"website" validate:"omitempty,url,max=512"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      models.UserRole  `json:"role"`
	CompanyID *string          `json:"companyId,omitempty"`
	Company   *CompanyResponse `json:"company,omitempty"`
	Skills    string           `json:"skills"`
	ResumeURL string           `json:"resumeUrl"`
	CreatedAt time.Time        `json:"createdAt"`
}

func NewUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		Skills:    u.Skills,
		ResumeURL: u.ResumeURL,
		CreatedAt: u.CreatedAt,
	}
	if u.Company != nil {
		resp.Company = NewCompanyResponse(u.Company)
	}
	return resp
}

type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the slim user body returned by POST /login.
type LoginResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role"`
	CompanyID *string         `json:"companyId"`
}

func NewLoginResponse(u *models.User) *LoginResponse {
	return &LoginResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}
