package dto

import "careerlink/internal/models"

type CompanyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Website  string `json:"website"`
}

func NewCompanyResponse(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,
		Website:  c.Website,
	}
}
