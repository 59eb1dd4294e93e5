package models

// CompanySettings holds the rental company's display details.
type CompanySettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Logo    string `json:"logo,omitempty"`
}

// DefaultCompanySettings are used whenever the upstream company record is unavailable.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Name:    "Fleet HQ",
		Address: "United States",
		Email:   "support@fleethq.com",
		Phone:   "+1 (555) 000-0000",
	}
}

// Clause is one ordered section of a rental agreement.
type Clause struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AgreementTemplate is the company's active agreement template with its clauses.
type AgreementTemplate struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Clauses     []Clause `json:"clauses"`
}

// DefaultAgreementTemplate is the fallback when no template is configured upstream.
func DefaultAgreementTemplate() AgreementTemplate {
	return AgreementTemplate{
		Title:       "Vehicle Rental Agreement",
		Description: "Please review and sign this rental agreement before pickup.",
	}
}
