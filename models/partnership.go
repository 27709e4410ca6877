package models

// CompanySize buckets a partner company's headcount.
type CompanySize string

const (
	CompanySizeSolo       CompanySize = "solo"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeEnterprise CompanySize = "enterprise"
)

// PartnershipType classifies an inquiry.
type PartnershipType string

const (
	PartnershipProject    PartnershipType = "project"
	PartnershipRetainer   PartnershipType = "retainer"
	PartnershipWhiteLabel PartnershipType = "white-label"
	PartnershipReferral   PartnershipType = "referral"
)

// PartnershipInquiry is the wire form of a partnership submission.
// Website is the honeypot field.
type PartnershipInquiry struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Company            string `json:"company" binding:"required"`
	CompanySize        string `json:"companySize" binding:"required"`
	PartnershipType    string `json:"partnershipType" binding:"required"`
	ProjectDescription string `json:"projectDescription" binding:"required"`
	Timeline           string `json:"timeline"`
	Budget             string `json:"budget"`
	CSRFToken          string `json:"csrfToken" binding:"required"`
	Website            string `json:"website"`
}

// ValidCompanySize reports whether s is one of the accepted buckets.
func ValidCompanySize(s string) bool {
	switch CompanySize(s) {
	case CompanySizeSolo, CompanySizeSmall, CompanySizeMedium, CompanySizeEnterprise:
		return true
	}
	return false
}

// ValidPartnershipType reports whether s is one of the accepted kinds.
func ValidPartnershipType(s string) bool {
	switch PartnershipType(s) {
	case PartnershipProject, PartnershipRetainer, PartnershipWhiteLabel, PartnershipReferral:
		return true
	}
	return false
}
