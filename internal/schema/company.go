package schema

import (
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
)

// CompanyInput is the raw create/patch payload for a tracked company.
// preferredJobRoles, tags and activePlatforms arrive either as arrays or as
// one comma-delimited string (see StringList). Leads always replace the
// stored list wholesale.
type CompanyInput struct {
	UserEmail            *string      `json:"userEmail"`
	CompanyName          *string      `json:"companyName"`
	Website              *string      `json:"website"`
	CareersPage          *string      `json:"careersPage"`
	Industry             *string      `json:"industry"`
	CompanySize          *string      `json:"companySize"`
	Headquarters         *string      `json:"headquarters"`
	HiringStatus         *string      `json:"hiringStatus"`
	JobOpeningsAvailable *bool        `json:"jobOpeningsAvailable"`
	ActivePlatforms      *StringList  `json:"activePlatforms"`
	PreferredJobRoles    *StringList  `json:"preferredJobRoles"`
	Leads                *[]LeadInput `json:"leads"`
	LastInteractionDate  *time.Time   `json:"lastInteractionDate"`
	Priority             *string      `json:"priority"`
	Tags                 *StringList  `json:"tags"`
	Notes                *string      `json:"notes"`
	Bookmarked           *bool        `json:"bookmarked"`
	Status               *string      `json:"status"`
}

type LeadInput struct {
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Email           string     `json:"email"`
	Linkedin        string     `json:"linkedin"`
	ContactType     string     `json:"contactType"`
	LastContactedAt *time.Time `json:"lastContactedAt"`
	Notes           string     `json:"notes"`
}

// NewCompany validates a create payload and fills defaults.
func NewCompany(in CompanyInput, now time.Time) (domain.Company, error) {
	c := domain.Company{
		HiringStatus:      "Unknown",
		Priority:          "Medium",
		Status:            "Interested",
		ActivePlatforms:   []string{},
		PreferredJobRoles: []string{},
		Tags:              []string{},
		Leads:             []domain.Lead{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if in.UserEmail == nil || isBlank(*in.UserEmail) {
		return domain.Company{}, errf("userEmail", "is required")
	}
	c.UserEmail = strings.TrimSpace(*in.UserEmail)

	if in.CompanyName == nil || isBlank(*in.CompanyName) {
		return domain.Company{}, errf("companyName", "is required")
	}
	c.CompanyName = strings.TrimSpace(*in.CompanyName)

	if err := applyCompanyFields(&c, in); err != nil {
		return domain.Company{}, err
	}
	if err := validateCompany(c); err != nil {
		return domain.Company{}, err
	}
	return c, nil
}

// MergeCompany lays a patch over an existing company and re-validates the
// result. The owner email is immutable once set.
func MergeCompany(cur domain.Company, in CompanyInput, now time.Time) (domain.Company, error) {
	if in.UserEmail != nil && strings.TrimSpace(*in.UserEmail) != cur.UserEmail {
		return domain.Company{}, errf("userEmail", "cannot be changed")
	}
	c := cur
	if in.CompanyName != nil {
		if isBlank(*in.CompanyName) {
			return domain.Company{}, errf("companyName", "is required")
		}
		c.CompanyName = strings.TrimSpace(*in.CompanyName)
	}
	if err := applyCompanyFields(&c, in); err != nil {
		return domain.Company{}, err
	}
	if err := validateCompany(c); err != nil {
		return domain.Company{}, err
	}
	c.UpdatedAt = now
	return c, nil
}

func applyCompanyFields(c *domain.Company, in CompanyInput) error {
	if in.Website != nil {
		c.Website = strings.TrimSpace(*in.Website)
	}
	if in.CareersPage != nil {
		c.CareersPage = strings.TrimSpace(*in.CareersPage)
	}
	if in.Industry != nil {
		c.Industry = *in.Industry
	}
	if in.CompanySize != nil {
		c.CompanySize = *in.CompanySize
	}
	if in.Headquarters != nil {
		c.Headquarters = *in.Headquarters
	}
	if in.HiringStatus != nil {
		c.HiringStatus = *in.HiringStatus
	}
	if in.JobOpeningsAvailable != nil {
		c.JobOpeningsAvailable = *in.JobOpeningsAvailable
	}
	if in.ActivePlatforms != nil {
		c.ActivePlatforms = []string(*in.ActivePlatforms)
	}
	if in.PreferredJobRoles != nil {
		c.PreferredJobRoles = []string(*in.PreferredJobRoles)
	}
	if in.Leads != nil {
		leads, err := normalizeLeads(*in.Leads)
		if err != nil {
			return err
		}
		c.Leads = leads
	}
	if in.LastInteractionDate != nil {
		c.LastInteractionDate = in.LastInteractionDate
	}
	if in.Priority != nil {
		c.Priority = *in.Priority
	}
	if in.Tags != nil {
		c.Tags = []string(*in.Tags)
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if in.Bookmarked != nil {
		c.Bookmarked = *in.Bookmarked
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	return nil
}

func normalizeLeads(in []LeadInput) ([]domain.Lead, error) {
	out := make([]domain.Lead, 0, len(in))
	for _, l := range in {
		if l.ContactType != "" && !domain.OneOf(domain.ContactTypes, l.ContactType) {
			return nil, errf("leads.contactType", "%q is not a valid contact type", l.ContactType)
		}
		if err := checkURL("leads.linkedin", strings.TrimSpace(l.Linkedin)); err != nil {
			return nil, err
		}
		out = append(out, domain.Lead{
			Name:            l.Name,
			Role:            l.Role,
			Email:           l.Email,
			Linkedin:        strings.TrimSpace(l.Linkedin),
			ContactType:     l.ContactType,
			LastContactedAt: l.LastContactedAt,
			Notes:           l.Notes,
		})
	}
	return out, nil
}

func validateCompany(c domain.Company) error {
	if err := checkURL("website", c.Website); err != nil {
		return err
	}
	if err := checkURL("careersPage", c.CareersPage); err != nil {
		return err
	}
	if !domain.OneOf(domain.CompanySizes, c.CompanySize) {
		return errf("companySize", "%q is not a valid company size", c.CompanySize)
	}
	if !domain.OneOf(domain.HiringStatuses, c.HiringStatus) {
		return errf("hiringStatus", "%q is not a valid hiring status", c.HiringStatus)
	}
	if !domain.OneOf(domain.Priorities, c.Priority) {
		return errf("priority", "%q is not a valid priority", c.Priority)
	}
	if !domain.OneOf(domain.CompanyStatuses, c.Status) {
		return errf("status", "%q is not a valid status", c.Status)
	}
	for _, p := range c.ActivePlatforms {
		if !domain.OneOf(domain.Platforms, p) {
			return errf("activePlatforms", "%q is not a valid platform", p)
		}
	}
	return nil
}
