package domain

import "time"

type Company struct {
	ID                   string     `json:"id"`
	UserEmail            string     `json:"userEmail"`
	CompanyName          string     `json:"companyName"`
	Website              string     `json:"website"`
	CareersPage          string     `json:"careersPage"`
	Industry             string     `json:"industry"`
	CompanySize          string     `json:"companySize"`
	Headquarters         string     `json:"headquarters"`
	HiringStatus         string     `json:"hiringStatus"`
	JobOpeningsAvailable bool       `json:"jobOpeningsAvailable"`
	ActivePlatforms      []string   `json:"activePlatforms"`
	PreferredJobRoles    []string   `json:"preferredJobRoles"`
	Leads                []Lead     `json:"leads"`
	LastInteractionDate  *time.Time `json:"lastInteractionDate"`
	Priority             string     `json:"priority"`
	Tags                 []string   `json:"tags"`
	Notes                string     `json:"notes"`
	Bookmarked           bool       `json:"bookmarked"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// Lead is a contact embedded in a Company. It has no identity of its own;
// updates replace the parent's whole lead list in one write.
type Lead struct {
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Email           string     `json:"email"`
	Linkedin        string     `json:"linkedin"`
	ContactType     string     `json:"contactType"` // HR/Recruiter/Employee/Founder/Referral
	LastContactedAt *time.Time `json:"lastContactedAt"`
	Notes           string     `json:"notes"`
}
