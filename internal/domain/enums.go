package domain

// Closed value sets. The validator rejects anything outside these.

var JobStatuses = []string{
	"Applied",
	"HR Screening",
	"Interview Scheduled",
	"Technical Round",
	"Managerial Round",
	"Offered",
	"Rejected",
	"Ghosted",
	"Accepted",
	"Joined",
	"Withdrawn",
}

var JobTypes = []string{"Full-time", "Internship", "Part-time", "Contract", "Remote"}

var ApplicationSources = []string{
	"Campus", "Referral", "LinkedIn", "Indeed", "Company Website", "HR Email", "Other",
}

var CompanySizes = []string{"Startup", "SME", "Mid-size", "Enterprise", ""}

var HiringStatuses = []string{"Hiring", "Not Hiring", "Unknown"}

var Platforms = []string{
	"LinkedIn", "Indeed", "Glassdoor", "Company Website", "AngelList", "Naukri", "Other",
}

var Priorities = []string{"Low", "Medium", "High", "Dream"}

var CompanyStatuses = []string{"Interested", "Applied", "In Progress", "Rejected", "Offer Received"}

var ContactTypes = []string{"HR", "Recruiter", "Employee", "Founder", "Referral"}

func OneOf(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
