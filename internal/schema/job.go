package schema

import (
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
)

// JobInput is the raw create/patch payload for a job application. Pointer
// fields distinguish "absent" from "set to zero" so partial updates only
// touch what the caller sent.
type JobInput struct {
	UserEmail         *string    `json:"userEmail"`
	Company           *string    `json:"company"`
	Position          *string    `json:"position"`
	ApplicationDate   *time.Time `json:"applicationDate"`
	Status            *string    `json:"status"`
	Salary            *string    `json:"salary"`
	JobType           *string    `json:"jobType"`
	JobLocation       *string    `json:"jobLocation"`
	Reference         *string    `json:"reference"`
	Website           *string    `json:"website"`
	ApplicationSource *string    `json:"applicationSource"`
	Notes             *string    `json:"notes"`
	ResumeVersion     *string    `json:"resumeVersion"`
	FollowUpDate      *time.Time `json:"followUpDate"`
}

// NewJob validates a create payload and fills every optional field with its
// default. Timestamps are system-managed and never taken from the caller.
func NewJob(in JobInput, now time.Time) (domain.Job, error) {
	j := domain.Job{
		Status:            "Applied",
		JobType:           "Full-time",
		ApplicationSource: "Company Website",
		ApplicationDate:   now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if in.UserEmail == nil || isBlank(*in.UserEmail) {
		return domain.Job{}, errf("userEmail", "is required")
	}
	j.UserEmail = strings.TrimSpace(*in.UserEmail)

	if in.Company == nil || isBlank(*in.Company) {
		return domain.Job{}, errf("company", "is required")
	}
	j.Company = strings.TrimSpace(*in.Company)

	if in.Position == nil || isBlank(*in.Position) {
		return domain.Job{}, errf("position", "is required")
	}
	j.Position = strings.TrimSpace(*in.Position)

	applyJobFields(&j, in)
	if err := validateJob(j); err != nil {
		return domain.Job{}, err
	}
	return j, nil
}

// MergeJob lays a patch over an existing job and re-validates the result.
// The owner email is immutable once set.
func MergeJob(cur domain.Job, in JobInput, now time.Time) (domain.Job, error) {
	if in.UserEmail != nil && strings.TrimSpace(*in.UserEmail) != cur.UserEmail {
		return domain.Job{}, errf("userEmail", "cannot be changed")
	}
	j := cur
	if in.Company != nil {
		if isBlank(*in.Company) {
			return domain.Job{}, errf("company", "is required")
		}
		j.Company = strings.TrimSpace(*in.Company)
	}
	if in.Position != nil {
		if isBlank(*in.Position) {
			return domain.Job{}, errf("position", "is required")
		}
		j.Position = strings.TrimSpace(*in.Position)
	}
	applyJobFields(&j, in)
	if err := validateJob(j); err != nil {
		return domain.Job{}, err
	}
	j.UpdatedAt = now
	return j, nil
}

func applyJobFields(j *domain.Job, in JobInput) {
	if in.ApplicationDate != nil {
		j.ApplicationDate = *in.ApplicationDate
	}
	if in.Status != nil {
		j.Status = *in.Status
	}
	if in.Salary != nil {
		j.Salary = *in.Salary
	}
	if in.JobType != nil {
		j.JobType = *in.JobType
	}
	if in.JobLocation != nil {
		j.JobLocation = *in.JobLocation
	}
	if in.Reference != nil {
		j.Reference = *in.Reference
	}
	if in.Website != nil {
		j.Website = *in.Website
	}
	if in.ApplicationSource != nil {
		j.ApplicationSource = *in.ApplicationSource
	}
	if in.Notes != nil {
		j.Notes = *in.Notes
	}
	if in.ResumeVersion != nil {
		j.ResumeVersion = *in.ResumeVersion
	}
	if in.FollowUpDate != nil {
		j.FollowUpDate = in.FollowUpDate
	}
}

func validateJob(j domain.Job) error {
	if !domain.OneOf(domain.JobStatuses, j.Status) {
		return errf("status", "%q is not a valid status", j.Status)
	}
	if !domain.OneOf(domain.JobTypes, j.JobType) {
		return errf("jobType", "%q is not a valid job type", j.JobType)
	}
	if !domain.OneOf(domain.ApplicationSources, j.ApplicationSource) {
		return errf("applicationSource", "%q is not a valid application source", j.ApplicationSource)
	}
	return nil
}
