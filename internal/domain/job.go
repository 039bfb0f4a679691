package domain

import "time"

type Job struct {
	ID                string     `json:"id"`
	UserEmail         string     `json:"userEmail"`
	Company           string     `json:"company"`
	Position          string     `json:"position"`
	ApplicationDate   time.Time  `json:"applicationDate"`
	Status            string     `json:"status"`
	Salary            string     `json:"salary"`
	JobType           string     `json:"jobType"`
	JobLocation       string     `json:"jobLocation"`
	Reference         string     `json:"reference"`
	Website           string     `json:"website"`
	ApplicationSource string     `json:"applicationSource"`
	Notes             string     `json:"notes"`
	ResumeVersion     string     `json:"resumeVersion"`
	FollowUpDate      *time.Time `json:"followUpDate"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
