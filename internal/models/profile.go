package models

import "time"

type Profile struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Bio               string `json:"bio"`
	TargetRole        string `json:"targetRole"`
	YearsOfExperience string `json:"yearsOfExperience"`
}

// ExportDocument is the downloadable snapshot of a user's data.
type ExportDocument struct {
	Profile    Profile     `json:"profile"`
	Interviews []Interview `json:"interviews"`
	ExportDate time.Time   `json:"exportDate"`
}
