package model

// Course is one enrolled course as known to the attendance source.
type Course struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsCustom bool   `json:"is_custom"` // user-created course with no LMS record trail
}
