package attendance

// Record is one raw attendance entry as returned by the LMS.
// DateText is free-form; downstream parsing owns all validation.
type Record struct {
	DateText    string `json:"date_text"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
