package repository

// ListSessionRecordsOptions scopes a record listing to one course.
type ListSessionRecordsOptions struct {
	CourseID string
	// BypassCache forces a fresh fetch even when a cached copy exists.
	BypassCache bool
}
