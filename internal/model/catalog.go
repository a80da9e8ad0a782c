package model

// Client is a billing client that owns projects.
type Client struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Project is a body of work, optionally attached to a client.
// The editing session treats projects as read-only reference data.
type Project struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Code       *string `json:"code,omitempty" db:"code"`
	SubCode    *string `json:"sub_code,omitempty" db:"sub_code"`
	ClientID   *int64  `json:"client_id,omitempty" db:"client_id"`
	ClientName *string `json:"client_name,omitempty" db:"client_name"`
}

// Stage is a named phase of work belonging to exactly one project.
type Stage struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	ProjectID   int64  `json:"project_id" db:"project_id"`
	ProjectName string `json:"project_name" db:"project_name"`
}

// Focus is an optional orthogonal tag on a log entry, independent of
// the client/project/stage hierarchy.
type Focus struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
