package models

// DirectoryUser is a user entry from the host directory, used to pick
// share recipients.
type DirectoryUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// DirectoryRole is a role entry from the host directory.
type DirectoryRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
