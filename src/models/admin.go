package models

// AdminProfile is the authenticated admin identity as reported by the
// backend. The password is never round-tripped on reads.
type AdminProfile struct {
	Login string `json:"login"`
}

// Credentials is the login form payload forwarded to the backend.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ProfileUpdate is a partial update of the admin account. Empty fields
// are omitted from the request body.
type ProfileUpdate struct {
	Login    string `json:"login,omitempty"`
	Password string `json:"password,omitempty"`
}
