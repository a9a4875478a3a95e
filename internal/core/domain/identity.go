package domain

// Identity is the authenticated caller, decoded from the access token
// by the auth middleware and passed into the services.
type Identity struct {
	ID    uint
	Email string
	Name  string
	Role  Role
}
