package model

// Viewer is an authenticated end-user as reported by the external identity
// provider. The storefront only ever reads it.
type Viewer struct {
	ID    string
	Email string
	Name  string
	Photo string
}
