package dto

// SessionRequest carries the identity-provider access token exchanged for a
// local session.
type SessionRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// ViewerResponse is the authenticated viewer profile.
type ViewerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
	Owner bool   `json:"owner"`
}

// SessionResponse returns the issued session token alongside the profile.
type SessionResponse struct {
	Token  string         `json:"token"`
	Viewer ViewerResponse `json:"viewer"`
}
