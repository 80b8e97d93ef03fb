package common

// UserResult is the public projection of a user; the password credential
// never leaves the application layer.
type UserResult struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type PostResult struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	OwnerID uint   `json:"owner_id"`
}
