package command

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// ClientIP scopes the attempt limiter; it never reaches storage.
	ClientIP string `json:"-"`
}

type LoginUserCommandResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
