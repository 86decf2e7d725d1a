package auth

import "errors"

// LoginDTO carries the credential exchange. The token endpoint accepts
// both JSON bodies and OAuth2-style form posts, hence the username alias.
type LoginDTO struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

func (dto *LoginDTO) Normalize() {
	if dto.Email == "" {
		dto.Email = dto.Username
	}
}

func (dto LoginDTO) Validate() error {
	if dto.Email == "" {
		return errors.New("email is required")
	}
	if dto.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// TokenSchema is the issued credential payload.
type TokenSchema struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
