package response

const TokenTypeBearer = "bearer"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
}
