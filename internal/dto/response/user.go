package response

import "movie-reviews/internal/data/entity"

type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Helper converters
func UserToSummary(user *entity.User) UserSummary {
	return UserSummary{
		ID:       user.ID,
		Username: user.Username,
	}
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
