package response

import "movie-reviews/internal/data/entity"

type CommentResponse struct {
	MovieID   int64  `json:"movie_id"`
	Title     string `json:"title"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
}

func CommentToResponse(c *entity.CommentDetail) CommentResponse {
	return CommentResponse{
		MovieID:   c.MovieID,
		Title:     c.MovieTitle,
		UserID:    c.UserID,
		Username:  c.Username,
		Text:      c.Text,
		Sentiment: c.Sentiment,
	}
}

func CommentsToResponse(comments []*entity.CommentDetail) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = CommentToResponse(c)
	}
	return out
}
