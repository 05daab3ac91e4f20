package request

// CreateCommentRequest carries the author explicitly; the movie comes from the path.
// Both fields must be present, but an unknown user id is a 404 and empty text is allowed.
type CreateCommentRequest struct {
	UserID *int64  `json:"user_id" validate:"required"`
	Text   *string `json:"text" validate:"required"`
}
