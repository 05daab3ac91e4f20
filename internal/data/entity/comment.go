package entity

type Comment struct {
	Base
	MovieID   int64  `db:"movie_id"`
	UserID    int64  `db:"user_id"`
	Text      string `db:"text"`
	Sentiment string `db:"sentiment"`
}

// CommentDetail is a comment joined with its movie title and author username
type CommentDetail struct {
	Comment
	MovieTitle string `db:"title"`
	Username   string `db:"username"`
}
