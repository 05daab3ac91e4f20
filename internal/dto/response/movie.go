package response

import "movie-reviews/internal/data/entity"

type MovieSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type MovieResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     int    `json:"year"`
	Genre    string `json:"genre"`
}

// DetailResponse is a plain acknowledgement body
type DetailResponse struct {
	Detail string `json:"detail"`
}

func MovieToSummary(movie *entity.Movie) MovieSummary {
	return MovieSummary{
		ID:    movie.ID,
		Title: movie.Title,
	}
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Director: movie.Director,
		Year:     movie.Year,
		Genre:    movie.Genre,
	}
}

func MoviesToSummaries(movies []*entity.Movie) []MovieSummary {
	out := make([]MovieSummary, len(movies))
	for i, movie := range movies {
		out[i] = MovieToSummary(movie)
	}
	return out
}
