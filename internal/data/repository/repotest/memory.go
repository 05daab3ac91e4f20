// Package repotest provides in-memory repositories for tests of the layers
// above the database.
package repotest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
)

// ErrForeignKey mirrors a foreign key violation in the real schema
var ErrForeignKey = errors.New("foreign key violation")

// Store is a shared in-memory database behind the three repositories
type Store struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*entity.User
	movies   map[int64]*entity.Movie
	comments map[int64]*entity.Comment
}

func NewStore() *Store {
	return &Store{
		users:    map[int64]*entity.User{},
		movies:   map[int64]*entity.Movie{},
		comments: map[int64]*entity.Comment{},
	}
}

// Repository returns a repository.Repository backed by s
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:    &userRepo{s},
		Movie:   &movieRepo{s},
		Comment: &commentRepo{s},
	}
}

// CommentCount reports how many comments are stored
func (s *Store) CommentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.comments)
}

func (s *Store) id() (int64, time.Time) {
	s.nextID++
	return s.nextID, time.Now()
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return fmt.Errorf("create user %s: %w", user.Username, repository.ErrDuplicate)
		}
	}
	user.ID, user.CreatedAt = r.s.id()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.User{}
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

type movieRepo struct{ s *Store }

func (r *movieRepo) Create(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	movie.ID, movie.CreatedAt = r.s.id()
	cp := *movie
	r.s.movies[movie.ID] = &cp
	return nil
}

func (r *movieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *movieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return r.SearchByTitle(ctx, "")
}

func (r *movieRepo) SearchByTitle(_ context.Context, title string) ([]*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	needle := strings.ToLower(title)
	out := []*entity.Movie{}
	for _, m := range r.s.movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *movieRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.movies)), nil
}

func (r *movieRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.movies[id]; !ok {
		return false, nil
	}
	for cid, c := range r.s.comments {
		if c.MovieID == id {
			delete(r.s.comments, cid)
		}
	}
	delete(r.s.movies, id)
	return true, nil
}

type commentRepo struct{ s *Store }

func (r *commentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.movies[comment.MovieID]; !ok {
		return ErrForeignKey
	}
	if _, ok := r.s.users[comment.UserID]; !ok {
		return ErrForeignKey
	}
	comment.ID, comment.CreatedAt = r.s.id()
	cp := *comment
	r.s.comments[comment.ID] = &cp
	return nil
}

func (r *commentRepo) FindByMovieID(_ context.Context, movieID int64) ([]*entity.CommentDetail, error) {
	return r.find(func(c *entity.Comment) bool { return c.MovieID == movieID }), nil
}

func (r *commentRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.CommentDetail, error) {
	return r.find(func(c *entity.Comment) bool { return c.UserID == userID }), nil
}

func (r *commentRepo) find(match func(*entity.Comment) bool) []*entity.CommentDetail {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.CommentDetail{}
	for _, c := range r.s.comments {
		if !match(c) {
			continue
		}
		out = append(out, &entity.CommentDetail{
			Comment:    *c,
			MovieTitle: r.s.movies[c.MovieID].Title,
			Username:   r.s.users[c.UserID].Username,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
