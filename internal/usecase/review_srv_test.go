package usecase

import (
	"context"
	"testing"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reviewTestRepo(title *fakeTitleRepo, review *fakeReviewRepo, user *fakeUserRepo) *repository.Repository {
	if title == nil {
		title = &fakeTitleRepo{}
	}
	if review == nil {
		review = &fakeReviewRepo{}
	}
	if user == nil {
		user = &fakeUserRepo{}
	}
	return &repository.Repository{Title: title, Review: review, User: user}
}

func knownTitle(id int64) *fakeTitleRepo {
	return &fakeTitleRepo{
		FindByIDFn: func(ctx context.Context, got int64) (*entity.TitleWithRating, error) {
			if got == id {
				return &entity.TitleWithRating{Title: entity.Title{ID: id, Name: "Dune", Year: 1965}}, nil
			}
			return nil, nil
		},
	}
}

func TestReviewCreateUnknownTitle(t *testing.T) {
	svc := NewReviewService(reviewTestRepo(nil, nil, nil), zap.NewNop())
	author := &entity.User{ID: 1, Username: "reader", Role: entity.RoleUser}

	_, err := svc.Create(context.Background(), author, 99, &request.CreateReviewRequest{
		Text: "great", Score: 9,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewCreateSecondReviewRejected(t *testing.T) {
	reviews := &fakeReviewRepo{
		FindByTitleAndAuthorFn: func(ctx context.Context, titleID, authorID int64) (*entity.Review, error) {
			return &entity.Review{ID: 7, TitleID: titleID, AuthorID: authorID}, nil
		},
	}
	svc := NewReviewService(reviewTestRepo(knownTitle(1), reviews, nil), zap.NewNop())
	author := &entity.User{ID: 1, Username: "reader", Role: entity.RoleUser}

	_, err := svc.Create(context.Background(), author, 1, &request.CreateReviewRequest{
		Text: "again", Score: 5,
	})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestReviewCreateStampsAuthor(t *testing.T) {
	var stored *entity.Review
	reviews := &fakeReviewRepo{
		CreateFn: func(ctx context.Context, review *entity.Review) error {
			review.ID = 11
			stored = review
			return nil
		},
	}
	svc := NewReviewService(reviewTestRepo(knownTitle(1), reviews, nil), zap.NewNop())
	author := &entity.User{ID: 4, Username: "reader", Role: entity.RoleUser}

	resp, err := svc.Create(context.Background(), author, 1, &request.CreateReviewRequest{
		Text: "great", Score: 9,
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, int64(4), stored.AuthorID)
	assert.Equal(t, int64(1), stored.TitleID)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "reader", resp.Author)
	assert.Equal(t, 9, resp.Score)
}

func TestReviewScoreOutOfRange(t *testing.T) {
	svc := NewReviewService(reviewTestRepo(knownTitle(1), nil, nil), zap.NewNop())
	author := &entity.User{ID: 1, Username: "reader", Role: entity.RoleUser}

	for _, score := range []int{0, -1, 11} {
		_, err := svc.Create(context.Background(), author, 1, &request.CreateReviewRequest{
			Text: "x", Score: score,
		})
		assert.ErrorIs(t, err, ErrValidation, "score %d", score)
	}

	bad := 11
	_, err := svc.Update(context.Background(), author, 1, 7, &request.UpdateReviewRequest{Score: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReviewGetMismatchedTitleIsNotFound(t *testing.T) {
	reviews := &fakeReviewRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*entity.Review, error) {
			return &entity.Review{ID: id, TitleID: 2, AuthorID: 1}, nil
		},
	}
	svc := NewReviewService(reviewTestRepo(knownTitle(1), reviews, nil), zap.NewNop())

	// Review 7 exists but belongs to title 2, not title 1.
	_, err := svc.Get(context.Background(), 1, 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewUpdatePermissions(t *testing.T) {
	existing := func() *fakeReviewRepo {
		return &fakeReviewRepo{
			FindByIDFn: func(ctx context.Context, id int64) (*entity.Review, error) {
				return &entity.Review{ID: id, TitleID: 1, AuthorID: 4, Text: "old", Score: 3, CreatedAt: time.Now()}, nil
			},
		}
	}
	users := &fakeUserRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, Username: "reader"}, nil
		},
	}
	text := "revised"
	score := 8

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc := NewReviewService(reviewTestRepo(knownTitle(1), existing(), users), zap.NewNop())
		stranger := &entity.User{ID: 9, Username: "stranger", Role: entity.RoleUser}

		_, err := svc.Update(context.Background(), stranger, 1, 7, &request.UpdateReviewRequest{Text: &text})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("author may update", func(t *testing.T) {
		svc := NewReviewService(reviewTestRepo(knownTitle(1), existing(), users), zap.NewNop())
		author := &entity.User{ID: 4, Username: "reader", Role: entity.RoleUser}

		resp, err := svc.Update(context.Background(), author, 1, 7, &request.UpdateReviewRequest{Text: &text, Score: &score})
		require.NoError(t, err)
		assert.Equal(t, "revised", resp.Text)
		assert.Equal(t, 8, resp.Score)
	})

	t.Run("moderator may update", func(t *testing.T) {
		svc := NewReviewService(reviewTestRepo(knownTitle(1), existing(), users), zap.NewNop())
		moderator := &entity.User{ID: 9, Username: "mod", Role: entity.RoleModerator}

		_, err := svc.Update(context.Background(), moderator, 1, 7, &request.UpdateReviewRequest{Score: &score})
		assert.NoError(t, err)
	})
}

func TestReviewDeletePermissions(t *testing.T) {
	existing := func() *fakeReviewRepo {
		return &fakeReviewRepo{
			FindByIDFn: func(ctx context.Context, id int64) (*entity.Review, error) {
				return &entity.Review{ID: id, TitleID: 1, AuthorID: 4}, nil
			},
		}
	}

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc := NewReviewService(reviewTestRepo(knownTitle(1), existing(), nil), zap.NewNop())
		stranger := &entity.User{ID: 9, Username: "stranger", Role: entity.RoleUser}

		err := svc.Delete(context.Background(), stranger, 1, 7)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin may delete", func(t *testing.T) {
		svc := NewReviewService(reviewTestRepo(knownTitle(1), existing(), nil), zap.NewNop())
		admin := &entity.User{ID: 9, Username: "root", Role: entity.RoleAdmin}

		err := svc.Delete(context.Background(), admin, 1, 7)
		assert.NoError(t, err)
	})
}
