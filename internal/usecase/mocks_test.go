package usecase

import (
	"context"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"

	"github.com/google/uuid"
)

// Function-field fakes: tests set only the methods a scenario touches,
// everything else returns zero values.

type fakeUserRepo struct {
	CreateFn         func(ctx context.Context, user *entity.User) error
	FindByIDFn       func(ctx context.Context, id int64) (*entity.User, error)
	FindByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	FindByEmailFn    func(ctx context.Context, email string) (*entity.User, error)
	UpdateFn         func(ctx context.Context, user *entity.User) error
	RotateCodeSaltFn func(ctx context.Context, id int64, salt uuid.UUID) error
	DeleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.FindByUsernameFn != nil {
		return f.FindByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context, search string) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) RotateCodeSalt(ctx context.Context, id int64, salt uuid.UUID) error {
	if f.RotateCodeSaltFn != nil {
		return f.RotateCodeSaltFn(ctx, id, salt)
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeCategoryRepo struct {
	CreateFn       func(ctx context.Context, category *entity.Category) error
	FindBySlugFn   func(ctx context.Context, slug string) (*entity.Category, error)
	FindAllFn      func(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error)
	CountAllFn     func(ctx context.Context, search string) (int64, error)
	DeleteBySlugFn func(ctx context.Context, slug string) (bool, error)
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, category)
	}
	return nil
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	if f.FindBySlugFn != nil {
		return f.FindBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, search, limit, offset)
	}
	return nil, nil
}

func (f *fakeCategoryRepo) CountAll(ctx context.Context, search string) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx, search)
	}
	return 0, nil
}

func (f *fakeCategoryRepo) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	if f.DeleteBySlugFn != nil {
		return f.DeleteBySlugFn(ctx, slug)
	}
	return false, nil
}

type fakeGenreRepo struct {
	CreateFn       func(ctx context.Context, genre *entity.Genre) error
	FindBySlugFn   func(ctx context.Context, slug string) (*entity.Genre, error)
	DeleteBySlugFn func(ctx context.Context, slug string) (bool, error)
}

func (f *fakeGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, genre)
	}
	return nil
}

func (f *fakeGenreRepo) FindBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	if f.FindBySlugFn != nil {
		return f.FindBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	return nil, nil
}

func (f *fakeGenreRepo) CountAll(ctx context.Context, search string) (int64, error) {
	return 0, nil
}

func (f *fakeGenreRepo) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	if f.DeleteBySlugFn != nil {
		return f.DeleteBySlugFn(ctx, slug)
	}
	return false, nil
}

type fakeTitleRepo struct {
	CreateFn         func(ctx context.Context, title *entity.Title, genreIDs []int64) error
	FindByIDFn       func(ctx context.Context, id int64) (*entity.TitleWithRating, error)
	DeleteFn         func(ctx context.Context, id int64) (bool, error)
	GenresForTitleFn func(ctx context.Context, titleID int64) ([]*entity.Genre, error)
}

func (f *fakeTitleRepo) Create(ctx context.Context, title *entity.Title, genreIDs []int64) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, title, genreIDs)
	}
	return nil
}

func (f *fakeTitleRepo) FindByID(ctx context.Context, id int64) (*entity.TitleWithRating, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeTitleRepo) FindAll(ctx context.Context, filter repository.TitleFilter, limit, offset int) ([]*entity.TitleWithRating, error) {
	return nil, nil
}

func (f *fakeTitleRepo) CountAll(ctx context.Context, filter repository.TitleFilter) (int64, error) {
	return 0, nil
}

func (f *fakeTitleRepo) Update(ctx context.Context, title *entity.Title, genreIDs []int64, replaceGenres bool) error {
	return nil
}

func (f *fakeTitleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return false, nil
}

func (f *fakeTitleRepo) GenresForTitle(ctx context.Context, titleID int64) ([]*entity.Genre, error) {
	if f.GenresForTitleFn != nil {
		return f.GenresForTitleFn(ctx, titleID)
	}
	return nil, nil
}

type fakeReviewRepo struct {
	CreateFn               func(ctx context.Context, review *entity.Review) error
	FindByIDFn             func(ctx context.Context, id int64) (*entity.Review, error)
	FindByTitleAndAuthorFn func(ctx context.Context, titleID, authorID int64) (*entity.Review, error)
	UpdateFn               func(ctx context.Context, review *entity.Review) error
	DeleteFn               func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, review)
	}
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByTitleID(ctx context.Context, titleID int64, limit, offset int) ([]*entity.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) FindByTitleAndAuthor(ctx context.Context, titleID, authorID int64) (*entity.Review, error) {
	if f.FindByTitleAndAuthorFn != nil {
		return f.FindByTitleAndAuthorFn(ctx, titleID, authorID)
	}
	return nil, nil
}

func (f *fakeReviewRepo) CountByTitleID(ctx context.Context, titleID int64) (int64, error) {
	return 0, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, review)
	}
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return true, nil
}

// captureMailer records the last dispatched code instead of sending it.
type captureMailer struct {
	Email string
	Code  string
	Err   error
}

func (m *captureMailer) SendConfirmationCode(email, username, code string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Email = email
	m.Code = code
	return nil
}
