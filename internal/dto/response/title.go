package response

import (
	"review-hub/internal/data/entity"
)

// TitleReadResponse is the list/retrieve shape: nested category and
// genre objects plus the computed rating (null when unreviewed).
type TitleReadResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Description *string           `json:"description,omitempty"`
	Rating      *float64          `json:"rating"`
	Category    *CategoryResponse `json:"category"`
	Genres      []GenreResponse   `json:"genre"`
}

// TitleWriteResponse is returned from create/update: flat slug
// identifiers instead of nested objects.
type TitleWriteResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category"`
	Genres      []string `json:"genre"`
}

func TitleToReadResponse(title *entity.TitleWithRating, category *entity.Category, genres []*entity.Genre) TitleReadResponse {
	resp := TitleReadResponse{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Rating:      title.Rating,
		Genres:      make([]GenreResponse, 0, len(genres)),
	}

	if category != nil {
		c := CategoryToResponse(category)
		resp.Category = &c
	}
	for _, genre := range genres {
		resp.Genres = append(resp.Genres, GenreToResponse(genre))
	}

	return resp
}

func TitleToWriteResponse(title *entity.Title, categorySlug *string, genreSlugs []string) TitleWriteResponse {
	if genreSlugs == nil {
		genreSlugs = []string{}
	}
	return TitleWriteResponse{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Category:    categorySlug,
		Genres:      genreSlugs,
	}
}
