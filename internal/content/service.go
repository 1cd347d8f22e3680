package content

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gocms/internal/common"
	"gocms/internal/dbmysql"
)

// RecentLimit is the fixed size of the unpaginated "recent" view.
const RecentLimit = 5

// Item is the serialized view of a content item returned to callers.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Date      string `json:"date"`

	ImageURL         string `json:"image_url,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	FileURL          string `json:"file_url,omitempty"`
	FileName         string `json:"file_name,omitempty"`
	FileSize         int64  `json:"file_size,omitempty"`
}

// CreateInput carries the caller-supplied fields for a new item.
type CreateInput struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	Category         string `json:"category"`
	Status           string `json:"status"`
	ImageURL         string `json:"image_url"`
	ShortDescription string `json:"short_description"`
	FileURL          string `json:"file_url"`
	FileName         string `json:"file_name"`
	FileSize         int64  `json:"file_size"`
}

// UpdateInput carries a partial update; nil fields keep their prior value.
// id, collection and created_at are immutable and have no input field.
type UpdateInput struct {
	Title            *string `json:"title"`
	Content          *string `json:"content"`
	Category         *string `json:"category"`
	Status           *string `json:"status"`
	ImageURL         *string `json:"image_url"`
	ShortDescription *string `json:"short_description"`
	FileURL          *string `json:"file_url"`
	FileName         *string `json:"file_name"`
	FileSize         *int64  `json:"file_size"`
}

// ListResult bundles a page of items with its pagination metadata.
type ListResult struct {
	Items          []Item
	Total          int
	Pagination     common.Pagination
	CategoryFilter []string
}

type Service struct {
	repo  Repository
	log   *zap.SugaredLogger
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, log *zap.SugaredLogger) *Service {
	return &Service{
		repo:  repo,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Create validates the input and persists a new item. Status defaults to
// published; created_at and updated_at are set to the same instant.
func (s *Service) Create(ctx context.Context, collection Collection, input CreateInput) (*Item, error) {
	if err := common.RequireField("title", input.Title); err != nil {
		return nil, err
	}
	if err := common.RequireField("content", input.Content); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(input.Category)
	if err := CheckCategory(collection, category); err != nil {
		return nil, err
	}

	status, err := normalizeStatus(input.Status)
	if err != nil {
		return nil, err
	}

	if input.FileSize < 0 {
		return nil, common.NewValidationError("file_size", "must be non-negative")
	}

	now := s.now()
	item := &dbmysql.ContentItem{
		ID:         s.newID(),
		Collection: collection.String(),
		Title:      strings.TrimSpace(input.Title),
		Content:    strings.TrimSpace(input.Content),
		Category:   category,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyOptionalFields(collection, item, input)

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Infow("item created", "collection", collection, "id", item.ID)
	view := toItem(item)
	return &view, nil
}

// Get looks up an item within its collection.
func (s *Service) Get(ctx context.Context, collection Collection, id string) (*Item, error) {
	if err := common.RequireField("id", id); err != nil {
		return nil, err
	}
	item, err := s.repo.GetByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	view := toItem(item)
	return &view, nil
}

// List returns one 1-based page of the collection, newest first. An empty
// filter means no filtering; each filter label must belong to the
// collection's vocabulary.
func (s *Service) List(ctx context.Context, collection Collection, page, limit int, categories []string) (*ListResult, error) {
	for _, category := range categories {
		if err := CheckCategory(collection, category); err != nil {
			return nil, err
		}
	}

	offset := (page - 1) * limit
	items, total, err := s.repo.List(ctx, collection, categories, offset, limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items:          toItems(items),
		Total:          int(total),
		Pagination:     common.NewPagination(page, limit, int(total)),
		CategoryFilter: categories,
	}, nil
}

// Recent returns the newest items of the collection, capped at RecentLimit,
// with the same filter semantics as List.
func (s *Service) Recent(ctx context.Context, collection Collection, categories []string) ([]Item, error) {
	for _, category := range categories {
		if err := CheckCategory(collection, category); err != nil {
			return nil, err
		}
	}

	items, err := s.repo.Recent(ctx, collection, categories, RecentLimit)
	if err != nil {
		return nil, err
	}
	return toItems(items), nil
}

// Update merges the supplied fields into the existing item. A supplied
// category must re-pass validation; updated_at is always refreshed.
func (s *Service) Update(ctx context.Context, collection Collection, id string, input UpdateInput) (*Item, error) {
	if err := common.RequireField("id", id); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := common.RequireField("title", *input.Title); err != nil {
			return nil, err
		}
		item.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		if err := common.RequireField("content", *input.Content); err != nil {
			return nil, err
		}
		item.Content = strings.TrimSpace(*input.Content)
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if err := CheckCategory(collection, category); err != nil {
			return nil, err
		}
		item.Category = category
	}
	if input.Status != nil {
		status, err := normalizeStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		item.Status = status
	}
	if err := mergeOptionalFields(collection, item, input); err != nil {
		return nil, err
	}

	item.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.log.Infow("item updated", "collection", collection, "id", id)
	view := toItem(item)
	return &view, nil
}

// Delete hard-deletes the item. Deleting an already deleted id reports
// NotFoundError.
func (s *Service) Delete(ctx context.Context, collection Collection, id string) error {
	if err := common.RequireField("id", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.log.Infow("item deleted", "collection", collection, "id", id)
	return nil
}

func normalizeStatus(status string) (string, error) {
	switch strings.TrimSpace(status) {
	case "":
		return "published", nil
	case "published":
		return "published", nil
	case "draft":
		return "draft", nil
	default:
		return "", common.NewValidationError("status", "must be published or draft")
	}
}

// applyOptionalFields copies the optional fields that apply to the
// collection; fields for other collections are silently ignored.
func applyOptionalFields(collection Collection, item *dbmysql.ContentItem, input CreateInput) {
	switch collection {
	case CollectionNews:
		item.ImageURL = strings.TrimSpace(input.ImageURL)
		item.ShortDescription = strings.TrimSpace(input.ShortDescription)
	case CollectionGallery:
		item.ImageURL = strings.TrimSpace(input.ImageURL)
		item.FileURL = strings.TrimSpace(input.FileURL)
		item.FileName = strings.TrimSpace(input.FileName)
		item.FileSize = input.FileSize
	}
}

func mergeOptionalFields(collection Collection, item *dbmysql.ContentItem, input UpdateInput) error {
	switch collection {
	case CollectionNews:
		if input.ImageURL != nil {
			item.ImageURL = strings.TrimSpace(*input.ImageURL)
		}
		if input.ShortDescription != nil {
			item.ShortDescription = strings.TrimSpace(*input.ShortDescription)
		}
	case CollectionGallery:
		if input.ImageURL != nil {
			item.ImageURL = strings.TrimSpace(*input.ImageURL)
		}
		if input.FileURL != nil {
			item.FileURL = strings.TrimSpace(*input.FileURL)
		}
		if input.FileName != nil {
			item.FileName = strings.TrimSpace(*input.FileName)
		}
		if input.FileSize != nil {
			if *input.FileSize < 0 {
				return common.NewValidationError("file_size", "must be non-negative")
			}
			item.FileSize = *input.FileSize
		}
	}
	return nil
}

func toItem(item *dbmysql.ContentItem) Item {
	createdAt := item.CreatedAt.UTC()
	return Item{
		ID:               item.ID,
		Title:            item.Title,
		Content:          item.Content,
		Category:         item.Category,
		Status:           item.Status,
		CreatedAt:        createdAt.Format(time.RFC3339),
		UpdatedAt:        item.UpdatedAt.UTC().Format(time.RFC3339),
		Date:             createdAt.Format("2006-01-02"),
		ImageURL:         item.ImageURL,
		ShortDescription: item.ShortDescription,
		FileURL:          item.FileURL,
		FileName:         item.FileName,
		FileSize:         item.FileSize,
	}
}

func toItems(items []dbmysql.ContentItem) []Item {
	out := make([]Item, 0, len(items))
	for i := range items {
		out = append(out, toItem(&items[i]))
	}
	return out
}
