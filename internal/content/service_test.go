package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gocms/internal/common"
	"gocms/internal/dbmysql"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	svc := NewService(repo, zap.NewNop().Sugar())
	svc.now = func() time.Time { return testNow }

	ids := 0
	svc.newID = func() string {
		ids++
		return "item-" + string(rune('0'+ids))
	}
	return svc, repo
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		collection  Collection
		input       CreateInput
		setup       func(repo *MockRepository)
		wantErr     bool
		errContains string
		check       func(t *testing.T, item *Item)
	}{
		{
			name:       "success with defaults",
			collection: CollectionNews,
			input:      CreateInput{Title: " First post ", Content: "body", Category: "센터소식"},
			setup: func(repo *MockRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, item *dbmysql.ContentItem) error {
						require.Equal(t, "news", item.Collection)
						require.True(t, item.CreatedAt.Equal(item.UpdatedAt))
						return nil
					})
			},
			check: func(t *testing.T, item *Item) {
				require.Equal(t, "First post", item.Title)
				require.Equal(t, "published", item.Status)
				require.Equal(t, item.CreatedAt, item.UpdatedAt)
				require.Equal(t, "2024-05-01", item.Date)
			},
		},
		{
			name:       "explicit draft status",
			collection: CollectionNews,
			input:      CreateInput{Title: "t", Content: "c", Status: "draft"},
			setup: func(repo *MockRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, item *Item) {
				require.Equal(t, "draft", item.Status)
			},
		},
		{
			name:        "missing title",
			collection:  CollectionNews,
			input:       CreateInput{Title: "  ", Content: "c"},
			setup:       func(repo *MockRepository) {},
			wantErr:     true,
			errContains: "title",
		},
		{
			name:        "missing content",
			collection:  CollectionNews,
			input:       CreateInput{Title: "t"},
			setup:       func(repo *MockRepository) {},
			wantErr:     true,
			errContains: "content",
		},
		{
			name:        "category from another collection rejected, nothing persisted",
			collection:  CollectionNews,
			input:       CreateInput{Title: "t", Content: "c", Category: "공지사항"},
			setup:       func(repo *MockRepository) {},
			wantErr:     true,
			errContains: "category",
		},
		{
			name:        "unknown status",
			collection:  CollectionNews,
			input:       CreateInput{Title: "t", Content: "c", Status: "archived"},
			setup:       func(repo *MockRepository) {},
			wantErr:     true,
			errContains: "status",
		},
		{
			name:        "negative file size",
			collection:  CollectionGallery,
			input:       CreateInput{Title: "t", Content: "c", FileSize: -1},
			setup:       func(repo *MockRepository) {},
			wantErr:     true,
			errContains: "file_size",
		},
		{
			name:       "board ignores image and file fields",
			collection: CollectionBoard,
			input:      CreateInput{Title: "t", Content: "c", Category: "자유글", ImageURL: "http://x/y.png", FileURL: "http://x/z.pdf"},
			setup: func(repo *MockRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, item *dbmysql.ContentItem) error {
						require.Empty(t, item.ImageURL)
						require.Empty(t, item.FileURL)
						return nil
					})
			},
			check: func(t *testing.T, item *Item) {
				require.Empty(t, item.ImageURL)
			},
		},
		{
			name:       "store failure surfaces as storage error",
			collection: CollectionNews,
			input:      CreateInput{Title: "t", Content: "c"},
			setup: func(repo *MockRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).
					Return(common.NewStorageError("create", errors.New("db is down")))
			},
			wantErr:     true,
			errContains: "storage",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			tc.setup(repo)

			item, err := svc.Create(ctx, tc.collection, tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errContains)
				require.Nil(t, item)
			} else {
				require.NoError(t, err)
				require.NotNil(t, item)
				require.NotEmpty(t, item.ID)
				if tc.check != nil {
					tc.check(t, item)
				}
			}
		})
	}
}

func TestService_CreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

	first, err := svc.Create(ctx, CollectionNews, CreateInput{Title: "a", Content: "b"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CollectionNews, CreateInput{Title: "c", Content: "d"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		svc, repo := newTestService(t)
		stored := &dbmysql.ContentItem{
			ID:         "item-1",
			Collection: "news",
			Title:      "t",
			Content:    "c",
			Category:   "센터소식",
			Status:     "published",
			CreatedAt:  testNow,
			UpdatedAt:  testNow,
		}
		repo.EXPECT().GetByID(ctx, CollectionNews, "item-1").Return(stored, nil)

		item, err := svc.Get(ctx, CollectionNews, "item-1")
		require.NoError(t, err)
		require.Equal(t, "item-1", item.ID)
		require.Equal(t, "센터소식", item.Category)
		require.Equal(t, testNow.Format(time.RFC3339), item.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByID(ctx, CollectionNews, "missing").
			Return(nil, common.NewNotFoundError("news", "missing"))

		_, err := svc.Get(ctx, CollectionNews, "missing")
		var notFound *common.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("empty id", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Get(ctx, CollectionNews, "")
		var validationErr *common.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func makeStoredItems(collection string, n int) []dbmysql.ContentItem {
	items := make([]dbmysql.ContentItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, dbmysql.ContentItem{
			ID:         "stored-" + string(rune('a'+i)),
			Collection: collection,
			Title:      "t",
			Content:    "c",
			Status:     "published",
			CreatedAt:  testNow.Add(-time.Duration(i) * time.Minute),
			UpdatedAt:  testNow,
		})
	}
	return items
}

func TestService_ListPagination(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		returned   int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{name: "first of three pages", page: 1, limit: 10, total: 23, returned: 10, wantPages: 3, wantNext: true, wantPrev: false},
		{name: "middle page", page: 2, limit: 10, total: 23, returned: 10, wantPages: 3, wantNext: true, wantPrev: true},
		{name: "last partial page", page: 3, limit: 10, total: 23, returned: 3, wantPages: 3, wantNext: false, wantPrev: true},
		{name: "exact multiple", page: 2, limit: 10, total: 20, returned: 10, wantPages: 2, wantNext: false, wantPrev: true},
		{name: "page beyond end is empty", page: 5, limit: 10, total: 23, returned: 0, wantPages: 3, wantNext: false, wantPrev: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			repo.EXPECT().List(ctx, CollectionNews, gomock.Nil(), (tc.page-1)*tc.limit, tc.limit).
				Return(makeStoredItems("news", tc.returned), tc.total, nil)

			result, err := svc.List(ctx, CollectionNews, tc.page, tc.limit, nil)
			require.NoError(t, err)
			require.Len(t, result.Items, tc.returned)
			require.Equal(t, int(tc.total), result.Total)
			require.Equal(t, tc.page, result.Pagination.CurrentPage)
			require.Equal(t, tc.wantPages, result.Pagination.TotalPages)
			require.Equal(t, tc.wantNext, result.Pagination.HasNext)
			require.Equal(t, tc.wantPrev, result.Pagination.HasPrev)
		})
	}
}

func TestService_ListCategoryFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("filter is passed through and echoed", func(t *testing.T) {
		svc, repo := newTestService(t)
		filter := []string{"센터소식", "행사소식"}
		repo.EXPECT().List(ctx, CollectionNews, filter, 0, 10).
			Return(makeStoredItems("news", 2), int64(2), nil)

		result, err := svc.List(ctx, CollectionNews, 1, 10, filter)
		require.NoError(t, err)
		require.Equal(t, filter, result.CategoryFilter)
	})

	t.Run("filter label from another collection rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.List(ctx, CollectionNews, 1, 10, []string{"공지사항"})
		var validationErr *common.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestService_Recent(t *testing.T) {
	ctx := context.Background()

	t.Run("capped at five newest", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Recent(ctx, CollectionBoard, gomock.Nil(), RecentLimit).
			Return(makeStoredItems("board", 5), nil)

		items, err := svc.Recent(ctx, CollectionBoard, nil)
		require.NoError(t, err)
		require.Len(t, items, 5)
	})

	t.Run("invalid filter rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Recent(ctx, CollectionBoard, []string{"센터소식"})
		require.Error(t, err)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	createdAt := testNow.Add(-48 * time.Hour)

	existing := func() *dbmysql.ContentItem {
		return &dbmysql.ContentItem{
			ID:         "item-1",
			Collection: "news",
			Title:      "old title",
			Content:    "old content",
			Category:   "센터소식",
			Status:     "published",
			ImageURL:   "http://img/old.png",
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		}
	}

	t.Run("title-only merge keeps everything else", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByID(ctx, CollectionNews, "item-1").Return(existing(), nil)

		var saved *dbmysql.ContentItem
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, item *dbmysql.ContentItem) error {
				saved = item
				return nil
			})

		title := "new title"
		item, err := svc.Update(ctx, CollectionNews, "item-1", UpdateInput{Title: &title})
		require.NoError(t, err)

		require.Equal(t, "new title", saved.Title)
		require.Equal(t, "old content", saved.Content)
		require.Equal(t, "센터소식", saved.Category)
		require.True(t, saved.CreatedAt.Equal(createdAt))
		require.True(t, saved.UpdatedAt.Equal(testNow))
		require.Equal(t, testNow.Format(time.RFC3339), item.UpdatedAt)
		require.Equal(t, createdAt.Format(time.RFC3339), item.CreatedAt)
	})

	t.Run("supplied category revalidated", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByID(ctx, CollectionNews, "item-1").Return(existing(), nil)

		bad := "공지사항"
		_, err := svc.Update(ctx, CollectionNews, "item-1", UpdateInput{Category: &bad})
		var validationErr *common.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByID(ctx, CollectionNews, "item-1").Return(existing(), nil)

		empty := "   "
		_, err := svc.Update(ctx, CollectionNews, "item-1", UpdateInput{Title: &empty})
		require.Error(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByID(ctx, CollectionNews, "missing").
			Return(nil, common.NewNotFoundError("news", "missing"))

		title := "x"
		_, err := svc.Update(ctx, CollectionNews, "missing", UpdateInput{Title: &title})
		var notFound *common.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("status can be switched to draft", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByID(ctx, CollectionNews, "item-1").Return(existing(), nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		draft := "draft"
		item, err := svc.Update(ctx, CollectionNews, "item-1", UpdateInput{Status: &draft})
		require.NoError(t, err)
		require.Equal(t, "draft", item.Status)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success then not found", func(t *testing.T) {
		svc, repo := newTestService(t)
		gomock.InOrder(
			repo.EXPECT().Delete(ctx, CollectionNews, "item-1").Return(nil),
			repo.EXPECT().Delete(ctx, CollectionNews, "item-1").
				Return(common.NewNotFoundError("news", "item-1")),
		)

		require.NoError(t, svc.Delete(ctx, CollectionNews, "item-1"))

		err := svc.Delete(ctx, CollectionNews, "item-1")
		var notFound *common.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("empty id", func(t *testing.T) {
		svc, _ := newTestService(t)
		require.Error(t, svc.Delete(ctx, CollectionNews, ""))
	})
}
