package content

import (
	"fmt"
	"strings"

	"gocms/internal/common"
)

// Collection is one of the three logical content types sharing the same
// underlying table.
type Collection string

const (
	CollectionNews    Collection = "news"
	CollectionGallery Collection = "gallery"
	CollectionBoard   Collection = "board"
)

func (c Collection) String() string {
	return string(c)
}

func (c Collection) IsValid() bool {
	return c == CollectionNews || c == CollectionGallery || c == CollectionBoard
}

func ParseCollection(s string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", common.NewValidationError("collection", fmt.Sprintf("unknown collection %q", s))
	}
	return c, nil
}

// Collections lists every known collection.
func Collections() []Collection {
	return []Collection{CollectionNews, CollectionGallery, CollectionBoard}
}

// Per-collection category vocabularies. The sets are disjoint; items are
// never persisted with a category outside their collection's set.
var categoryVocabularies = map[Collection][]string{
	CollectionNews:    {"센터소식", "프로그램소식", "행사소식", "생활정보", "기타"},
	CollectionGallery: {"공지사항", "질문", "건의", "참고자료", "세미나", "일정"},
	CollectionBoard:   {"자유글", "질문답변", "후기"},
}

// AllowedCategories returns a copy of the collection's vocabulary.
func AllowedCategories(c Collection) []string {
	vocab := categoryVocabularies[c]
	out := make([]string, len(vocab))
	copy(out, vocab)
	return out
}

// CheckCategory validates a category label against the collection's
// vocabulary. The empty category is permitted; categories are optional at
// write time.
func CheckCategory(c Collection, category string) error {
	if category == "" {
		return nil
	}
	for _, allowed := range categoryVocabularies[c] {
		if category == allowed {
			return nil
		}
	}
	return common.NewValidationError("category",
		fmt.Sprintf("invalid category %q for %s, allowed: %s",
			category, c, strings.Join(categoryVocabularies[c], ", ")))
}
