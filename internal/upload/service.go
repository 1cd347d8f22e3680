package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gocms/internal/common"
	"gocms/internal/content"
)

// TTL is how long a write authorization stays valid.
const TTL = 15 * time.Minute

// Presigner produces write-authorized URLs and stable read URLs for object
// keys. Satisfied by storage.S3Store.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	PublicURL(key string) string
}

// Authorization is a short-lived credential permitting a single write to one
// object-storage location, plus the read URL the object will have.
type Authorization struct {
	UploadURL   string `json:"upload_url"`
	FileKey     string `json:"file_key"`
	FileURL     string `json:"file_url"`
	ContentType string `json:"content_type"`
	ExpiresIn   int    `json:"expires_in"`
	ExpiresAt   string `json:"expires_at"`
}

// allowedContentTypes maps each accepted MIME type to the file extension
// used in generated object keys.
var allowedContentTypes = map[string]string{
	"image/jpeg":          ".jpg",
	"image/jpg":           ".jpg",
	"image/png":           ".png",
	"image/gif":           ".gif",
	"image/webp":          ".webp",
	"application/pdf":     ".pdf",
	"text/plain":          ".txt",
	"application/msword":  ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// AllowedContentTypes returns the accepted MIME types.
func AllowedContentTypes() []string {
	out := make([]string, 0, len(allowedContentTypes))
	for contentType := range allowedContentTypes {
		out = append(out, contentType)
	}
	return out
}

type Service struct {
	presigner Presigner
	log       *zap.SugaredLogger
	now       func() time.Time
	newID     func() string
}

func NewService(presigner Presigner, log *zap.SugaredLogger) *Service {
	return &Service{
		presigner: presigner,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Authorize validates the declared content type and returns a write
// authorization for a fresh key namespaced by collection. It does not
// perform the upload and never learns whether one happens.
func (s *Service) Authorize(ctx context.Context, collection content.Collection, contentType string) (*Authorization, error) {
	if err := common.RequireField("content_type", contentType); err != nil {
		return nil, err
	}

	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, common.NewValidationError("content_type",
			fmt.Sprintf("unsupported content type %q, allowed: %s",
				contentType, strings.Join(AllowedContentTypes(), ", ")))
	}

	now := s.now()
	key := fmt.Sprintf("%s/%s_%s%s",
		collection.String(),
		now.Format("20060102_150405"),
		s.newID()[:8],
		ext,
	)

	uploadURL, err := s.presigner.PresignPut(ctx, key, contentType, TTL)
	if err != nil {
		return nil, common.NewStorageError("presign", err)
	}

	s.log.Infow("upload authorized", "collection", collection, "key", key)
	return &Authorization{
		UploadURL:   uploadURL,
		FileKey:     key,
		FileURL:     s.presigner.PublicURL(key),
		ContentType: contentType,
		ExpiresIn:   int(TTL.Seconds()),
		ExpiresAt:   now.Add(TTL).Format(time.RFC3339),
	}, nil
}
