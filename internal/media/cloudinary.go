package media

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/studio-api/internal/config"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// CloudinaryStorage implements Storage against a Cloudinary-compatible
// upload API using signed requests.
type CloudinaryStorage struct {
	cfg    config.StorageConfig
	client *http.Client
}

// NewCloudinaryStorage builds the client.
func NewCloudinaryStorage(cfg config.StorageConfig) *CloudinaryStorage {
	return &CloudinaryStorage{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Upload sends the file to the provider under the logical folder and returns
// the assigned reference.
func (s *CloudinaryStorage) Upload(ctx context.Context, folder, filename string, data []byte) (*StoredObject, error) {
	publicID := publicIDFor(filename)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := s.sign(fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s", folder, publicID, timestamp))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	fields := map[string]string{
		"api_key":   s.cfg.APIKey,
		"timestamp": timestamp,
		"signature": signature,
		"folder":    folder,
		"public_id": publicID,
	}
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1_1/%s/auto/upload", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewUpstreamFailure("storage",
			fmt.Errorf("upload returned %d: %s", resp.StatusCode, string(raw)))
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.NewUpstreamFailure("storage", err)
	}
	return &StoredObject{URL: parsed.SecureURL, PublicID: parsed.PublicID}, nil
}

// Delete destroys the remote object. Returns ErrNotFound when the provider
// reports the object is already gone.
func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := s.sign(fmt.Sprintf("public_id=%s&timestamp=%s", publicID, timestamp))

	form := fmt.Sprintf("public_id=%s&api_key=%s&timestamp=%s&signature=%s",
		publicID, s.cfg.APIKey, timestamp, signature)
	url := fmt.Sprintf("%s/v1_1/%s/image/destroy", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.CloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.NewUpstreamFailure("storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewUpstreamFailure("storage",
			fmt.Errorf("destroy returned %d: %s", resp.StatusCode, string(raw)))
	}

	var parsed destroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return apperrors.NewUpstreamFailure("storage", err)
	}
	if parsed.Result == "not found" {
		return ErrNotFound
	}
	return nil
}

func (s *CloudinaryStorage) sign(params string) string {
	sum := sha1.Sum([]byte(params + s.cfg.APISecret))
	return hex.EncodeToString(sum[:])
}

func publicIDFor(filename string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		base = "file"
	}
	return base + "_" + uuid.NewString()[:8]
}
