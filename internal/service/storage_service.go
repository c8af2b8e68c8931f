package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	config "github.com/maheshrc27/kolink/configs"
	"github.com/maheshrc27/kolink/internal/models"
	"github.com/maheshrc27/kolink/pkg/utils"
)

// MaxImageSize caps post image uploads at 5 MiB.
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "webp": {},
}

type StorageService interface {
	// UploadImage validates data as a supported image and stores it, returning
	// the public URL.
	UploadImage(ctx context.Context, data []byte) (string, error)
}

// objectPutter is the part of the S3 client the storage service uses.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type r2Storage struct {
	client    objectPutter
	bucket    string
	publicURL string
}

// NewR2Storage connects to Cloudflare R2 through its S3-compatible API.
func NewR2Storage(ctx context.Context, cfg config.R2) (StorageService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("load r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
	})
	return newStorageService(client, cfg.BucketName, cfg.PublicURL), nil
}

func newStorageService(client objectPutter, bucket, publicURL string) *r2Storage {
	return &r2Storage{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

// DetectImage returns the sniffed type of data when it is an accepted image.
func DetectImage(data []byte) (types.Type, error) {
	if len(data) == 0 {
		return types.Unknown, models.NewValidationError("image file is empty")
	}
	if len(data) > MaxImageSize {
		return types.Unknown, models.NewValidationError(fmt.Sprintf("image exceeds %d bytes", MaxImageSize))
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == types.Unknown {
		return types.Unknown, models.NewValidationError("unsupported file type")
	}
	if _, ok := allowedImageTypes[kind.Extension]; !ok {
		return types.Unknown, models.NewValidationError(fmt.Sprintf("file type %s is not allowed", kind.Extension))
	}
	return kind, nil
}

func (r *r2Storage) UploadImage(ctx context.Context, data []byte) (string, error) {
	kind, err := DetectImage(data)
	if err != nil {
		return "", err
	}

	id, err := utils.NewID("")
	if err != nil {
		return "", models.NewInternalError(fmt.Errorf("generate key: %w", err))
	}
	key := fmt.Sprintf("posts/%s.%s", id, kind.Extension)

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(kind.MIME.Value),
	})
	if err != nil {
		slog.Info(err.Error())
		return "", models.NewInternalError(fmt.Errorf("upload image: %w", err))
	}

	if r.publicURL == "" {
		return key, nil
	}
	return r.publicURL + "/" + key, nil
}
