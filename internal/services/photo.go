package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	appconfig "swipe-travel-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PhotoStorage uploads journey photos to S3. Photo payloads arrive as opaque
// strings (base64 data or a URL); when S3 is not configured, or a payload is
// not uploadable, the payload itself is persisted, which matches how clients
// already read back photo_url.
type PhotoStorage struct {
	s3Client *s3.Client
	bucket   string
	region   string
}

// NewPhotoStorage creates a photo storage backed by the configured S3 bucket.
// An empty bucket name yields inline-only storage.
func NewPhotoStorage(cfg appconfig.AWSConfig) (*PhotoStorage, error) {
	if cfg.S3Bucket == "" {
		return &PhotoStorage{}, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &PhotoStorage{
		s3Client: s3Client,
		bucket:   cfg.S3Bucket,
		region:   cfg.Region,
	}, nil
}

// Store persists a single photo payload for a journey and returns the value
// to record as photo_url. Upload failures are logged and fall back to the
// inline payload; they never fail the visit being recorded.
func (s *PhotoStorage) Store(ctx context.Context, journeyID int64, payload string) string {
	if s.s3Client == nil || strings.HasPrefix(payload, "http") {
		return payload
	}

	data, err := decodePhotoPayload(payload)
	if err != nil {
		return payload
	}

	key := fmt.Sprintf("journeys/%d/%s.jpg", journeyID, uuid.New().String())
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		log.Warn().
			Err(err).
			Int64("journey_id", journeyID).
			Msg("Photo upload failed, storing payload inline")
		return payload
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// decodePhotoPayload decodes a base64 photo payload, tolerating a data URL
// prefix like "data:image/jpeg;base64,".
func decodePhotoPayload(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
	}
	return base64.StdEncoding.DecodeString(payload)
}
