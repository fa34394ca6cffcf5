package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"combolunch/internal/menu"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Config points at a bucket on Cloudflare R2 or any S3 compatible store.
type R2Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	CatalogKey string
}

// R2Client reads and writes the dish catalog snapshot kept in a bucket.
// It satisfies menu.Source.
type R2Client struct {
	client *s3.Client
	bucket string
	key    string
}

func NewR2Client(ctx context.Context, cfg R2Config) (*R2Client, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.CatalogKey == "" {
		return nil, fmt.Errorf("r2: endpoint, bucket and catalog key are required")
	}

	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &R2Client{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.CatalogKey,
	}, nil
}

// Fetch downloads the catalog snapshot and decodes it.
func (r *R2Client) Fetch(ctx context.Context) ([]menu.RawDish, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &r.bucket,
		Key:    &r.key,
	})
	if err != nil {
		return nil, &menu.CatalogLoadError{Op: "fetch", Err: err}
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &menu.CatalogLoadError{Op: "read", Err: err}
	}

	return menu.DecodeRawDishes(body)
}

// PutCatalog stores raw as the current catalog snapshot.
func (r *R2Client) PutCatalog(ctx context.Context, raw []menu.RawDish) error {
	body, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}

	contentType := "application/json"
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &r.key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("upload catalog snapshot: %w", err)
	}
	return nil
}
