package upload

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/awardkeeper/internal/client/models"
	"github.com/dmitrijs2005/awardkeeper/internal/netx"
)

// S3Config selects the bucket staged files go to. With a BaseEndpoint set
// (MinIO and friends) path-style addressing is used.
type S3Config struct {
	Region        string
	Bucket        string
	BaseEndpoint  string
	AccessKey     string
	SecretKey     string
	PresignExpiry time.Duration
}

// S3Transport uploads each file with a presigned PUT.
type S3Transport struct {
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
	http      *http.Client
}

// NewS3Transport builds the presigner from cfg. Without static keys the
// default AWS credential chain is used. A nil httpClient means
// http.DefaultClient.
func NewS3Transport(ctx context.Context, cfg S3Config, httpClient *http.Client) (*S3Transport, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &S3Transport{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		expiry:    expiry,
		http:      httpClient,
	}, nil
}

func (t *S3Transport) Put(ctx context.Context, f *models.UploadFile) error {
	req, err := t.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(t.bucket),
		Key:    aws.String(string(f.ObjectKey)),
	}, s3.WithPresignExpires(t.expiry))
	if err != nil {
		return fmt.Errorf("presign %s: %w", f.ObjectKey, err)
	}

	file, err := os.Open(f.LocalPath)
	if err != nil {
		return err
	}
	defer file.Close()

	return netx.PutPresigned(ctx, t.http, req.URL, file, f.Size)
}
