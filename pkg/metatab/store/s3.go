package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// S3Options configures the S3 writer. Credentials fall back to the default
// AWS provider chain when the static pair is not set.
type S3Options struct {
	// Bucket is the bucket mirroring the store hierarchy (required).
	Bucket string
	// Region is the bucket's region.
	Region string
	// KeyPrefix is prepended to every object key, for buckets that hold the
	// mirrored hierarchy under a subtree.
	KeyPrefix string
	// AccessKeyID and SecretAccessKey select static credentials.
	AccessKeyID     string
	SecretAccessKey string
}

// S3Writer attaches a row's metadata pairs as object tags on the S3 object
// whose key mirrors the resolved store path.
type S3Writer struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Writer builds an S3 writer from the given options.
func NewS3Writer(ctx context.Context, opts S3Options) (*S3Writer, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 writer requires a bucket")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Writer{
		client: s3.NewFromConfig(cfg),
		bucket: opts.Bucket,
		prefix: strings.Trim(opts.KeyPrefix, "/"),
	}, nil
}

// Apply replaces the object's tag set with the given metadata pairs.
// PutObjectTagging is atomic per object, matching the all-or-nothing
// contract of the writer capability.
func (w *S3Writer) Apply(ctx context.Context, path string, metadata *models.MetadataSet) error {
	tags := make([]s3types.Tag, 0, metadata.Len())
	for _, pair := range metadata.Pairs() {
		tags = append(tags, s3types.Tag{Key: aws.String(pair.Name), Value: aws.String(pair.Value)})
	}

	_, err := w.client.PutObjectTagging(ctx, &s3.PutObjectTaggingInput{
		Bucket:  aws.String(w.bucket),
		Key:     aws.String(w.key(path)),
		Tagging: &s3types.Tagging{TagSet: tags},
	})
	if err != nil {
		return fmt.Errorf("failed to tag s3://%s/%s: %w", w.bucket, w.key(path), err)
	}
	return nil
}

// key converts an absolute store path into the mirrored object key.
func (w *S3Writer) key(path string) string {
	key := strings.TrimPrefix(path, "/")
	if w.prefix != "" {
		key = w.prefix + "/" + key
	}
	return key
}
