package upload

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shearwater-tools/cutter/pkg/freight"
)

//counterfeiter:generate -o ./fakes/s3_uploader.go --fake-name S3Uploader . S3Uploader
type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Destination uploads artifacts to an S3 bucket.
type S3Destination struct {
	Config freight.PublishDestination

	Collaborators struct {
		InitOnce sync.Once
		S3Uploader
	}
}

func (dst *S3Destination) ID() string {
	if dst.Config.ID != "" {
		return dst.Config.ID
	}
	return dst.Config.Bucket
}

func (dst *S3Destination) Type() string { return freight.PublishDestinationTypeS3 }

func (dst *S3Destination) init(ctx context.Context) error {
	var initErr error
	dst.Collaborators.InitOnce.Do(func() {
		if dst.Collaborators.S3Uploader != nil {
			return
		}
		var loadOptions []func(*config.LoadOptions) error
		if dst.Config.Region != "" {
			loadOptions = append(loadOptions, config.WithRegion(dst.Config.Region))
		}
		if dst.Config.AccessKeyID != "" {
			loadOptions = append(loadOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(dst.Config.AccessKeyID, dst.Config.SecretAccessKey, ""),
			))
		}
		awsConfig, err := config.LoadDefaultConfig(ctx, loadOptions...)
		if err != nil {
			initErr = err
			return
		}
		dst.Collaborators.S3Uploader = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if dst.Config.Endpoint != "" { // for acceptance testing
				o.BaseEndpoint = aws.String(dst.Config.Endpoint)
				o.UsePathStyle = true
			}
		})
	})
	return initErr
}

func (dst *S3Destination) Upload(ctx context.Context, logger *log.Logger, artifact Artifact) (string, error) {
	err := dst.init(ctx)
	if err != nil {
		return "", err
	}

	key, err := remotePath(dst.Config, artifact)
	if err != nil {
		return "", err
	}

	file, err := os.Open(artifact.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact %q: %w", artifact.Path, err)
	}
	defer closeAndIgnoreError(file)

	logger.Printf("uploading %q to s3 bucket %q at %q...\n", artifact.Name, dst.Config.Bucket, key)

	_, err = dst.Collaborators.S3Uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(dst.Config.Bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to s3 bucket %q: %w", artifact.Name, dst.Config.Bucket, err)
	}

	return "s3://" + dst.Config.Bucket + "/" + key, nil
}
