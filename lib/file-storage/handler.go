package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"talent-screen-backend/config"
	s3client "talent-screen-backend/s3"
)

// Provider archives register exports in object storage.
type Provider interface {
	UploadRegister(ctx context.Context, objectName string, data []byte) error
	GetRegister(ctx context.Context, objectName string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadRegister(ctx context.Context, objectName string, data []byte) error {
	if i.s3client == nil {
		return errors.New("s3 client is not configured")
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"})
	if err != nil {
		return errors.Wrap(err, "failed to upload register")
	}
	return nil
}

func (i impl) GetRegister(ctx context.Context, objectName string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("s3 client is not configured")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch register")
	}
	defer object.Close()
	return io.ReadAll(object)
}
