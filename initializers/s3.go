package initializers

import (
	"context"

	"talent-screen-backend/config"
	s3client "talent-screen-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKey, config.Conf.S3.SecretKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init s3 client")
		return
	}

	// connectivity check
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("s3 connection check failed")
	}

	s3client.Client = minioClient
	if err = s3client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure s3 bucket")
	}
	log.Info("s3 client initialized")
}
