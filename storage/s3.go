package storage

import (
	"io"
	"net/http"
	"os"
	"strings"

	"photovault/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   Bucket
	s3Client *s3.S3
}

func NewS3Storage(bucket *Bucket) StorageAPI {
	return &S3Storage{
		bucket:   *bucket,
		s3Client: bucket.CreateSVC(),
	}
}

func (s *S3Storage) GetBucket() *Bucket {
	return &s.bucket
}

// GetFullPath returns local temp path in case of S3
func (s *S3Storage) GetFullPath(path string) string {
	return config.TMP_DIR + "/" + strings.ReplaceAll(path, "/", "_")
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	input := s3manager.UploadInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
		Body:   reader,
	}
	if s.bucket.SSEEncryption != "" {
		input.ServerSideEncryption = &s.bucket.SSEEncryption
	}
	if _, err := uploader.Upload(&input); err != nil {
		return 0, err
	}
	// The SDK consumes the reader fully, but doesn't report the size
	resp, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	if err != nil || resp.ContentLength == nil {
		return 0, err
	}
	return *resp.ContentLength, nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

// Serve streams the object. Callers normally redirect to a presigned
// URL instead (see Bucket.CreateS3DownloadURI) and only fall back to this.
func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	if _, err := s.Load(path, writer); err != nil {
		writer.WriteHeader(http.StatusNotFound)
	}
}

// Delete removes the local scratch copy, if any
func (s *S3Storage) Delete(path string) error {
	err := os.Remove(s.GetFullPath(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *S3Storage) DeleteRemoteFile(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	return err
}
