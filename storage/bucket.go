package storage

import (
	"os"
	"strings"
	"time"

	"photovault/db"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

const StorageLocationUser = "/user"

type Bucket struct {
	ID            uint64 `gorm:"primaryKey"`
	CreatedAt     int
	UpdatedAt     int
	Name          string `gorm:"type:varchar(200)"`
	StorageType   StorageType
	Path          string // Path on a drive or a prefix in a S3 bucket
	Endpoint      string // Custom S3 endpoint (optional)
	Region        string // S3 region
	AuthDetails   string // Authentication details. In case of S3 bucket - "key:secret"
	SSEEncryption string // S3 server-side encryption algorithm (optional)
}

func (b *Bucket) Create() error {
	err := db.Instance.Create(b).Error
	if err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		// Pre-create locations on disk
		if err = os.MkdirAll(b.Path+StorageLocationUser, 0777); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bucket) IsS3() bool {
	return b.StorageType == StorageTypeS3
}

// GetRemotePath prepends the bucket's configured prefix (if any)
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}

func (b *Bucket) CreateSVC() *s3.S3 {
	creds := strings.SplitN(b.AuthDetails, ":", 2)
	if len(creds) != 2 {
		creds = []string{"", ""}
	}
	cfg := aws.Config{
		Region:      aws.String(b.Region),
		Credentials: credentials.NewStaticCredentials(creds[0], creds[1], ""),
	}
	if b.Endpoint != "" {
		cfg.Endpoint = aws.String(b.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession(&cfg)))
}

func (b *Bucket) CreateS3DownloadURI(path string, validFor time.Duration) string {
	svc := b.CreateSVC()
	req, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: &b.Name,
		Key:    aws.String(b.GetRemotePath(path)),
	})
	uri, err := req.Presign(validFor)
	if err != nil {
		return ""
	}
	return uri
}
