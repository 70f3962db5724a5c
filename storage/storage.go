package storage

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"photovault/config"
	"photovault/db"
)

type StorageAPI interface {
	GetFullPath(path string) string
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	DeleteRemoteFile(path string) error
	GetBucket() *Bucket
}

var cachedStorage []StorageAPI

func Init() {
	if err := db.Instance.AutoMigrate(&Bucket{}); err != nil {
		panic(err)
	}
	var buckets []Bucket
	if err := db.Instance.Find(&buckets).Error; err != nil {
		panic(err)
	}
	if len(buckets) == 0 {
		buckets = bootstrapBuckets()
	}
	log.Printf("Storage Buckets found: %d\n", len(buckets))
	cachedStorage = []StorageAPI{}
	for _, bucket := range buckets {
		var backend StorageAPI
		if bucket.StorageType == StorageTypeFile {
			backend = NewDiskStorage(&bucket)
		} else if bucket.StorageType == StorageTypeS3 {
			backend = NewS3Storage(&bucket)
		} else {
			panic(fmt.Sprintf("Storage type unavailable for Bucket %d", bucket.ID))
		}
		cachedStorage = append(cachedStorage, backend)
	}
}

// bootstrapBuckets creates the initial buckets from env config on an
// empty database: a disk bucket from DEFAULT_BUCKET_DIR and/or an S3
// bucket from the S3_* variables.
func bootstrapBuckets() []Bucket {
	var buckets []Bucket
	if config.DEFAULT_BUCKET_DIR != "" {
		bucket := Bucket{
			Name:        "local",
			StorageType: StorageTypeFile,
			Path:        config.DEFAULT_BUCKET_DIR,
		}
		if err := bucket.Create(); err != nil {
			panic(err)
		}
		buckets = append(buckets, bucket)
	}
	if config.S3_BUCKET != "" {
		bucket := Bucket{
			Name:          config.S3_BUCKET,
			StorageType:   StorageTypeS3,
			Path:          config.S3_PREFIX,
			Endpoint:      config.S3_ENDPOINT,
			Region:        config.S3_REGION,
			AuthDetails:   config.S3_AUTH,
			SSEEncryption: config.S3_SSE,
		}
		if err := bucket.Create(); err != nil {
			panic(err)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func StorageFrom(bucket *Bucket) StorageAPI {
	for _, s := range cachedStorage {
		if s.GetBucket().ID == bucket.ID {
			return s
		}
	}
	return nil
}

// GetDefaultStorage prefers a disk bucket and returns nil when no
// bucket is configured at all. Callers must tolerate nil.
func GetDefaultStorage() StorageAPI {
	if len(cachedStorage) == 0 {
		return nil
	}
	for _, s := range cachedStorage {
		if s.GetBucket().StorageType == StorageTypeFile {
			return s
		}
	}
	return cachedStorage[0]
}
