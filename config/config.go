package config

import (
	"os"
	"strings"
)

var (
	TLS_DOMAINS        = ""           // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""           // MySQL will be used if this is set
	SQLITE_FILE        = "gallery.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	TMP_DIR            = "/tmp" // Local scratch space for S3 buckets
	DEFAULT_BUCKET_DIR = ""     // If set, an initial disk bucket is created here on first start
	S3_BUCKET          = ""     // If set, an initial S3 bucket is created on first start
	S3_REGION          = ""
	S3_ENDPOINT        = "" // Custom S3 endpoint, e.g. for MinIO
	S3_AUTH            = "" // "key:secret"
	S3_PREFIX          = "" // Optional key prefix within the S3 bucket
	S3_SSE             = "" // Optional server-side encryption algorithm
	SESSION_KEY        = "change-me-please"
	DEBUG_MODE         = true
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("DEFAULT_BUCKET_DIR", &DEFAULT_BUCKET_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvString("S3_SSE", &S3_SSE)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
