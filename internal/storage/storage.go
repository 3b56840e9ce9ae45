package storage

import "context"

// Storage stores uploaded files and returns the URL they become
// reachable under. Deployments pick the local disk or S3 variant.
type Storage interface {
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)
}
