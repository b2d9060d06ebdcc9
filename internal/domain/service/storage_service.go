package service

import "context"

// ImageUpload is a binary image attached to a create or update request.
type ImageUpload struct {
	Data        []byte
	FileName    string
	ContentType string
}

// StorageService uploads binary image files to cloud storage and returns a
// publicly reachable URL. Folder is a logical prefix such as "businesses" or
// "profiles".
type StorageService interface {
	UploadImage(ctx context.Context, folder string, upload *ImageUpload) (string, error)
}
