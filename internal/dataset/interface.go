package dataset

import "context"

// UseCase defines the business logic interface for the dataset domain.
type UseCase interface {
	// Upload parses a CSV stream and stores it under a fresh ID.
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)

	// Detail returns a stored dataset with its preview and quality report.
	Detail(ctx context.Context, id string) (DetailOutput, error)

	// GenerateSample builds a synthetic participant dataset and stores it
	// like an upload.
	GenerateSample(ctx context.Context) (UploadOutput, error)
}
