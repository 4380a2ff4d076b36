package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"community-support-platform/internal/dataset"
	"community-support-platform/internal/metrics"
	"community-support-platform/pkg/tabular"
)

// Upload parses a CSV stream, builds its quality report, and stores the
// table under a fresh ID.
func (uc *implUseCase) Upload(ctx context.Context, input dataset.UploadInput) (dataset.UploadOutput, error) {
	if uc.cfg.MaxSizeBytes > 0 && input.Size > uc.cfg.MaxSizeBytes {
		metrics.RecordUpload("too_large")
		return dataset.UploadOutput{}, dataset.ErrFileTooLarge
	}

	// Cap the read as well: Size comes from the multipart header and is
	// not authoritative.
	reader := input.Reader
	if uc.cfg.MaxSizeBytes > 0 {
		reader = io.LimitReader(reader, uc.cfg.MaxSizeBytes+1)
	}

	table, err := tabular.Parse(reader)
	if err != nil {
		metrics.RecordUpload("invalid")
		uc.l.Warnf(ctx, "uc.Upload Parse: %v", err)
		if errors.Is(err, tabular.ErrEmptyInput) {
			return dataset.UploadOutput{}, dataset.ErrEmptyFile
		}
		return dataset.UploadOutput{}, dataset.ErrInvalidCSV
	}
	if table.RowCount() == 0 {
		metrics.RecordUpload("empty")
		return dataset.UploadOutput{}, dataset.ErrEmptyFile
	}

	ds := dataset.Dataset{
		ID:         uuid.NewString(),
		Filename:   input.Filename,
		SizeBytes:  input.Size,
		Table:      table,
		UploadedAt: time.Now(),
	}
	if err := uc.repo.Save(ctx, ds); err != nil {
		metrics.RecordUpload("error")
		uc.l.Errorf(ctx, "uc.Upload Save: %v", err)
		return dataset.UploadOutput{}, err
	}

	metrics.RecordUpload("ok")
	uc.l.Infof(ctx, "uc.Upload: stored %q as %s (%d rows, %d columns)",
		input.Filename, ds.ID, table.RowCount(), len(table.Columns()))

	return dataset.UploadOutput{
		Dataset: ds,
		Preview: table.Rows(uc.cfg.PreviewRows),
		Quality: uc.buildQualityReport(table),
	}, nil
}

// Detail returns a stored dataset. Returns ErrDatasetNotFound when absent
// or already evicted.
func (uc *implUseCase) Detail(ctx context.Context, id string) (dataset.DetailOutput, error) {
	ds, ok := uc.repo.Get(ctx, id)
	if !ok {
		return dataset.DetailOutput{}, dataset.ErrDatasetNotFound
	}
	return dataset.DetailOutput{
		Dataset: ds,
		Preview: ds.Table.Rows(uc.cfg.PreviewRows),
		Quality: uc.buildQualityReport(ds.Table),
	}, nil
}
