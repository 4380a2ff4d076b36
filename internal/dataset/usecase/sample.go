package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"community-support-platform/internal/dataset"
)

const sampleRows = 20

var (
	samplePrograms = []string{"Youth Mentoring", "Job Training", "Food Assistance", "Housing Support"}
	sampleStatuses = []string{"Active", "Completed", "On Hold"}
)

// GenerateSample builds a synthetic participant dataset and stores it like
// an upload, so the analytics panels have something to chew on without a
// real CSV.
func (uc *implUseCase) GenerateSample(ctx context.Context) (dataset.UploadOutput, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"ID", "Name", "Age", "Program", "Status", "Join_Date"})
	for i := 0; i < sampleRows; i++ {
		_ = w.Write([]string{
			strconv.Itoa(i + 1),
			gofakeit.Name(),
			strconv.Itoa(15 + (i*3)%60),
			samplePrograms[i%len(samplePrograms)],
			sampleStatuses[i%len(sampleStatuses)],
			fmt.Sprintf("2024-%02d-15", (i%9)+1),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		uc.l.Errorf(ctx, "uc.GenerateSample: %v", err)
		return dataset.UploadOutput{}, err
	}

	return uc.Upload(ctx, dataset.UploadInput{
		Filename: "sample_participants.csv",
		Size:     int64(buf.Len()),
		Reader:   &buf,
	})
}
