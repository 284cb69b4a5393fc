// pkg/compliance/api.go
package compliance

import (
	"context"

	"github.com/datagovrs/standards/pkg/metadata"
	"github.com/datagovrs/standards/pkg/parse"
)

// ValidateDataset runs the default engine over records and metadata.
func ValidateDataset(ctx context.Context, records []parse.Record, meta *metadata.SerbianMetadataSchema) *ComplianceReport {
	return New(nil).ValidateDataset(ctx, records, meta)
}

// QuickCheck runs the default engine's structural metadata check.
func QuickCheck(meta *metadata.SerbianMetadataSchema) *QuickCheckResult {
	return New(nil).QuickCheck(meta)
}
