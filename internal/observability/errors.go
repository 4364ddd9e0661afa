package observability

import (
	"context"
	"errors"

	"github.com/baxromumarov/goalie-stats/internal/extract"
	"github.com/baxromumarov/goalie-stats/internal/goalie"
	"github.com/baxromumarov/goalie-stats/internal/normalize"
	"github.com/baxromumarov/goalie-stats/internal/partition"
	"github.com/baxromumarov/goalie-stats/internal/store"
)

const (
	ErrorPartitionName = "partition_name"
	ErrorRead          = "read"
	ErrorRowWidth      = "row_width"
	ErrorUnitValue     = "unit_value"
	ErrorMissingName   = "missing_name"
	ErrorFieldValue    = "field_value"
	ErrorSchema        = "schema"
	ErrorStore         = "store"
	ErrorTimeout       = "timeout"
	ErrorUnknown       = "unknown"
)

// Classify maps a pipeline error onto a metric label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ErrorUnknown
	case errors.Is(err, partition.ErrMalformedPartitionName):
		return ErrorPartitionName
	case errors.Is(err, extract.ErrRowWidth):
		return ErrorRowWidth
	case errors.Is(err, extract.ErrRead):
		return ErrorRead
	case errors.Is(err, normalize.ErrInvalidUnitValue):
		return ErrorUnitValue
	case errors.Is(err, normalize.ErrMissingPlayerName):
		return ErrorMissingName
	case errors.Is(err, goalie.ErrInvalidFieldValue):
		return ErrorFieldValue
	case errors.Is(err, store.ErrSchemaCreation):
		return ErrorSchema
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrorTimeout
	case errors.Is(err, store.ErrStoreWrite):
		return ErrorStore
	}
	return ErrorUnknown
}
