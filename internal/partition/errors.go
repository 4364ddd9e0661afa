package partition

import "errors"

// ErrMalformedPartitionName is returned for file names that do not decode into
// a partition key. Callers skip such files.
var ErrMalformedPartitionName = errors.New("malformed partition name")
