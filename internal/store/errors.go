package store

import "errors"

var (
	// ErrSchemaCreation is fatal for a run: nothing can be appended without
	// the target table.
	ErrSchemaCreation = errors.New("schema creation failed")
	// ErrStoreWrite fails one partition's batch. The batch is rolled back.
	ErrStoreWrite = errors.New("store write failed")

	ErrUnsupportedDSN = errors.New("unsupported connection string")
)
