package usecase

const (
	// DefaultMaxBatchSize caps the number of lines accepted by ParseBatch.
	DefaultMaxBatchSize = 100

	// batchCommentPrefix marks lines ParseBatch skips.
	batchCommentPrefix = "#"
)
