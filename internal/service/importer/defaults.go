package importer

const (
	defaultBatchSize     = 10_000
	defaultWorkerCount   = 4
	defaultProgressEvery = 100_000
)
