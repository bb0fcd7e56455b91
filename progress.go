package tarseal

import tarcore "github.com/meigma/tarseal/core"

// Re-export progress types from core package.
type (
	// ProgressEvent represents a progress update during sealing.
	ProgressEvent = tarcore.ProgressEvent

	// ProgressStage identifies the current phase of an operation.
	ProgressStage = tarcore.ProgressStage

	// ProgressFunc receives progress updates during operations.
	// Implementations must be safe for concurrent calls.
	ProgressFunc = tarcore.ProgressFunc
)

// Re-export progress stage constants.
const (
	// StageCollecting indicates input sets are being merged and sorted.
	StageCollecting = tarcore.StageCollecting

	// StageReading indicates entry content is being read.
	StageReading = tarcore.StageReading

	// StageWriting indicates archive blocks are being emitted.
	StageWriting = tarcore.StageWriting

	// StageCompressing indicates the archive is being compressed.
	StageCompressing = tarcore.StageCompressing

	// StageEncrypting indicates the archive is being encrypted.
	StageEncrypting = tarcore.StageEncrypting
)
