package tarseal

import "github.com/meigma/tarseal/core/internal/tartype"

type (
	// ProgressEvent represents a progress update during archive creation.
	ProgressEvent = tartype.ProgressEvent

	// ProgressStage identifies the current phase of an operation.
	ProgressStage = tartype.ProgressStage

	// ProgressFunc receives progress updates during operations.
	// Implementations must be safe for concurrent calls.
	ProgressFunc = tartype.ProgressFunc
)

const (
	StageCollecting  = tartype.StageCollecting
	StageReading     = tartype.StageReading
	StageWriting     = tartype.StageWriting
	StageCompressing = tartype.StageCompressing
	StageEncrypting  = tartype.StageEncrypting
)
