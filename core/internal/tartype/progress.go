package tartype

// ProgressEvent represents a progress update during archive creation or sealing.
type ProgressEvent struct {
	// Stage identifies the current phase of the operation.
	Stage ProgressStage

	// Path is the entry currently being processed, if applicable.
	Path string

	// BytesDone is the number of bytes completed in the current stage.
	BytesDone uint64

	// BytesTotal is the total bytes for the current stage.
	// Zero indicates the total is unknown.
	BytesTotal uint64

	// FilesDone is the number of entries completed.
	FilesDone int

	// FilesTotal is the total number of entries.
	FilesTotal int
}

// ProgressStage identifies the current phase of an operation.
type ProgressStage uint8

const (
	// StageCollecting indicates input sets are being merged and sorted.
	StageCollecting ProgressStage = iota

	// StageReading indicates entry content is being read from providers.
	StageReading

	// StageWriting indicates header and content blocks are being emitted.
	StageWriting

	// StageCompressing indicates the finished archive is being compressed.
	StageCompressing

	// StageEncrypting indicates the archive is being encrypted.
	StageEncrypting
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageCollecting:
		return "collecting"
	case StageReading:
		return "reading"
	case StageWriting:
		return "writing"
	case StageCompressing:
		return "compressing"
	case StageEncrypting:
		return "encrypting"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during operations.
// Implementations must be safe for concurrent calls.
type ProgressFunc func(ProgressEvent)
