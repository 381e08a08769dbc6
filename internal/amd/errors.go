package amd

// Err is the library error code type.
type Err uint32

const (
	OK                  Err = 0
	ErrFail             Err = 1
	ErrNotInit          Err = 2
	ErrInvalidParamVal  Err = 3
	ErrFileError        Err = 4
	ErrUnknownGPU       Err = 5
	ErrInvalidPktHdr    Err = 6
	ErrPktCountTooLow   Err = 7
	ErrIBOverrun        Err = 8
	ErrUnsupportedPkt   Err = 9
	ErrUnknownSDMAOp    Err = 10
	ErrInvalidRegOffset Err = 11
	ErrUnknownRegister  Err = 12
	ErrRegFileOverflow  Err = 13
	ErrUnsupportedGfx   Err = 14
	ErrCtxLost          Err = 15
	ErrSubmitRejected   Err = 16
	ErrCatalogParse     Err = 17
	ErrLast             Err = 18
)

// ErrSeverity is the severity of an error or the verbosity of a logger.
type ErrSeverity uint32

const (
	ErrSevNone  ErrSeverity = 0
	ErrSevError ErrSeverity = 1
	ErrSevWarn  ErrSeverity = 2
	ErrSevInfo  ErrSeverity = 3
	// Processing of the current stream cannot continue.
	ErrSevFatal ErrSeverity = 4
)

// NoIdx marks an error that is not tied to a dword position.
const NoIdx = -1
