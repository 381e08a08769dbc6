package common

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"pm4dbg/internal/amd"
)

// Error is the error object returned by the decoders and builders.
// Idx is the dword index inside the stream being processed, when known.
type Error struct {
	Code    amd.Err
	Sev     amd.ErrSeverity
	Idx     int
	Message string
}

func NewError(sev amd.ErrSeverity, code amd.Err) *Error {
	return &Error{
		Code: code,
		Sev:  sev,
		Idx:  amd.NoIdx,
	}
}

func NewErrorWithIdx(sev amd.ErrSeverity, code amd.Err, idx int) *Error {
	return &Error{
		Code: code,
		Sev:  sev,
		Idx:  idx,
	}
}

func NewErrorMsg(sev amd.ErrSeverity, code amd.Err, msg string) *Error {
	return &Error{
		Code:    code,
		Sev:     sev,
		Idx:     amd.NoIdx,
		Message: msg,
	}
}

func NewErrorWithIdxMsg(sev amd.ErrSeverity, code amd.Err, idx int, msg string) *Error {
	return &Error{
		Code:    code,
		Sev:     sev,
		Idx:     idx,
		Message: msg,
	}
}

// Errorf builds a fatal error with a formatted message.
func Errorf(code amd.Err, idx int, format string, args ...any) *Error {
	return NewErrorWithIdxMsg(amd.ErrSevFatal, code, idx, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	switch e.Sev {
	case amd.ErrSevFatal:
		sb.WriteString("FATAL:")
	case amd.ErrSevError:
		sb.WriteString("ERROR:")
	case amd.ErrSevWarn:
		sb.WriteString("WARN :")
	case amd.ErrSevInfo:
		sb.WriteString("INFO :")
	default:
		return "LIBRARY INTERNAL ERROR: Invalid Error Object"
	}

	sb.WriteString(fmt.Sprintf("0x%04x ", e.Code))

	if desc, ok := errorCodeDesc[e.Code]; ok {
		sb.WriteString(fmt.Sprintf("(%s) [%s]; ", desc.name, desc.msg))
	} else {
		sb.WriteString("(unknown); ")
	}

	if e.Idx != amd.NoIdx {
		sb.WriteString(fmt.Sprintf("DW=%d; ", e.Idx))
	}

	sb.WriteString(e.Message)
	return sb.String()
}

// Fatal reports whether processing must stop.
func (e *Error) Fatal() bool {
	return e.Sev == amd.ErrSevFatal
}

// ErrCode extracts the library code from err, or amd.ErrFail for foreign
// errors. A nil error gives amd.OK.
func ErrCode(err error) amd.Err {
	if err == nil {
		return amd.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return amd.ErrFail
}

type errDesc struct {
	name string
	msg  string
}

var errorCodeDesc = map[amd.Err]errDesc{
	amd.OK:                  {"PM4_OK", "No Error."},
	amd.ErrFail:             {"PM4_ERR_FAIL", "General failure."},
	amd.ErrNotInit:          {"PM4_ERR_NOT_INIT", "Component not initialised."},
	amd.ErrInvalidParamVal:  {"PM4_ERR_INVALID_PARAM_VAL", "Invalid value parameter passed to component."},
	amd.ErrFileError:        {"PM4_ERR_FILE_ERROR", "File access error."},
	amd.ErrUnknownGPU:       {"PM4_ERR_UNKNOWN_GPU", "Unknown GPU name."},
	amd.ErrInvalidPktHdr:    {"PM4_ERR_INVALID_PKT_HDR", "Invalid packet header."},
	amd.ErrPktCountTooLow:   {"PM4_ERR_PKT_COUNT_TOO_LOW", "Count in packet header too low."},
	amd.ErrIBOverrun:        {"PM4_ERR_IB_OVERRUN", "Packet ends after the end of the IB."},
	amd.ErrUnsupportedPkt:   {"PM4_ERR_UNSUPPORTED_PKT", "Packet not supported by this component."},
	amd.ErrUnknownSDMAOp:    {"PM4_ERR_UNKNOWN_SDMA_OP", "Unknown SDMA opcode."},
	amd.ErrInvalidRegOffset: {"PM4_ERR_INVALID_REG_OFFSET", "Register offset outside all register spaces."},
	amd.ErrUnknownRegister:  {"PM4_ERR_UNKNOWN_REGISTER", "Register unknown for this GPU."},
	amd.ErrRegFileOverflow:  {"PM4_ERR_REG_FILE_OVERFLOW", "Context register outside the tracked register file."},
	amd.ErrUnsupportedGfx:   {"PM4_ERR_UNSUPPORTED_GFX", "Operation not supported on this gfx level."},
	amd.ErrCtxLost:          {"PM4_ERR_CTX_LOST", "The context is lost."},
	amd.ErrSubmitRejected:   {"PM4_ERR_SUBMIT_REJECTED", "The kernel rejected the submission."},
	amd.ErrCatalogParse:     {"PM4_ERR_CATALOG_PARSE", "Register catalog parse error."},
	amd.ErrLast:             {"PM4_ERR_LAST", "No error - error code end marker"},
}
