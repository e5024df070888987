// Package werrors defines the numeric error taxonomy shared by every Wepin SDK
// module. Each Code is itself an error and acts as the sentinel for its kind, so
// callers match with errors.Is(err, werrors.CodeInvalidAppKey).
package werrors

import (
	"errors"
	"fmt"
	"sort"
)

// Domain is the error domain reported to host platforms.
const Domain = "com.wepin.error"

// Code is a stable numeric identifier for an SDK error kind.
type Code int

const (
	CodeInvalidAppKey              Code = 1001
	CodeResultFailed               Code = 1002
	CodeParsingFailed              Code = 1003
	CodeNetworkError               Code = 1004
	CodeInvalidRequest             Code = 1005
	CodeNotInitialized             Code = 1006
	CodeAlreadyInitialized         Code = 1007
	CodeNetworkNotInitialized      Code = 1008
	CodeInvalidLoginSession        Code = 1009
	CodeUserNotFound               Code = 1010
	CodeAccountNotFound            Code = 1011
	CodeLoginFailed                Code = 1012
	CodeIncorrectLifeCycle         Code = 1013
	CodeInvalidParameter           Code = 1014
	CodeInvalidLoginProvider       Code = 1015
	CodeInvalidToken               Code = 1016
	CodeRequiredSignupEmail        Code = 1017
	CodeFailedEmailVerification    Code = 1018
	CodeFailedPasswordStateSetting Code = 1019
	CodeFailedPasswordSetting      Code = 1020
	CodeExistedEmail               Code = 1021
	CodeAPIRequestError            Code = 1022
	CodeNFTNotFound                Code = 1023
	CodeBalancesNotFound           Code = 1024
	CodeFailedSend                 Code = 1025
	CodeFailedReceive              Code = 1026
	CodeFailedRegister             Code = 1027
	CodeUserCanceled               Code = 1028
	CodeIncorrectEmailForm         Code = 1029
	CodeIncorrectPasswordForm      Code = 1030
	CodeDeprecated                 Code = 1031
	CodeRequiredEmailVerified      Code = 1032
	CodeNotConnectedInternet       Code = 1033
	CodeUnknown                    Code = 1099
)

type codeInfo struct {
	name    string
	message string
}

var codeTable = map[Code]codeInfo{
	CodeInvalidAppKey:              {"invalidAppKey", "Invalid App Key."},
	CodeResultFailed:               {"resultFailed", "The operation failed."},
	CodeParsingFailed:              {"parsingFailed", "Failed to parse the response"},
	CodeNetworkError:               {"networkError", "Network error"},
	CodeInvalidRequest:             {"invalidRequest", "The request is invalid."},
	CodeNotInitialized:             {"notInitialized", "Wepin SDK is not initialized."},
	CodeAlreadyInitialized:         {"alreadyInitialized", "Wepin SDK is already initialized."},
	CodeNetworkNotInitialized:      {"networkNotInitialized", "Network manager is not initialized."},
	CodeInvalidLoginSession:        {"invalidLoginSession", "Invalid login session."},
	CodeUserNotFound:               {"userNotFound", "User not found."},
	CodeAccountNotFound:            {"accountNotFound", "Account not found."},
	CodeLoginFailed:                {"loginFailed", "Login failed."},
	CodeIncorrectLifeCycle:         {"incorrectLifeCycle", "Incorrect lifecycle state"},
	CodeInvalidParameter:           {"invalidParameter", "Invalid parameter"},
	CodeInvalidLoginProvider:       {"invalidLoginProvider", "Invalid login provider."},
	CodeInvalidToken:               {"invalidToken", "Token does not exist."},
	CodeRequiredSignupEmail:        {"requiredSignupEmail", "Required signup email."},
	CodeFailedEmailVerification:    {"failedEmailVerification", "Failed email verification."},
	CodeFailedPasswordStateSetting: {"failedPasswordStateSetting", "Failed password state setting."},
	CodeFailedPasswordSetting:      {"failedPasswordSetting", "Failed password setting."},
	CodeExistedEmail:               {"existedEmail", "Existed email."},
	CodeAPIRequestError:            {"apiRequestError", "API request error"},
	CodeNFTNotFound:                {"nftNotFound", "NFT not found."},
	CodeBalancesNotFound:           {"balancesNotFound", "Balances not found."},
	CodeFailedSend:                 {"failedSend", "Failed to send."},
	CodeFailedReceive:              {"failedReceive", "Failed to receive."},
	CodeFailedRegister:             {"failedRegister", "Failed to register."},
	CodeUserCanceled:               {"userCanceled", "User canceled."},
	CodeIncorrectEmailForm:         {"incorrectEmailForm", "Incorrect email format."},
	CodeIncorrectPasswordForm:      {"incorrectPasswordForm", "Incorrect password format."},
	CodeDeprecated:                 {"deprecated", "This method is deprecated"},
	CodeRequiredEmailVerified:      {"requiredEmailVerified", "Email verification is required to proceed with the requested operation."},
	CodeNotConnectedInternet:       {"notConnectedInternet", "Not connected to internet."},
	CodeUnknown:                    {"unknown", "Unknown error"},
}

// detailCodes are the codes whose bridge message is kept as detail.
var detailCodes = map[Code]bool{
	CodeParsingFailed:       true,
	CodeNetworkError:        true,
	CodeInvalidLoginSession: true,
	CodeIncorrectLifeCycle:  true,
	CodeInvalidParameter:    true,
	CodeAPIRequestError:     true,
	CodeDeprecated:          true,
	CodeUnknown:             true,
}

// CarriesDetail reports whether a bridge message is kept for c.
func (c Code) CarriesDetail() bool { return detailCodes[c] }

// Known reports whether c is part of the taxonomy.
func (c Code) Known() bool {
	_, ok := codeTable[c]
	return ok
}

// Name returns the camel-case identifier of the code, e.g. "invalidAppKey".
func (c Code) Name() string {
	if info, ok := codeTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Message returns the fixed human-readable message of the code.
func (c Code) Message() string {
	if info, ok := codeTable[c]; ok {
		return info.message
	}
	return codeTable[CodeUnknown].message
}

// Error implements error so that a Code can be used as a sentinel.
func (c Code) Error() string { return c.Message() }

// Codes returns every known code in ascending order.
func Codes() []Code {
	out := make([]Code, 0, len(codeTable))
	for c := range codeTable {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Error is an SDK error carrying a code, an optional detail message and an
// optional wrapped cause.
//
// Error string formatting:
//   - "<message>"
//   - "<message>: <detail>" when a detail is set
//   - "<message>[: <detail>]: <cause>" when a cause is wrapped
type Error struct {
	code   Code
	detail string
	err    error
}

// New creates an error carrying only the code.
func New(code Code) *Error { return &Error{code: code} }

// Newf creates an error with a formatted detail message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, detail: fmt.Sprintf(format, args...)}
}

// Wrap creates an error wrapping cause, with an optional formatted detail.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := &Error{code: code, err: cause}
	if format != "" {
		e.detail = fmt.Sprintf(format, args...)
	}
	return e
}

// FromCode rebuilds an error from a raw numeric code as received over a
// platform bridge. Codes outside the taxonomy map to CodeUnknown. The message
// is dropped for codes that do not carry detail.
func FromCode(code int, message string) *Error {
	c := Code(code)
	if !c.Known() {
		c = CodeUnknown
	}
	if !c.CarriesDetail() {
		return &Error{code: c}
	}
	return &Error{code: c, detail: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.code.Message()
	if e.detail != "" {
		s += ": " + e.detail
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches a Code sentinel, another *Error with the same code, or anything
// in the wrapped cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	switch t := target.(type) {
	case Code:
		return e.code == t
	case *Error:
		if t != nil && e.code == t.code {
			return true
		}
	}
	return e.err != nil && errors.Is(e.err, target)
}

// Code returns the error code.
func (e *Error) Code() Code { return e.code }

// Detail returns the detail message, if any.
func (e *Error) Detail() string { return e.detail }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// CodeOf extracts the code from err. Errors that are not SDK errors report
// CodeUnknown; a nil error reports 0.
func CodeOf(err error) Code {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return CodeUnknown
}
