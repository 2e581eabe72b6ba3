package sample

// BaseError is the common base for everything in this package.
type BaseError struct {
	msg string
}

func (e *BaseError) Error() string { return e.msg }

// AliasError re-exports BaseError under another name.
type AliasError = BaseError

// NotAnError has no Error method and must never show up in a scan.
type NotAnError struct{}

type ConfigError struct {
	BaseError
	Key string
}

type IOError struct {
	BaseError
	Path string
}

// SyncError embeds two error types, so it resolves the promoted method
// ambiguity with its own Error.
type SyncError struct {
	ConfigError
	IOError
}

func (e *SyncError) Error() string { return "sync: " + e.ConfigError.Error() }

// Fault is satisfied by richer errors carrying a code.
type Fault interface {
	error
	Code() int
}

type hiddenError struct {
	BaseError
}
