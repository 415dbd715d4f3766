package class

// MjrInternal - major that classifies errors that should not occur during
// a correctly defined runtime.
var MjrInternal Major

var (
	// MnrInternalEncoding is the 'MjrInternal' minor classification for the
	// internal encoding failures.
	MnrInternalEncoding Minor

	// InternalEncodingValue is the 'MjrInternal', 'MnrInternalEncoding' error
	// classification for unexpected values within the encoding process.
	InternalEncodingValue Class
)

func registerInternalClasses() {
	MjrInternal = MustRegisterMajor("Internal", "internal error classification")

	MnrInternalEncoding = MjrInternal.MustRegisterMinor("Encoding", "internal encoding issues")
	InternalEncodingValue = MnrInternalEncoding.MustRegisterIndex("Value", "unexpected value during the encoding process").Class()
}
