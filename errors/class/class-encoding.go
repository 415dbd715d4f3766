package class

// MjrEncoding - major that classifies errors related with the 'jsonapi' encoding.
var MjrEncoding Major

var (
	// MnrEncodingMarshal is the minor error classification for the 'MjrEncoding'
	// major. It is related with the document marshaling process.
	MnrEncodingMarshal Minor

	// EncodingMarshalAmbiguousCollection is the 'MjrEncoding', 'MnrEncodingMarshal'
	// error classification when the single/collection intent contradicts the
	// provided value shape.
	EncodingMarshalAmbiguousCollection Class

	// EncodingMarshalInput is the 'MjrEncoding', 'MnrEncodingMarshal' error
	// classification when the provided marshaling value is invalid,
	// i.e. the provided value is not a model structure.
	EncodingMarshalInput Class

	// EncodingMarshalOutput is the 'MjrEncoding', 'MnrEncodingMarshal' error
	// classification when writing the encoded document fails.
	EncodingMarshalOutput Class

	// MnrEncodingInclude is the 'MjrEncoding' minor classification related
	// with the included relationship paths.
	MnrEncodingInclude Minor

	// EncodingInvalidInclude is the 'MjrEncoding', 'MnrEncodingInclude' error
	// classification when an include path segment matches no declared
	// relationship or uses a wrong casing for its public name.
	EncodingInvalidInclude Class
)

func registerEncodingClasses() {
	MjrEncoding = MustRegisterMajor("Encoding", "encoding related issues")

	MnrEncodingMarshal = MjrEncoding.MustRegisterMinor("Marshal", "marshaling to given encoding")
	EncodingMarshalAmbiguousCollection = MnrEncodingMarshal.MustRegisterIndex("Ambiguous Collection", "single/collection intent contradicts the value shape").Class()
	EncodingMarshalInput = MnrEncodingMarshal.MustRegisterIndex("Input", "marshaling invalid input value / type").Class()
	EncodingMarshalOutput = MnrEncodingMarshal.MustRegisterIndex("Output", "writing the encoded document failed").Class()

	MnrEncodingInclude = MjrEncoding.MustRegisterMinor("Include", "included relationship paths")
	EncodingInvalidInclude = MnrEncodingInclude.MustRegisterIndex("Invalid", "include path matches no declared relationship").Class()
}
