package errors

// Predefined JSON API error object prototypes. Use the Copy method before
// customizing any of them.
var (
	// STATUS 400 - CODE: 'BRQXXX'
	ErrInvalidInput = ErrorObject{
		Code:   "BRQ001",
		Title:  "One of the request inputs is not valid.",
		Status: "400",
	}

	ErrInvalidQueryParameter = ErrorObject{
		Code:   "BRQ002",
		Title:  "An invalid value was specified for one of the query parameters in the request URI.",
		Status: "400",
	}

	ErrInvalidResourceName = ErrorObject{
		Code:   "BRQ003",
		Title:  "The specified resource name is not valid.",
		Status: "400",
	}

	ErrInvalidJSONFieldValue = ErrorObject{
		Code:   "BRQ004",
		Title:  "The value provided for one of the JSON fields in the request body was not in the correct format.",
		Status: "400",
	}

	ErrUnsupportedIncludeParameter = ErrorObject{
		Code:   "BRQ005",
		Title:  "One of the include parameter values is not supported by the resource.",
		Status: "400",
	}

	// STATUS 500 - CODE: 'INTXXX'
	ErrInternalError = ErrorObject{
		Code:   "INT001",
		Title:  "The server encountered an internal error. Please retry the request.",
		Status: "500",
	}
)
