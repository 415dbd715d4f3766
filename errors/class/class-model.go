package class

// MjrModel - major that classifies errors related with the model mapping.
var MjrModel Major

var (
	// MnrModelMapping is the 'MjrModel' minor classification for the model
	// mapping container.
	MnrModelMapping Minor

	// ModelNotMapped is the 'MjrModel', 'MnrModelMapping' error classification
	// when the model was not registered within the model map.
	ModelNotMapped Class

	// ModelAlreadyMapped is the 'MjrModel', 'MnrModelMapping' error
	// classification when the model collection is registered more than once.
	ModelAlreadyMapped Class

	// MnrModelDefinition is the 'MjrModel' minor classification for invalid
	// model definitions.
	MnrModelDefinition Minor

	// ModelDefinitionInvalid is the 'MjrModel', 'MnrModelDefinition' error
	// classification for a model defined over a non struct type or with
	// conflicting declarations.
	ModelDefinitionInvalid Class

	// ModelFieldNotFound is the 'MjrModel', 'MnrModelDefinition' error
	// classification when a declared accessor matches no struct field.
	ModelFieldNotFound Class

	// ModelPrimaryValue is the 'MjrModel', 'MnrModelDefinition' error
	// classification for primary fields of unsupported types.
	ModelPrimaryValue Class
)

func registerModelClasses() {
	MjrModel = MustRegisterMajor("Model", "model mapping related issues")

	MnrModelMapping = MjrModel.MustRegisterMinor("Mapping", "model map container")
	ModelNotMapped = MnrModelMapping.MustRegisterIndex("Not Mapped", "model not registered").Class()
	ModelAlreadyMapped = MnrModelMapping.MustRegisterIndex("Already Mapped", "model registered more than once").Class()

	MnrModelDefinition = MjrModel.MustRegisterMinor("Definition", "model definitions")
	ModelDefinitionInvalid = MnrModelDefinition.MustRegisterIndex("Invalid", "invalid model definition").Class()
	ModelFieldNotFound = MnrModelDefinition.MustRegisterIndex("Field Not Found", "declared accessor matches no struct field").Class()
	ModelPrimaryValue = MnrModelDefinition.MustRegisterIndex("Primary Value", "unsupported primary field type").Class()
}
