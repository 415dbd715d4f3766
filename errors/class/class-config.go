package class

// MjrConfig - major that classifies errors related with the configuration.
var MjrConfig Major

var (
	// MnrConfigRead is the 'MjrConfig' minor classification for reading the
	// configuration files.
	MnrConfigRead Minor

	// ConfigReadNotFound is the 'MjrConfig', 'MnrConfigRead' error classification
	// when the config file is not found or unreadable.
	ConfigReadNotFound Class

	// ConfigReadDecode is the 'MjrConfig', 'MnrConfigRead' error classification
	// for failures while decoding the configuration values.
	ConfigReadDecode Class

	// MnrConfigValue is the 'MjrConfig' minor classification for invalid
	// configuration values.
	MnrConfigValue Minor

	// ConfigValueNaming is the 'MjrConfig', 'MnrConfigValue' error classification
	// for unknown naming convention values.
	ConfigValueNaming Class

	// ConfigValueInvalid is the 'MjrConfig', 'MnrConfigValue' error classification
	// for any other invalid configuration value.
	ConfigValueInvalid Class
)

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "configuration related issues")

	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "reading the configuration")
	ConfigReadNotFound = MnrConfigRead.MustRegisterIndex("Not Found", "config file not found").Class()
	ConfigReadDecode = MnrConfigRead.MustRegisterIndex("Decode", "decoding the configuration failed").Class()

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "invalid configuration values")
	ConfigValueNaming = MnrConfigValue.MustRegisterIndex("Naming", "unknown naming convention").Class()
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "invalid configuration value").Class()
}
