package cli

const (
	FlagTypeBool        FlagType = "bool"
	FlagTypeDuration    FlagType = "duration"
	FlagTypeFloat       FlagType = "float"
	FlagTypeInteger     FlagType = "integer"
	FlagTypeString      FlagType = "string"
	FlagTypeStringSlice FlagType = "stringslice"
)

const TimestampHuman = "2006-01-02 15:04:05"

var Logo = "" +
	"  ___ _  _____ _ __ ___  ___  ___ _ __\n" +
	" / _ \\ \\ / / _ \\ '__/ __|/ _ \\/ _ \\ '__|\n" +
	"| (_) \\ V /  __/ |  \\__ \\  __/  __/ |\n" +
	" \\___/ \\_/ \\___|_|  |___/\\___|\\___|_|\n"
