package enums

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnacks    = "snacks"

	LevelLow    = 0
	LevelMedium = 1
	LevelHigh   = 2

	ExportQueue = "export"

	ExportStateSuccess            = "Success"
	ExportStateTimeout            = "TimeOut"
	ExportStateInvalidCredentials = "Invalid Credentials"
)
