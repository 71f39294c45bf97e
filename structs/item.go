package structs

// Request shapes for the /v1 endpoints. Field names follow the client wire
// format, so userName/hashedPassword stay camelCase while the level fields
// keep their snake_case form.

type AuthenticationItem struct {
	Token string `json:"token" form:"token"`
}

type CredentialsItem struct {
	Token          string `json:"token" form:"token"`
	UserName       string `json:"userName" form:"userName"`
	HashedPassword string `json:"hashedPassword" form:"hashedPassword"`
}

type MealItem struct {
	Credentials CredentialsItem `json:"credentials"`
	Year        int             `json:"year" form:"year"`
	Month       int             `json:"month" form:"month"`
	Day         int             `json:"day" form:"day"`
	MealType    string          `json:"mealType" form:"mealType"`
	FatLevel    int             `json:"fat_level" form:"fat_level"`
	SugarLevel  int             `json:"sugar_level" form:"sugar_level"`
}

type DeleteMealItem struct {
	Credentials CredentialsItem `json:"credentials"`
	Year        int             `json:"year" form:"year"`
	Month       int             `json:"month" form:"month"`
	Day         int             `json:"day" form:"day"`
	MealType    string          `json:"mealType" form:"mealType"`
}

type GetMealsItem struct {
	Credentials CredentialsItem `json:"credentials"`
	Year        int             `json:"year" form:"year"`
	Month       int             `json:"month" form:"month"`
	Day         int             `json:"day" form:"day"`
}

type MealInfo struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	MealType   string `json:"mealType"`
	FatLevel   int    `json:"fat_level"`
	SugarLevel int    `json:"sugar_level"`
}
