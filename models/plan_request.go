package models

// Option lists backing the AI form pickers. The first entry of each list
// is the default selection.
var (
	WorkoutGoals     = []string{"General fitness", "Muscle gain", "Fat loss", "Endurance"}
	WorkoutDurations = []int{20, 30, 45, 60}
	WorkoutLevels    = []string{"Beginner", "Intermediate", "Advanced"}
	WorkoutFocuses   = []string{"Full Body", "Upper Body", "Lower Body", "Core"}
	EquipmentOptions = []string{"Bodyweight", "Dumbbells", "Bands"}

	MealGoals          = []string{"Healthy eating", "Muscle gain", "Energy"}
	DietTypes          = []string{"Balanced", "High Protein", "Vegetarian"}
	MealsPerDayOptions = []int{3, 4, 5}
	Cuisines           = []string{"Any", "Asian", "Mediterranean", "Japanese"}
	DietRestrictions   = []string{"None", "Gluten-free", "Dairy-free", "Nut-free"}
)

// Days-per-week slider bounds for the workout form.
const (
	WorkoutDaysMin     = 2
	WorkoutDaysMax     = 6
	WorkoutDaysDefault = 3
)

// WorkoutPlanRequest is the filled-in workout form handed to the prompt
// builder.
type WorkoutPlanRequest struct {
	// Goal is one of WorkoutGoals.
	Goal string `json:"goal"`

	// DurationMin is the session length in minutes, one of WorkoutDurations.
	DurationMin int `json:"duration_min"`

	// Level is one of WorkoutLevels.
	Level string `json:"level"`

	// Focus is one of WorkoutFocuses.
	Focus string `json:"focus"`

	// Equipment is the multi-select subset of EquipmentOptions. An empty
	// selection is treated as bodyweight only.
	Equipment []string `json:"equipment"`

	// DaysPerWeek is within [WorkoutDaysMin, WorkoutDaysMax].
	DaysPerWeek int `json:"days_per_week"`

	// Notes is optional free text appended to the request block.
	Notes string `json:"notes"`
}

// MealPlanRequest is the filled-in meal form handed to the prompt builder.
type MealPlanRequest struct {
	// Goal is one of MealGoals.
	Goal string `json:"goal"`

	// Diet is one of DietTypes.
	Diet string `json:"diet"`

	// MealsPerDay is one of MealsPerDayOptions.
	MealsPerDay int `json:"meals_per_day"`

	// Cuisine is one of Cuisines.
	Cuisine string `json:"cuisine"`

	// Restrictions is one of DietRestrictions.
	Restrictions string `json:"restrictions"`

	// Notes is optional free text appended to the request block.
	Notes string `json:"notes"`
}
