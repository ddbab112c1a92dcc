// Package prompts assembles the chat-completions message pair the AI pages
// send for plan generation. The wording of the prompt blocks is load-bearing:
// the ### USER / ### REQUEST / ### FORMAT structure is what keeps the model
// output in the markdown shape the plan views render.
package prompts

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/levelup-fitness/models"
)

// SystemPrompt is sent as the system message on every generation call.
const SystemPrompt = "You are a safe, supportive fitness & nutrition assistant. Give teen-friendly advice, no extreme diets, no medical claims."

// BuildWorkoutPrompt renders the workout-page form and the user's profile
// into the user message for a workout generation.
func BuildWorkoutPrompt(profile models.Profile, req models.WorkoutPlanRequest) string {
	return fmt.Sprintf(`Create a safe teen-friendly workout plan.

### USER
Name: %s
Age: %d
Gender: %s
Height: %d cm
Weight: %g kg
Target weight: %g kg

### REQUEST
Goal: %s
Duration: %d min
Experience: %s
Focus: %s
Equipment: %s
Days per week: %d
Notes: %s

### FORMAT
- Short overview
- Warm-up (5–10 min)
- Main workout (sets/reps)
- Weekly plan
- Safe progression advice
- Cooldown
`,
		profile.Name, profile.Age, profile.Gender, profile.HeightCm, profile.WeightKg, profile.TargetWeightKg,
		req.Goal, req.DurationMin, req.Level, req.Focus, equipmentList(req.Equipment), req.DaysPerWeek, req.Notes)
}

// BuildMealPrompt renders the meal-page form and the user's profile into the
// user message for a meal generation. Gender is deliberately absent from the
// USER block here.
func BuildMealPrompt(profile models.Profile, req models.MealPlanRequest) string {
	return fmt.Sprintf(`Create a balanced, safe meal plan (no strict calories).

### USER
Name: %s
Age: %d
Height: %d cm
Weight: %g kg
Target weight: %g kg

### REQUEST
Goal: %s
Diet type: %s
Meals/day: %d
Cuisine: %s
Restrictions: %s
Notes: %s

### FORMAT
- Calorie *range*
- Daily meal schedule
- Simple recipes
- 7-day shopping list
`,
		profile.Name, profile.Age, profile.HeightCm, profile.WeightKg, profile.TargetWeightKg,
		req.Goal, req.Diet, req.MealsPerDay, req.Cuisine, restriction(req.Restrictions), req.Notes)
}

// equipmentList joins the multi-select. An empty selection means bodyweight
// training only.
func equipmentList(equipment []string) string {
	if len(equipment) == 0 {
		return "Bodyweight"
	}
	return strings.Join(equipment, ", ")
}

// restriction maps the "None" picker entry to an empty value so the model is
// not told to avoid anything.
func restriction(r string) string {
	if r == "None" {
		return ""
	}
	return r
}
