package generator

// BasicWorkoutModel 內建的基本訓練模型，模型檔無法載入時使用
func BasicWorkoutModel() *WorkoutModel {
	return &WorkoutModel{
		Version:      "basic",
		DefaultGoal:  "general_fitness",
		DefaultLevel: "beginner",
		Goals: map[string]GoalRule{
			"general_fitness": {
				Duration: "45 minutes",
				Notes:    "Warm up for 5-10 minutes before every session.",
				Split: []SessionRule{
					{Focus: "Full Body", Exercises: []string{"Squats", "Push-ups", "Dumbbell Rows", "Plank"}},
					{Focus: "Cardio & Core", Exercises: []string{"Brisk Walk or Jog", "Mountain Climbers", "Bicycle Crunches"}},
				},
			},
			"weight_loss": {
				Duration: "40 minutes",
				Notes:    "Keep rest short and stay in a moderate calorie deficit.",
				Split: []SessionRule{
					{Focus: "HIIT", Exercises: []string{"Jumping Jacks", "Burpees", "High Knees", "Mountain Climbers"}},
					{Focus: "Full Body Circuit", Exercises: []string{"Goblet Squats", "Push-ups", "Kettlebell Swings", "Plank"}},
					{Focus: "Steady Cardio", Exercises: []string{"Cycling", "Incline Walk"}},
				},
			},
			"muscle_gain": {
				Duration: "60 minutes",
				Notes:    "Add weight gradually and eat in a small calorie surplus.",
				Split: []SessionRule{
					{Focus: "Upper Body", Exercises: []string{"Bench Press", "Barbell Rows", "Overhead Press", "Bicep Curls"}},
					{Focus: "Lower Body", Exercises: []string{"Back Squats", "Romanian Deadlifts", "Lunges", "Calf Raises"}},
				},
			},
			"strength": {
				Duration: "60 minutes",
				Notes:    "Focus on form in the main lifts before adding load.",
				Split: []SessionRule{
					{Focus: "Squat", Exercises: []string{"Back Squats", "Leg Press", "Plank"}},
					{Focus: "Press", Exercises: []string{"Bench Press", "Overhead Press", "Dips"}},
					{Focus: "Pull", Exercises: []string{"Deadlifts", "Pull-ups", "Barbell Rows"}},
				},
			},
			"endurance": {
				Duration: "50 minutes",
				Notes:    "Build volume slowly, no more than 10% per week.",
				Split: []SessionRule{
					{Focus: "Aerobic Base", Exercises: []string{"Easy Run", "Rowing"}},
					{Focus: "Muscular Endurance", Exercises: []string{"Bodyweight Squats", "Push-ups", "Walking Lunges"}},
				},
			},
		},
		Levels: map[string]LevelRule{
			"beginner": {
				Intensity: Intensity{Sets: "2-3", Reps: "10-12", Rest: "90 seconds"},
				Notes:     "Take at least one rest day between hard sessions.",
			},
			"intermediate": {
				Intensity: Intensity{Sets: "3-4", Reps: "8-12", Rest: "60-90 seconds"},
			},
			"advanced": {
				Intensity: Intensity{Sets: "4-5", Reps: "6-10", Rest: "60-120 seconds"},
				Notes:     "Schedule a deload week every 4-6 weeks.",
			},
		},
	}
}

// BasicNutritionModel 內建的基本飲食模型
func BasicNutritionModel() *NutritionModel {
	return &NutritionModel{
		Version:     "basic",
		DefaultDiet: "balanced",
		Diets: map[string]DietRule{
			"balanced": {
				ProteinPct: 30, CarbsPct: 40, FatPct: 30,
				Breakfast: "Oatmeal with berries and Greek yogurt",
				Lunch:     "Grilled chicken salad with quinoa",
				Dinner:    "Baked salmon with brown rice and vegetables",
				Snacks:    []string{"Apple with peanut butter", "Handful of almonds"},
				Notes:     "Drink at least 2 liters of water per day.",
			},
			"vegetarian": {
				ProteinPct: 25, CarbsPct: 45, FatPct: 30,
				Breakfast: "Scrambled eggs with spinach on whole grain toast",
				Lunch:     "Lentil soup with a side salad",
				Dinner:    "Chickpea curry with brown rice",
				Snacks:    []string{"Cottage cheese with fruit", "Hummus with carrots"},
				Notes:     "Combine legumes and grains for complete protein.",
			},
			"vegan": {
				ProteinPct: 20, CarbsPct: 50, FatPct: 30,
				Breakfast: "Tofu scramble with vegetables",
				Lunch:     "Quinoa bowl with black beans and avocado",
				Dinner:    "Tempeh stir-fry with noodles",
				Snacks:    []string{"Trail mix", "Soy yogurt with granola"},
				Notes:     "Consider a vitamin B12 supplement.",
			},
			"keto": {
				ProteinPct: 25, CarbsPct: 5, FatPct: 70,
				Breakfast: "Eggs with bacon and avocado",
				Lunch:     "Cobb salad with olive oil dressing",
				Dinner:    "Ribeye steak with buttered broccoli",
				Snacks:    []string{"Cheese cubes", "Macadamia nuts"},
				Notes:     "Keep net carbs under 30g per day.",
			},
			"high_protein": {
				ProteinPct: 40, CarbsPct: 35, FatPct: 25,
				Breakfast: "Protein pancakes with egg whites",
				Lunch:     "Turkey breast wrap with vegetables",
				Dinner:    "Lean beef with sweet potato and green beans",
				Snacks:    []string{"Protein shake", "Greek yogurt"},
				Notes:     "Spread protein evenly across meals.",
			},
		},
	}
}
