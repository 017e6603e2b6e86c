package catalog

// Exercises returns the built-in exercise library.
func Exercises() Catalog[Exercise] {
	return newCatalog([]Exercise{
		{
			ID:               "barbell_bench_press",
			Name:             "Barbell Bench Press",
			Category:         Chest,
			PrimaryMuscles:   []string{"pectoralis_major", "pectoralis_minor"},
			SecondaryMuscles: []string{"triceps", "anterior_deltoid"},
			Equipment:        []string{"barbell", "bench"},
			Type:             Compound,
			Difficulty:       Intermediate,
			Instructions: []string{
				"Lie on the bench with your feet flat on the floor",
				"Grip the bar slightly wider than shoulder width",
				"Unrack the bar and hold it over your chest",
				"Lower the bar under control until it touches your chest",
				"Press the bar back to the starting position",
			},
			Tips: []string{
				"Keep your shoulder blades retracted throughout the lift",
				"Do not bounce the bar off your chest",
				"Use a spotter for heavy loads",
			},
			RepRangeMin: 6,
			RepRangeMax: 12,
			RestSeconds: 120,
		},
		{
			ID:               "incline_dumbbell_press",
			Name:             "Incline Dumbbell Press",
			Category:         Chest,
			PrimaryMuscles:   []string{"upper_pectoralis_major"},
			SecondaryMuscles: []string{"anterior_deltoid", "triceps"},
			Equipment:        []string{"dumbbell", "incline_bench"},
			Type:             Compound,
			Difficulty:       Intermediate,
			Instructions: []string{
				"Set the bench to a 30 to 45 degree incline",
				"Hold the dumbbells with a neutral grip",
				"Lie back with the dumbbells at chest height",
				"Press the dumbbells up until your arms are extended",
				"Lower under control until you feel a stretch in your chest",
			},
			Tips: []string{
				"Do not exceed a 45 degree incline",
				"Control the descent",
				"Keep your wrists stacked over your elbows",
			},
			RepRangeMin: 8,
			RepRangeMax: 15,
			RestSeconds: 90,
		},
		{
			ID:               "push_up",
			Name:             "Push-Up",
			Category:         Chest,
			PrimaryMuscles:   []string{"pectoralis_major"},
			SecondaryMuscles: []string{"triceps", "anterior_deltoid", "core"},
			Equipment:        []string{"bodyweight"},
			Type:             Compound,
			Difficulty:       Beginner,
			Instructions: []string{
				"Start in a plank with your hands on the floor",
				"Place your hands shoulder width apart",
				"Keep your body in a straight line from head to heels",
				"Lower until your chest nearly touches the floor",
				"Push back to the starting position",
			},
			Tips: []string{
				"Brace your core",
				"Do not let your hips sag",
				"Inhale on the way down and exhale on the way up",
			},
			RepRangeMin: 8,
			RepRangeMax: 20,
			RestSeconds: 60,
		},
		{
			ID:               "lat_pulldown",
			Name:             "Lat Pulldown",
			Category:         Back,
			PrimaryMuscles:   []string{"latissimus_dorsi", "rhomboids"},
			SecondaryMuscles: []string{"biceps", "posterior_deltoid"},
			Equipment:        []string{"cable", "lat_pulldown"},
			Type:             Compound,
			Difficulty:       Beginner,
			Instructions: []string{
				"Sit at the machine with your thighs locked under the pads",
				"Grip the bar overhand, wider than shoulder width",
				"Lean your torso back slightly",
				"Pull the bar to your upper chest",
				"Return under control to the starting position",
			},
			Tips: []string{
				"Pull with your back, not your arms",
				"Keep your chest up",
				"Control the return",
			},
			RepRangeMin: 8,
			RepRangeMax: 15,
			RestSeconds: 90,
		},
		{
			ID:               "bent_over_row",
			Name:             "Barbell Bent-Over Row",
			Category:         Back,
			PrimaryMuscles:   []string{"latissimus_dorsi", "rhomboids", "middle_trapezius"},
			SecondaryMuscles: []string{"biceps", "posterior_deltoid"},
			Equipment:        []string{"barbell"},
			Type:             Compound,
			Difficulty:       Intermediate,
			Instructions: []string{
				"Stand holding the bar with an overhand grip",
				"Hinge forward keeping your back flat",
				"Let the bar hang with your arms extended",
				"Row the bar to your navel",
				"Lower under control",
			},
			Tips: []string{
				"Keep your back flat for the whole set",
				"Do not use momentum",
				"Squeeze your shoulder blades at the top",
			},
			RepRangeMin: 6,
			RepRangeMax: 12,
			RestSeconds: 120,
		},
		{
			ID:               "barbell_back_squat",
			Name:             "Barbell Back Squat",
			Category:         Legs,
			PrimaryMuscles:   []string{"quadriceps", "gluteus_maximus"},
			SecondaryMuscles: []string{"hamstrings", "calves", "core"},
			Equipment:        []string{"barbell", "squat_rack"},
			Type:             Compound,
			Difficulty:       Intermediate,
			Instructions: []string{
				"Rest the bar on your upper traps, not your neck",
				"Stand with feet shoulder width apart and toes slightly out",
				"Keep your chest up and back straight",
				"Descend until your thighs are parallel to the floor",
				"Drive up through your heels",
			},
			Tips: []string{
				"Keep your knees tracking over your toes",
				"Descend under control",
				"Keep your weight on your heels",
			},
			RepRangeMin: 6,
			RepRangeMax: 15,
			RestSeconds: 180,
		},
		{
			ID:               "leg_press",
			Name:             "45° Leg Press",
			Category:         Legs,
			PrimaryMuscles:   []string{"quadriceps", "gluteus_maximus"},
			SecondaryMuscles: []string{"hamstrings"},
			Equipment:        []string{"machine", "leg_press"},
			Type:             Compound,
			Difficulty:       Beginner,
			Instructions: []string{
				"Sit in the machine with your back against the pad",
				"Place your feet shoulder width apart on the platform",
				"Release the safety handles",
				"Lower until your knees reach 90 degrees",
				"Press the platform back without locking your knees",
			},
			Tips: []string{
				"Do not go much deeper than 90 degrees",
				"Keep your feet planted on the platform",
				"Control the weight on the way down",
			},
			RepRangeMin: 10,
			RepRangeMax: 20,
			RestSeconds: 120,
		},
		{
			ID:               "hip_thrust",
			Name:             "Barbell Hip Thrust",
			Category:         Glutes,
			PrimaryMuscles:   []string{"gluteus_maximus"},
			SecondaryMuscles: []string{"hamstrings", "core"},
			Equipment:        []string{"barbell", "bench"},
			Type:             Compound,
			Difficulty:       Intermediate,
			Instructions: []string{
				"Sit with your upper back against a bench and the bar over your hips",
				"Plant your feet hip width apart",
				"Drive through your heels to lift your hips",
				"Pause with your hips fully extended",
				"Lower under control",
			},
			Tips: []string{
				"Keep your chin tucked",
				"Do not overextend your lower back",
				"Pad the bar for comfort",
			},
			RepRangeMin: 8,
			RepRangeMax: 15,
			RestSeconds: 90,
		},
		{
			ID:               "overhead_press",
			Name:             "Overhead Press",
			Category:         Shoulders,
			PrimaryMuscles:   []string{"anterior_deltoid", "lateral_deltoid"},
			SecondaryMuscles: []string{"triceps", "upper_trapezius"},
			Equipment:        []string{"barbell"},
			Type:             Compound,
			Difficulty:       Intermediate,
			Instructions: []string{
				"Stand with the bar at shoulder height",
				"Grip slightly wider than shoulder width",
				"Brace your core",
				"Press the bar straight overhead",
				"Lower under control to shoulder height",
			},
			Tips: []string{
				"Do not press behind your head",
				"Keep your core stable",
				"Control the descent",
			},
			RepRangeMin: 8,
			RepRangeMax: 12,
			RestSeconds: 120,
		},
		{
			ID:               "lateral_raise",
			Name:             "Lateral Raise",
			Category:         Shoulders,
			PrimaryMuscles:   []string{"lateral_deltoid"},
			SecondaryMuscles: []string{"upper_trapezius"},
			Equipment:        []string{"dumbbell"},
			Type:             Isolation,
			Difficulty:       Beginner,
			Instructions: []string{
				"Stand with the dumbbells at your sides",
				"Keep a slight bend in your elbows",
				"Raise your arms out to shoulder height",
				"Pause at the top",
				"Lower under control",
			},
			Tips: []string{
				"Do not swing your body",
				"Use a moderate weight to keep good form",
				"Do not raise above shoulder height",
			},
			RepRangeMin: 12,
			RepRangeMax: 20,
			RestSeconds: 60,
		},
		{
			ID:               "barbell_curl",
			Name:             "Barbell Curl",
			Category:         Arms,
			PrimaryMuscles:   []string{"biceps_brachii"},
			SecondaryMuscles: []string{"brachialis", "brachioradialis"},
			Equipment:        []string{"barbell"},
			Type:             Isolation,
			Difficulty:       Beginner,
			Instructions: []string{
				"Stand holding the bar with an underhand grip",
				"Let your arms hang fully extended",
				"Pin your elbows to your sides",
				"Curl the bar up to your chest",
				"Lower under control",
			},
			Tips: []string{
				"Do not swing your body",
				"Keep your elbows in place",
				"Control the weight on the way down",
			},
			RepRangeMin: 10,
			RepRangeMax: 15,
			RestSeconds: 75,
		},
		{
			ID:               "skull_crusher",
			Name:             "Skull Crusher",
			Category:         Arms,
			PrimaryMuscles:   []string{"triceps_brachii"},
			SecondaryMuscles: []string{},
			Equipment:        []string{"barbell", "bench"},
			Type:             Isolation,
			Difficulty:       Intermediate,
			Instructions: []string{
				"Lie on the bench holding the bar with a close grip",
				"Extend your arms over your chest",
				"Bend only at the elbows and lower the bar to your forehead",
				"Keep your elbows fixed",
				"Extend your arms back up",
			},
			Tips: []string{
				"Keep your elbows in place",
				"Use a moderate weight",
				"Lower the bar slowly",
			},
			RepRangeMin: 10,
			RepRangeMax: 15,
			RestSeconds: 75,
		},
		{
			ID:               "plank",
			Name:             "Plank",
			Category:         Core,
			PrimaryMuscles:   []string{"rectus_abdominis", "transversus_abdominis"},
			SecondaryMuscles: []string{"obliques", "erector_spinae"},
			Equipment:        []string{"bodyweight"},
			Type:             Isolation,
			Difficulty:       Beginner,
			Instructions: []string{
				"Hold a plank on your forearms",
				"Keep your body in a straight line from head to heels",
				"Squeeze your abs and glutes",
				"Hold the position for the target time",
				"Breathe normally throughout",
			},
			Tips: []string{
				"Do not let your hips sag or pike",
				"Keep your breathing steady",
				"Keep your core braced the whole time",
			},
			RepRangeMin: 30,
			RepRangeMax: 120,
			RestSeconds: 60,
		},
		{
			ID:               "treadmill_walk",
			Name:             "Treadmill Walk",
			Category:         Cardio,
			PrimaryMuscles:   []string{"cardiovascular"},
			SecondaryMuscles: []string{"quadriceps", "calves", "glutes"},
			Equipment:        []string{"cardio_equipment", "treadmill"},
			Type:             CardioExercise,
			Difficulty:       Beginner,
			Instructions: []string{
				"Set the speed between 5 and 7 km/h",
				"Stand tall",
				"Swing your arms naturally",
				"Keep a steady pace",
				"Monitor your heart rate",
			},
			Tips: []string{
				"Increase speed and incline gradually",
				"Wear proper shoes",
				"Stay hydrated",
			},
			RepRangeMin: 20,
			RepRangeMax: 45,
			RestSeconds: 0,
		},
	})
}
