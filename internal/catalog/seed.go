package catalog

func init() {
	sims := seedSimulations()
	reg := make(map[string]Simulation, len(sims))
	for _, s := range sims {
		reg[s.ID] = s
	}
	registry = reg

	if err := validateRegistry(registry); err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
}

func seedSimulations() []Simulation {
	return []Simulation{
		{
			ID:    "simple_pendulum",
			Title: "Time & Pendulums",
			File:  "simulations/simple_pendulum.html",
			Description: "An interactive pendulum simulation where you can control pendulum " +
				"length and number of oscillations to demonstrate how time period is " +
				"measured and how it depends on length.\n\n" +
				"What can be demonstrated:\n" +
				"- Oscillatory motion (back and forth swinging)\n" +
				"- Measurement of time using oscillations\n" +
				"- Effect of pendulum length on time period\n" +
				"- Difference between total time and time period\n" +
				"- Stability of measurement using multiple oscillations",
			CannotDemonstrate: []string{
				"Effect of mass on time period",
				"Effect of gravity on time period",
				"Damping or energy loss",
			},
			InitialParams: Params{
				"length":                 float64(5),
				"number_of_oscillations": float64(10),
			},
			Parameters: map[string]ParamInfo{
				"length": {
					Label:  "Pendulum Length",
					Range:  "1-10 units",
					URLKey: "length",
					Effect: "Longer = slower swings (longer period), Shorter = faster swings (shorter period)",
				},
				"number_of_oscillations": {
					Label:  "Oscillations to Observe",
					Range:  "5-50 count",
					URLKey: "oscillations",
					Effect: "More oscillations = more total time, but time period stays the same",
				},
			},
			Concepts: []Concept{
				{
					ID:            1,
					Title:         "Time Period of a Pendulum",
					Description:   "How the length of a pendulum affects how long it takes to complete one swing.",
					KeyInsight:    "Longer pendulum = longer time period (slower swings)",
					RelatedParams: []string{"length"},
				},
				{
					ID:            2,
					Title:         "Measuring Time with Multiple Oscillations",
					Description:   "Why observing multiple swings gives a more accurate measurement of the time period.",
					KeyInsight:    "Multiple oscillations reduce measurement error and show consistency",
					RelatedParams: []string{"number_of_oscillations"},
				},
			},
		},
		{
			ID:    "earth_rotation_revolution",
			Title: "Earth's Rotation & Revolution",
			File:  "simulations/rotAndRev.html",
			Description: "An interactive simulation demonstrating Earth's rotation (day/night " +
				"cycle) and revolution around the Sun (seasons), including the effect of " +
				"axial tilt.\n\n" +
				"What can be demonstrated:\n" +
				"- Day and night cycle from Earth's rotation\n" +
				"- Seasonal changes from Earth's revolution and axial tilt\n" +
				"- Effect of axial tilt on seasons\n" +
				"- Relationship between rotation speed and day length\n" +
				"- Relationship between revolution speed and year length",
			CannotDemonstrate: []string{
				"Moon phases or lunar orbit",
				"Solar and lunar eclipses",
				"Tides",
			},
			InitialParams: Params{
				"rotationSpeed":   float64(50),
				"axialTilt":       23.5,
				"revolutionSpeed": float64(50),
			},
			Parameters: map[string]ParamInfo{
				"rotationSpeed": {
					Label:  "Rotation Speed",
					Range:  "0-100%",
					URLKey: "rotationSpeed",
					Effect: "Controls how fast Earth spins (day/night cycle speed)",
				},
				"axialTilt": {
					Label:  "Axial Tilt Angle",
					Range:  "0-30 degrees",
					URLKey: "axialTilt",
					Effect: "Affects seasons - more tilt = more extreme seasons, no tilt = no seasons",
				},
				"revolutionSpeed": {
					Label:  "Revolution Speed",
					Range:  "0-100%",
					URLKey: "revolutionSpeed",
					Effect: "Controls how fast Earth orbits the Sun (year length)",
				},
			},
			Concepts: []Concept{
				{
					ID:            1,
					Title:         "Earth's Rotation and Day/Night",
					Description:   "How Earth's spinning on its axis creates the day and night cycle.",
					KeyInsight:    "Earth's rotation causes day and night - one complete rotation = one day",
					RelatedParams: []string{"rotationSpeed"},
				},
				{
					ID:            2,
					Title:         "Axial Tilt and Seasons",
					Description:   "How Earth's tilted axis causes different seasons throughout the year.",
					KeyInsight:    "Axial tilt causes seasons - more tilt = more extreme seasonal differences",
					RelatedParams: []string{"axialTilt", "revolutionSpeed"},
				},
				{
					ID:            3,
					Title:         "Revolution Around the Sun",
					Description:   "How Earth's orbit around the Sun, combined with axial tilt, creates yearly seasonal cycles.",
					KeyInsight:    "Revolution + axial tilt creates seasons - one complete orbit = one year",
					RelatedParams: []string{"revolutionSpeed", "axialTilt"},
				},
			},
		},
		{
			ID:    "light_shadows",
			Title: "Light & Shadows",
			File:  "simulations/lightsShadows.html",
			Description: "An interactive simulation exploring how light creates shadows and how " +
				"shadow properties change based on light source distance, object properties, " +
				"and object size.\n\n" +
				"What can be demonstrated:\n" +
				"- Shadow formation from light blocking\n" +
				"- Effect of light distance on shadow size\n" +
				"- Effect of object size on shadow size\n" +
				"- Different shadow properties (opaque, translucent, transparent)\n" +
				"- Relationship between light rays and shadow boundaries",
			CannotDemonstrate: []string{
				"Color effects or refraction",
				"Multiple light sources",
				"Reflection from mirrors",
			},
			InitialParams: Params{
				"lightDistance": float64(5),
				"objectType":    "Opaque",
				"objectSize":    float64(5),
			},
			Parameters: map[string]ParamInfo{
				"lightDistance": {
					Label:  "Light Distance",
					Range:  "1-10 units",
					URLKey: "lightDistance",
					Effect: "Closer light = larger shadow, Further light = smaller shadow",
				},
				"objectType": {
					Label:  "Object Type",
					Range:  "Opaque, Translucent, Transparent",
					URLKey: "objectType",
					Effect: "Opaque = dark shadow, Translucent = lighter fuzzy shadow, Transparent = no shadow",
				},
				"objectSize": {
					Label:  "Object Size",
					Range:  "1-10 units",
					URLKey: "objectSize",
					Effect: "Larger object = larger shadow, Smaller object = smaller shadow",
				},
			},
			Concepts: []Concept{
				{
					ID:            1,
					Title:         "Shadow Formation",
					Description:   "How shadows are created when objects block light.",
					KeyInsight:    "Opaque objects block light completely, creating shadows",
					RelatedParams: []string{"objectType"},
				},
				{
					ID:            2,
					Title:         "Light Distance and Shadow Size",
					Description:   "How the distance of the light source affects the size of the shadow.",
					KeyInsight:    "Closer light source = larger shadow (light rays are more divergent)",
					RelatedParams: []string{"lightDistance"},
				},
				{
					ID:            3,
					Title:         "Object Properties and Shadows",
					Description:   "How different object types (opaque, translucent, transparent) create different shadow characteristics.",
					KeyInsight:    "Material transparency affects shadow darkness - opaque blocks most, transparent blocks none",
					RelatedParams: []string{"objectType", "objectSize"},
				},
			},
		},
	}
}
