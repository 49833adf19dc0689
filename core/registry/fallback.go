package registry

import "github.com/openathletics/flextime/core/model"

// fallbackPairHours is the global transition-time table in hours, used when a
// venue defines no override. Keys are directional; both directions are listed
// where the table defines them.
func fallbackPairHours() map[string]float64 {
	return map[string]float64{
		"basketball_to_basketball": 1,
		"basketball_to_volleyball": 2,
		"basketball_to_wrestling":  3,
		"basketball_to_gymnastics": 4,
		"volleyball_to_basketball": 2,
		"volleyball_to_wrestling":  3,
		"wrestling_to_basketball":  3,
		"wrestling_to_volleyball":  3,
		"gymnastics_to_basketball": 4,
		"mtennis_to_wtennis":       1,
		"wtennis_to_mtennis":       1,
	}
}

// fallbackSchools lists the schools with complex shared-venue arrangements.
// Served when no venue data file is configured or the file cannot be read.
func fallbackSchools() map[string]School {
	return map[string]School{
		"arizona_state": {
			Name: "Arizona State",
			Venues: []Venue{
				{
					Name:          "Desert Financial Arena",
					Sports:        []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportVolleyball, model.SportWrestling, model.SportGymnastics},
					PriorityOrder: []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportGymnastics, model.SportWrestling, model.SportVolleyball},
					Notes:         "Complex setup for gymnastics requires additional time",
				},
				{
					Name:          "Whiteman Tennis Center",
					Sports:        []model.Sport{model.SportMensTennis, model.SportWomensTennis},
					PriorityOrder: []model.Sport{model.SportMensTennis, model.SportWomensTennis},
					Notes:         "Typically scheduled on different days but can be used same day",
				},
			},
		},
		"iowa_state": {
			Name: "Iowa State",
			Venues: []Venue{
				{
					Name:          "Hilton Coliseum",
					Sports:        []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportVolleyball, model.SportGymnastics, model.SportWrestling},
					PriorityOrder: []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportWrestling, model.SportGymnastics, model.SportVolleyball},
					Notes:         "Wrestling and gymnastics never scheduled on same day",
				},
				{
					Name:          "Forker Tennis Courts",
					Sports:        []model.Sport{model.SportMensTennis, model.SportWomensTennis},
					PriorityOrder: []model.Sport{model.SportWomensTennis, model.SportMensTennis},
					Notes:         "Indoor courts have limited availability in winter months",
				},
			},
		},
		"west_virginia": {
			Name: "West Virginia",
			Venues: []Venue{
				{
					Name:          "WVU Coliseum",
					Sports:        []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportVolleyball, model.SportWrestling, model.SportGymnastics},
					PriorityOrder: []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportWrestling, model.SportGymnastics, model.SportVolleyball},
					Notes:         "Particularly difficult to schedule gymnastics with other sports",
				},
				{
					Name:          "Mountaineer Tennis Courts",
					Sports:        []model.Sport{model.SportMensTennis, model.SportWomensTennis},
					PriorityOrder: []model.Sport{model.SportMensTennis, model.SportWomensTennis},
					Notes:         "Outdoor courts dependent on weather conditions",
				},
			},
		},
		"kansas": {
			Name: "Kansas",
			Venues: []Venue{
				{
					Name:          "Allen Fieldhouse",
					Sports:        []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportVolleyball},
					PriorityOrder: []model.Sport{model.SportMensBasketball, model.SportWomensBasketball, model.SportVolleyball},
					Notes:         "Tradition of MBB priority; volleyball typically scheduled around basketball",
				},
			},
		},
		"baylor": {
			Name: "Baylor",
			Venues: []Venue{
				{
					Name:          "Foster Pavilion",
					Sports:        []model.Sport{model.SportMensBasketball, model.SportWomensBasketball},
					PriorityOrder: []model.Sport{model.SportMensBasketball, model.SportWomensBasketball},
					Notes:         "New facility with efficient conversion between setups",
				},
				{
					Name:          "Ferrell Center",
					Sports:        []model.Sport{model.SportVolleyball, model.SportGymnastics},
					PriorityOrder: []model.Sport{model.SportVolleyball, model.SportGymnastics},
					Notes:         "Former basketball arena now used for Olympic sports",
				},
			},
		},
	}
}
