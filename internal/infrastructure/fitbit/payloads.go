package fitbit

import "encoding/json"

// Payload shapes for the four daily read endpoints. Optional sub-fields
// are pointers or zero-tolerant so partial responses normalize cleanly.

type activityPayload struct {
	Summary struct {
		Steps              int     `json:"steps"`
		CaloriesOut        int     `json:"caloriesOut"`
		VeryActiveMinutes  int     `json:"veryActiveMinutes"`
		FairlyActiveMinutes int    `json:"fairlyActiveMinutes"`
		Distances          []struct {
			Activity string  `json:"activity"`
			Distance float64 `json:"distance"`
		} `json:"distances"`
	} `json:"summary"`
}

// weightPayload covers the three historically observed weight shapes:
// a list of manual log entries, a body-composition summary, and a bare
// summary number. The "weight" key is kept raw because it is an array
// in the first shape and a number in the last.
type weightPayload struct {
	Weight json.RawMessage `json:"weight"`
	Body   *struct {
		Weight float64 `json:"weight"`
		BMI    float64 `json:"bmi"`
		Fat    float64 `json:"fat"`
	} `json:"body"`
}

type weightLogEntry struct {
	Weight float64 `json:"weight"`
	BMI    float64 `json:"bmi"`
	Fat    float64 `json:"fat"`
}

type foodPayload struct {
	Summary struct {
		Calories int     `json:"calories"`
		Water    float64 `json:"water"`
	} `json:"summary"`
	Foods []struct {
		LogDate    string `json:"logDate"`
		LoggedFood struct {
			Name       string `json:"name"`
			Calories   int    `json:"calories"`
			MealTypeID int    `json:"mealTypeId"`
		} `json:"loggedFood"`
	} `json:"foods"`
}

type sleepPayload struct {
	Sleep []struct {
		IsMainSleep bool   `json:"isMainSleep"`
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
		TimeInBed   int    `json:"timeInBed"`
		Efficiency  int    `json:"efficiency"`
		Levels      struct {
			Summary struct {
				Deep  stageSummary `json:"deep"`
				Light stageSummary `json:"light"`
				Rem   stageSummary `json:"rem"`
				Wake  stageSummary `json:"wake"`
			} `json:"summary"`
		} `json:"levels"`
	} `json:"sleep"`
}

type stageSummary struct {
	Minutes int `json:"minutes"`
}
