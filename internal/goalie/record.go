package goalie

// Record is one canonical goalie row. A nil member is an explicit null.
type Record struct {
	ID        int64  `json:"id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`

	Source     *string `json:"source"`
	SeasonType *string `json:"season_type"`
	Year       *string `json:"year"`
	PlayerName *string `json:"player_name"`
	Team       *string `json:"team"`

	GamesPlayed                  *int64   `json:"games_played"`
	GoalsAgainst                 *int64   `json:"goals_against"`
	ExpectedGoalsAgainst         *float64 `json:"expected_goals_against"`
	GoalsSavedAboveExpected      *float64 `json:"goals_saved_above_expected"`
	GoalsSavedAboveExpectedPer60 *float64 `json:"goals_saved_above_expected_per_60"`

	SavePctOnUnblockedShots  *float64 `json:"save_percentage_on_unblocked_shots"`
	XSavePctOnUnblockedShots *float64 `json:"xsave_percentage_on_unblocked_shots"`
	SavePctAboveExpected     *float64 `json:"save_percentage_above_expected"`
	SavePctOnShotsOnGoal     *float64 `json:"save_percentage_on_shots_on_goal"`

	GAA                   *float64 `json:"gaa"`
	XGAA                  *float64 `json:"xgaa"`
	GAABetterThanExpected *float64 `json:"gaa_better_than_expected"`
	WinsAboveReplacement  *float64 `json:"wins_above_replacement"`
	IcetimeMinutes        *int64   `json:"icetime_minutes"`
	ReboundsPerSave       *float64 `json:"rebounds_per_save"`
	PuckFreezesPerSave    *float64 `json:"puck_freezes_per_save"`
	GoalsAgainst1         *int64   `json:"goals_against_1"`

	SavesOnShotsOnGoal           *int64 `json:"saves_on_shots_on_goal"`
	SavesOnUnblockedShotAttempts *int64 `json:"saves_on_unblocked_shot_attempts"`

	PctShotAttemptsBlockedByTeammates             *float64 `json:"percent_shot_attempts_blocked_by_teammates"`
	PctUnblockedShotAttemptsAgainstOnGoal         *float64 `json:"percent_unblocked_shot_attempts_against_on_goal"`
	ExpectedPctUnblockedShotAttemptsAgainstOnGoal *float64 `json:"expected_percent_unblocked_shot_attempts_against_on_goal"`
	OnGoalPctAboveExpected                        *float64 `json:"on_goal_percentage_above_expected"`

	LowDangerSavePct                 *float64 `json:"low_danger_unblocked_shot_attempt_save_percentage"`
	XLowDangerSavePct                *float64 `json:"xlow_danger_unblocked_shot_attempt_save_percentage"`
	LowDangerSavePctAboveExpected    *float64 `json:"low_danger_unblocked_shot_attempt_save_percentage_above_expected"`
	MediumDangerSavePct              *float64 `json:"medium_danger_unblocked_shot_attempt_save_percentage"`
	XMediumDangerSavePct             *float64 `json:"xmedium_danger_unblocked_shot_attempt_save_percentage"`
	MediumDangerSavePctAboveExpected *float64 `json:"medium_danger_unblocked_shot_attempt_save_percentage_above_expected"`
	HighDangerSavePct                *float64 `json:"high_danger_unblocked_shot_attempt_save_percentage"`
	XHighDangerSavePct               *float64 `json:"xhigh_danger_unblocked_shot_attempt_save_percentage"`
	HighDangerSavePctAboveExpected   *float64 `json:"high_danger_unblocked_shot_attempt_save_percentage_above_expected"`

	TOI          *string  `json:"toi"`
	ShotsAgainst *int64   `json:"shots_against"`
	Saves        *int64   `json:"saves"`
	SVPct        *float64 `json:"sv_percentage"`
	GSAA         *float64 `json:"gsaa"`
	XGAgainst    *float64 `json:"xg_against"`

	HDShotsAgainst *int64   `json:"hd_shots_against"`
	HDSaves        *int64   `json:"hd_saves"`
	HDGoalsAgainst *int64   `json:"hd_goals_against"`
	HDSVPct        *float64 `json:"hd_sv_percentage"`
	HDGAA          *float64 `json:"hd_gaa"`
	HDGSAA         *float64 `json:"hd_gsaa"`

	RushAttemptsAgainst    *int64   `json:"rush_attempts_against"`
	ReboundAttemptsAgainst *int64   `json:"rebound_attempts_against"`
	AvgShotDistance        *float64 `json:"avg_shot_distance"`
	AvgGoalDistance        *float64 `json:"avg_goal_distance"`
}

// Pointers returns the address of every canonical member in Columns order.
// Each element is a **string, **int64 or **float64, usable as a Scan target.
func (r *Record) Pointers() []any {
	return []any{
		&r.Source, &r.SeasonType, &r.Year, &r.PlayerName, &r.Team,
		&r.GamesPlayed, &r.GoalsAgainst,
		&r.ExpectedGoalsAgainst, &r.GoalsSavedAboveExpected, &r.GoalsSavedAboveExpectedPer60,
		&r.SavePctOnUnblockedShots, &r.XSavePctOnUnblockedShots, &r.SavePctAboveExpected, &r.SavePctOnShotsOnGoal,
		&r.GAA, &r.XGAA, &r.GAABetterThanExpected, &r.WinsAboveReplacement,
		&r.IcetimeMinutes, &r.ReboundsPerSave, &r.PuckFreezesPerSave, &r.GoalsAgainst1,
		&r.SavesOnShotsOnGoal, &r.SavesOnUnblockedShotAttempts,
		&r.PctShotAttemptsBlockedByTeammates, &r.PctUnblockedShotAttemptsAgainstOnGoal,
		&r.ExpectedPctUnblockedShotAttemptsAgainstOnGoal, &r.OnGoalPctAboveExpected,
		&r.LowDangerSavePct, &r.XLowDangerSavePct, &r.LowDangerSavePctAboveExpected,
		&r.MediumDangerSavePct, &r.XMediumDangerSavePct, &r.MediumDangerSavePctAboveExpected,
		&r.HighDangerSavePct, &r.XHighDangerSavePct, &r.HighDangerSavePctAboveExpected,
		&r.TOI, &r.ShotsAgainst, &r.Saves, &r.SVPct, &r.GSAA, &r.XGAgainst,
		&r.HDShotsAgainst, &r.HDSaves, &r.HDGoalsAgainst, &r.HDSVPct, &r.HDGAA, &r.HDGSAA,
		&r.RushAttemptsAgainst, &r.ReboundAttemptsAgainst, &r.AvgShotDistance, &r.AvgGoalDistance,
	}
}

// Values returns the canonical members in Columns order as driver values,
// with nil for null members.
func (r *Record) Values() []any {
	ptrs := r.Pointers()
	out := make([]any, len(ptrs))
	for i, p := range ptrs {
		switch v := p.(type) {
		case **string:
			if *v != nil {
				out[i] = **v
			}
		case **int64:
			if *v != nil {
				out[i] = **v
			}
		case **float64:
			if *v != nil {
				out[i] = **v
			}
		}
	}
	return out
}

// Populated counts the non-null canonical members.
func (r *Record) Populated() int {
	n := 0
	for _, v := range r.Values() {
		if v != nil {
			n++
		}
	}
	return n
}
