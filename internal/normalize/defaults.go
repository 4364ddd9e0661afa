package normalize

// DefaultRenames maps source-specific headers onto canonical column names.
// Keys are matched after lower-casing and whitespace folding, both with the
// literal % and after it has been spelled out.
func DefaultRenames() map[string]string {
	return map[string]string{
		"name":               "player_name",
		"player":             "player_name",
		"gp":                 "games_played",
		"sv%":                "sv_percentage",
		"hdsv%":              "hd_sv_percentage",
		"hdsv_percentage":    "hd_sv_percentage",
		"hdgaa":              "hd_gaa",
		"hdgsaa":             "hd_gsaa",
		"icetime_(minutes)":  "icetime_minutes",
		"goals_against.1":    "goals_against_1",
		"xga":                "xg_against",
		"avg._shot_distance": "avg_shot_distance",
		"avg._goal_distance": "avg_goal_distance",

		"low_danger_unblocked_shot_attempt_save%_above_expected":    "low_danger_unblocked_shot_attempt_save_percentage_above_expected",
		"medium_danger_unblocked_shot_attempt_save%_above_expected": "medium_danger_unblocked_shot_attempt_save_percentage_above_expected",
		"high_danger_unblocked_shot_attempt_save%_above_expected":   "high_danger_unblocked_shot_attempt_save_percentage_above_expected",
	}
}

// DefaultPercentageFields lists the canonical columns that at least one source
// renders as "87.3%".
func DefaultPercentageFields() []string {
	return []string{
		"percent_shot_attempts_blocked_by_teammates",
		"percent_unblocked_shot_attempts_against_on_goal",
		"expected_percent_unblocked_shot_attempts_against_on_goal",
		"on_goal_percentage_above_expected",
		"save_percentage_on_unblocked_shots",
		"xsave_percentage_on_unblocked_shots",
		"save_percentage_above_expected",
		"save_percentage_on_shots_on_goal",
		"low_danger_unblocked_shot_attempt_save_percentage",
		"xlow_danger_unblocked_shot_attempt_save_percentage",
		"low_danger_unblocked_shot_attempt_save_percentage_above_expected",
		"medium_danger_unblocked_shot_attempt_save_percentage",
		"xmedium_danger_unblocked_shot_attempt_save_percentage",
		"medium_danger_unblocked_shot_attempt_save_percentage_above_expected",
		"high_danger_unblocked_shot_attempt_save_percentage",
		"xhigh_danger_unblocked_shot_attempt_save_percentage",
		"high_danger_unblocked_shot_attempt_save_percentage_above_expected",
		"sv_percentage",
		"hd_sv_percentage",
	}
}
