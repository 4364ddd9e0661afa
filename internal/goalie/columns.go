// Package goalie defines the canonical goalie record every source is projected onto.
package goalie

// Kind is the storage type of a canonical column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Column describes one canonical column. Size bounds string columns.
type Column struct {
	Name string
	Kind Kind
	Size int
}

// Columns is the canonical column set in storage order. Record.Pointers
// must stay aligned with it.
var Columns = []Column{
	{Name: "source", Kind: KindString, Size: 50},
	{Name: "season_type", Kind: KindString, Size: 50},
	{Name: "year", Kind: KindString, Size: 20},
	{Name: "player_name", Kind: KindString, Size: 100},
	{Name: "team", Kind: KindString, Size: 50},
	{Name: "games_played", Kind: KindInt},
	{Name: "goals_against", Kind: KindInt},
	{Name: "expected_goals_against", Kind: KindFloat},
	{Name: "goals_saved_above_expected", Kind: KindFloat},
	{Name: "goals_saved_above_expected_per_60", Kind: KindFloat},
	{Name: "save_percentage_on_unblocked_shots", Kind: KindFloat},
	{Name: "xsave_percentage_on_unblocked_shots", Kind: KindFloat},
	{Name: "save_percentage_above_expected", Kind: KindFloat},
	{Name: "save_percentage_on_shots_on_goal", Kind: KindFloat},
	{Name: "gaa", Kind: KindFloat},
	{Name: "xgaa", Kind: KindFloat},
	{Name: "gaa_better_than_expected", Kind: KindFloat},
	{Name: "wins_above_replacement", Kind: KindFloat},
	{Name: "icetime_minutes", Kind: KindInt},
	{Name: "rebounds_per_save", Kind: KindFloat},
	{Name: "puck_freezes_per_save", Kind: KindFloat},
	{Name: "goals_against_1", Kind: KindInt},
	{Name: "saves_on_shots_on_goal", Kind: KindInt},
	{Name: "saves_on_unblocked_shot_attempts", Kind: KindInt},
	{Name: "percent_shot_attempts_blocked_by_teammates", Kind: KindFloat},
	{Name: "percent_unblocked_shot_attempts_against_on_goal", Kind: KindFloat},
	{Name: "expected_percent_unblocked_shot_attempts_against_on_goal", Kind: KindFloat},
	{Name: "on_goal_percentage_above_expected", Kind: KindFloat},
	{Name: "low_danger_unblocked_shot_attempt_save_percentage", Kind: KindFloat},
	{Name: "xlow_danger_unblocked_shot_attempt_save_percentage", Kind: KindFloat},
	{Name: "low_danger_unblocked_shot_attempt_save_percentage_above_expected", Kind: KindFloat},
	{Name: "medium_danger_unblocked_shot_attempt_save_percentage", Kind: KindFloat},
	{Name: "xmedium_danger_unblocked_shot_attempt_save_percentage", Kind: KindFloat},
	{Name: "medium_danger_unblocked_shot_attempt_save_percentage_above_expected", Kind: KindFloat},
	{Name: "high_danger_unblocked_shot_attempt_save_percentage", Kind: KindFloat},
	{Name: "xhigh_danger_unblocked_shot_attempt_save_percentage", Kind: KindFloat},
	{Name: "high_danger_unblocked_shot_attempt_save_percentage_above_expected", Kind: KindFloat},
	{Name: "toi", Kind: KindString, Size: 50},
	{Name: "shots_against", Kind: KindInt},
	{Name: "saves", Kind: KindInt},
	{Name: "sv_percentage", Kind: KindFloat},
	{Name: "gsaa", Kind: KindFloat},
	{Name: "xg_against", Kind: KindFloat},
	{Name: "hd_shots_against", Kind: KindInt},
	{Name: "hd_saves", Kind: KindInt},
	{Name: "hd_goals_against", Kind: KindInt},
	{Name: "hd_sv_percentage", Kind: KindFloat},
	{Name: "hd_gaa", Kind: KindFloat},
	{Name: "hd_gsaa", Kind: KindFloat},
	{Name: "rush_attempts_against", Kind: KindInt},
	{Name: "rebound_attempts_against", Kind: KindInt},
	{Name: "avg_shot_distance", Kind: KindFloat},
	{Name: "avg_goal_distance", Kind: KindFloat},
}

var columnIndex = func() map[string]int {
	idx := make(map[string]int, len(Columns))
	for i, c := range Columns {
		idx[c.Name] = i
	}
	return idx
}()

// ColumnNames returns the canonical column names in storage order.
func ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a canonical column by name.
func Lookup(name string) (Column, bool) {
	i, ok := columnIndex[name]
	if !ok {
		return Column{}, false
	}
	return Columns[i], true
}
