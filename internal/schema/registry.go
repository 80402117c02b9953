package schema

// registry holds the calibrated column layout for every category and
// role. Positions are slice indexes; the raw table column at index i maps
// to the canonical name at index i after any category-specific column
// selection.
//
// Only GAME_STATS differs between roles: the defense page has no
// turnover_ratio column. Every other category shares one layout.
var registry = map[Category]map[Role][]ColumnSpec{
	GameStats: {
		Offense: gameStatsOffense,
		Defense: gameStatsOffense[:len(gameStatsOffense)-1],
	},
	Scoring: {
		Offense: scoring,
		Defense: scoring,
	},
	TeamPassing: {
		Offense: teamPassing,
		Defense: teamPassing,
	},
	Rushing: {
		Offense: rushing,
		Defense: rushing,
	},
	TeamReceiving: {
		Offense: teamReceiving,
		Defense: teamReceiving,
	},
	OffensiveLine: {
		Offense: offensiveLine,
		Defense: offensiveLine,
	},
}

var gameStatsOffense = []ColumnSpec{
	{"rank", Numeric},
	{"team", Identity},
	{"games", Numeric},
	{"pts_game", Numeric},
	{"pts_total", Numeric},
	{"plays_scrimmage", Numeric},
	{"yds_game", Numeric},
	{"yds_play", Numeric},
	{"first_down_g", Numeric},
	{"third_conv", Numeric},
	{"third_att", Numeric},
	{"third_pct", Percentage},
	{"fourth_conv", Numeric},
	{"fourth_att", Numeric},
	{"fourth_pct", Percentage},
	{"penalty", Numeric},
	{"penalty_yds", Numeric},
	{"time_of_poss", DurationMMSS},
	{"fumbles_total", Numeric},
	{"fumbles_lost", Numeric},
	{"turnover_ratio", Numeric},
}

var scoring = []ColumnSpec{
	{"rank", Numeric},
	{"team", Identity},
	{"games", Numeric},
	{"pts_game", Numeric},
	{"pts_total", Numeric},
	{"td_rush", Numeric},
	{"td_rec", Numeric},
	{"td_punt", Numeric},
	{"td_kick", Numeric},
	{"td_int", Numeric},
	{"td_fumble", Numeric},
	{"td_fg", Numeric},
	{"td_extra_pt", Numeric},
	{"extra_points_made", Numeric},
	{"field_goal_made", Numeric},
	{"safety", Numeric},
	{"two_point_converted", Numeric},
}

var teamPassing = []ColumnSpec{
	{"rank", Numeric},
	{"team", Identity},
	{"games", Numeric},
	{"pts_game", Numeric},
	{"pts_total", Numeric},
	{"pass_comp", Numeric},
	{"pass_att", Numeric},
	{"pass_comp_pct", Percentage},
	{"pass_att_g", Numeric},
	{"pass_yds", CommaNumeric},
	{"pass_avg", Numeric},
	{"pass_yds_g", Numeric},
	{"pass_td", Numeric},
	{"pass_int", Numeric},
	{"pass_first", Numeric},
	{"pass_first_pct", Percentage},
	{"pass_long", Numeric},
	{"pass_20_plus", Numeric},
	{"pass_40_plus", Numeric},
	{"pass_sack", Numeric},
	{"pass_rating", Numeric},
}

var rushing = []ColumnSpec{
	{"rank", Numeric},
	{"team", Identity},
	{"games", Numeric},
	{"pts_game", Numeric},
	{"pts_total", Numeric},
	{"rush_att", Numeric},
	{"rush_att_g", Numeric},
	{"rush_yds", CommaNumeric},
	{"rush_avg", Numeric},
	{"rush_yds_g", Numeric},
	{"rush_td", Numeric},
	{"rush_long", Numeric},
	{"rush_first", Numeric},
	{"rush_first_pct", Percentage},
	{"rush_20_plus", Numeric},
	{"rush_40_plus", Numeric},
	{"rush_fumbles", Numeric},
}

var teamReceiving = []ColumnSpec{
	{"rank", Numeric},
	{"team", Identity},
	{"games", Numeric},
	{"pts_game", Numeric},
	{"pts_total", Numeric},
	{"rec", Numeric},
	{"rec_yds", CommaNumeric},
	{"rec_avg", Numeric},
	{"rec_yds_g", Numeric},
	{"rec_lng", Numeric},
	{"rec_td", Numeric},
	{"rec_20_plus", Numeric},
	{"rec_40_plus", Numeric},
	{"rec_first", Numeric},
	{"rec_first_pct", Percentage},
	{"rec_fumbles", Numeric},
}

var offensiveLine = []ColumnSpec{
	{"rank", Numeric},
	{"team", Identity},
	{"experience", Numeric},
	{"rush_att", Numeric},
	{"rush_yds", CommaNumeric},
	{"rush_avg", Numeric},
	{"rush_td", Numeric},
	{"left_rush_first", Numeric},
	{"left_rush_neg", Numeric},
	{"left_rush_10_plus", Numeric},
	{"left_rush_power", Numeric},
	{"center_rush_first", Numeric},
	{"center_rush_neg", Numeric},
	{"center_rush_10_plus", Numeric},
	{"center_rush_power", Numeric},
	{"right_rush_first", Numeric},
	{"right_rush_neg", Numeric},
	{"right_rush_10_plus", Numeric},
	{"right_rush_power", Numeric},
	{"sacks", Numeric},
	{"qb_hits", Numeric},
}
