package datastore

// schema lists the table DDL in dependency order. Only types shared by
// SQLite and PostgreSQL are used; sizes and uniqueness live in the
// primary keys, everything else is nullable because the API payloads are.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		team_id    INTEGER PRIMARY KEY,
		name       TEXT,
		short_name TEXT,
		country    TEXT,
		image_url  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS players (
		player_id  INTEGER PRIMARY KEY,
		name       TEXT,
		nickname   TEXT,
		role       TEXT,
		bat_style  TEXT,
		bowl_style TEXT,
		dob        TEXT,
		birthplace TEXT,
		country    TEXT,
		image_url  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS player_team (
		player_id INTEGER,
		team_id   INTEGER,
		PRIMARY KEY (player_id, team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS venues (
		venue_id    INTEGER PRIMARY KEY,
		name        TEXT,
		city        TEXT,
		country     TEXT,
		timezone    TEXT,
		established TEXT,
		capacity    TEXT,
		known_as    TEXT,
		ends        TEXT,
		home_team   TEXT,
		floodlights BOOLEAN,
		image_url   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS series (
		series_id  INTEGER PRIMARY KEY,
		name       TEXT,
		type       TEXT,
		start_date TIMESTAMP,
		end_date   TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		match_id   INTEGER PRIMARY KEY,
		series_id  INTEGER,
		name       TEXT,
		format     TEXT,
		start_date TIMESTAMP,
		end_date   TIMESTAMP,
		state      TEXT,
		status     TEXT,
		venue_id   INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS match_teams (
		match_id  INTEGER,
		team_id   INTEGER,
		team_role TEXT,
		PRIMARY KEY (match_id, team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS match_result (
		match_id        INTEGER PRIMARY KEY,
		result_type     TEXT,
		winning_team    TEXT,
		winning_team_id INTEGER,
		winning_margin  INTEGER,
		win_by_runs     BOOLEAN,
		win_by_innings  BOOLEAN
	)`,
	`CREATE TABLE IF NOT EXISTS match_toss (
		match_id         INTEGER PRIMARY KEY,
		toss_winner_id   INTEGER,
		toss_winner_name TEXT,
		decision         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS match_officials (
		match_id        INTEGER PRIMARY KEY,
		umpire1_id      INTEGER,
		umpire1_name    TEXT,
		umpire1_country TEXT,
		umpire2_id      INTEGER,
		umpire2_name    TEXT,
		umpire2_country TEXT,
		umpire3_id      INTEGER,
		umpire3_name    TEXT,
		umpire3_country TEXT,
		referee_id      INTEGER,
		referee_name    TEXT,
		referee_country TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS match_awards (
		match_id    INTEGER,
		award_type  TEXT,
		player_id   INTEGER,
		player_name TEXT,
		team_name   TEXT,
		PRIMARY KEY (match_id, award_type, player_id)
	)`,
	`CREATE TABLE IF NOT EXISTS match_roster (
		match_id      INTEGER,
		team_id       INTEGER,
		player_id     INTEGER,
		name          TEXT,
		full_name     TEXT,
		nickname      TEXT,
		role          TEXT,
		bat_style     TEXT,
		bowl_style    TEXT,
		is_captain    BOOLEAN,
		is_keeper     BOOLEAN,
		is_substitute BOOLEAN,
		face_image_id INTEGER,
		PRIMARY KEY (match_id, team_id, player_id)
	)`,
	`CREATE TABLE IF NOT EXISTS player_stats (
		player_id          INTEGER,
		format             TEXT,
		matches            INTEGER,
		innings            INTEGER,
		runs               INTEGER,
		balls              INTEGER,
		highest            TEXT,
		average            REAL,
		strike_rate        REAL,
		not_outs           INTEGER,
		fours              INTEGER,
		sixes              INTEGER,
		ducks              INTEGER,
		fifties            INTEGER,
		hundreds           INTEGER,
		double_hundreds    INTEGER,
		triple_hundreds    INTEGER,
		quadruple_hundreds INTEGER,
		PRIMARY KEY (player_id, format)
	)`,
	`CREATE TABLE IF NOT EXISTS player_bowling_stats (
		player_id            INTEGER,
		format               TEXT,
		matches              INTEGER,
		innings              INTEGER,
		balls                INTEGER,
		runs                 INTEGER,
		maidens              INTEGER,
		wickets              INTEGER,
		average              REAL,
		economy              REAL,
		strike_rate          REAL,
		best_bowling_innings TEXT,
		best_bowling_match   TEXT,
		four_wickets         INTEGER,
		five_wickets         INTEGER,
		ten_wickets          INTEGER,
		PRIMARY KEY (player_id, format)
	)`,
	`CREATE TABLE IF NOT EXISTS match_batting (
		match_id    INTEGER,
		innings_id  INTEGER,
		batsman_id  INTEGER,
		player_name TEXT,
		runs        INTEGER,
		balls       INTEGER,
		fours       INTEGER,
		sixes       INTEGER,
		strike_rate REAL,
		dismissal   TEXT,
		PRIMARY KEY (match_id, innings_id, batsman_id)
	)`,
	`CREATE TABLE IF NOT EXISTS match_bowling (
		match_id    INTEGER,
		innings_id  INTEGER,
		bowler_id   INTEGER,
		player_name TEXT,
		overs       REAL,
		maidens     INTEGER,
		runs        INTEGER,
		wickets     INTEGER,
		economy     REAL,
		balls       INTEGER,
		PRIMARY KEY (match_id, innings_id, bowler_id)
	)`,
	`CREATE TABLE IF NOT EXISTS match_fow (
		match_id    INTEGER,
		innings_id  INTEGER,
		fow_order   INTEGER,
		batsman_id  INTEGER,
		player_name TEXT,
		score       TEXT,
		overs       TEXT,
		PRIMARY KEY (match_id, innings_id, fow_order)
	)`,
}
