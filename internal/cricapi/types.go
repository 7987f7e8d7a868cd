// Package cricapi defines the wire shapes of the cricket API payloads and
// one decoding function per shape. All malformed-input handling happens at
// this boundary; downstream code works with typed structs.
//
// Numeric fields the provider serves inconsistently (sometimes number,
// sometimes string, sometimes absent) are declared as `any` and coerced by
// the ingestion layer. Identifiers arriving reliably as numbers are plain
// ints.
package cricapi

// MatchListing is the live/upcoming/recent matches response: matches nest
// three levels deep under typeMatches -> seriesMatches -> seriesAdWrapper.
type MatchListing struct {
	TypeMatches []TypeMatch `json:"typeMatches"`
}

type TypeMatch struct {
	MatchType     string        `json:"matchType"`
	SeriesMatches []SeriesMatch `json:"seriesMatches"`
}

type SeriesMatch struct {
	// Ad slots appear as siblings of real series blocks; for those the
	// wrapper is nil.
	SeriesAdWrapper *SeriesWrapper `json:"seriesAdWrapper"`
}

type SeriesWrapper struct {
	SeriesID   any     `json:"seriesId"`
	SeriesName string  `json:"seriesName"`
	Matches    []Match `json:"matches"`
}

// Match wraps one matchInfo block.
type Match struct {
	Info *MatchInfo `json:"matchInfo"`
}

// MatchInfo is shared by the listing, series-detail and match-center
// payloads; the match-center variant additionally carries result, toss,
// officials, award and roster blocks.
type MatchInfo struct {
	MatchID       any    `json:"matchId"`
	SeriesID      any    `json:"seriesId"`
	SeriesName    string `json:"seriesName"`
	SeriesType    string `json:"seriesType"`
	MatchDesc     string `json:"matchDesc"`
	MatchFormat   string `json:"matchFormat"`
	StartDate     any    `json:"startDate"`
	EndDate       any    `json:"endDate"`
	SeriesStartDt any    `json:"seriesStartDt"`
	SeriesEndDt   any    `json:"seriesEndDt"`
	State         string `json:"state"`
	Status        string `json:"status"`

	Team1     *TeamInfo `json:"team1"`
	Team2     *TeamInfo `json:"team2"`
	VenueInfo *VenueRef `json:"venueInfo"`

	Result      *MatchResult  `json:"result"`
	TossResults *TossResults  `json:"tossResults"`
	Umpire1     *Official     `json:"umpire1"`
	Umpire2     *Official     `json:"umpire2"`
	Umpire3     *Official     `json:"umpire3"`
	Referee     *Official     `json:"referee"`

	PlayersOfTheMatch  []AwardPlayer `json:"playersOfTheMatch"`
	PlayersOfTheSeries []AwardPlayer `json:"playersOfTheSeries"`
}

// TeamInfo carries a team reference and, in match-center payloads, the
// full roster. Listing payloads use teamId, match-center payloads use id.
type TeamInfo struct {
	TeamID        any            `json:"teamId"`
	ID            any            `json:"id"`
	TeamName      string         `json:"teamName"`
	TeamSName     string         `json:"teamSName"`
	PlayerDetails []RosterPlayer `json:"playerDetails"`
}

type VenueRef struct {
	ID       any    `json:"id"`
	Ground   string `json:"ground"`
	City     string `json:"city"`
	Timezone string `json:"timezone"`
}

type MatchResult struct {
	ResultType    string `json:"resultType"`
	WinningTeam   string `json:"winningTeam"`
	WinningTeamID any    `json:"winningteamId"`
	WinningMargin any    `json:"winningMargin"`
	WinByRuns     bool   `json:"winByRuns"`
	WinByInnings  bool   `json:"winByInnings"`
}

type TossResults struct {
	TossWinnerID   any    `json:"tossWinnerId"`
	TossWinnerName string `json:"tossWinnerName"`
	Decision       string `json:"decision"`
}

type Official struct {
	ID      any    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type AwardPlayer struct {
	ID       any    `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	TeamName string `json:"teamName"`
}

type RosterPlayer struct {
	ID           any    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	NickName     string `json:"nickName"`
	Role         string `json:"role"`
	BattingStyle string `json:"battingStyle"`
	BowlingStyle string `json:"bowlingStyle"`
	TeamName     string `json:"teamName"`
	FaceImageID  any    `json:"faceImageId"`
	Captain      bool   `json:"captain"`
	Keeper       bool   `json:"keeper"`
	Substitute   bool   `json:"substitute"`
}

// MatchCenter is the per-match detail response.
type MatchCenter struct {
	MatchInfo *MatchInfo `json:"matchInfo"`
}

// SeriesListing is the current/archived series index, grouped by month
// under seriesMapProto.
type SeriesListing struct {
	SeriesMapProto []SeriesGroup `json:"seriesMapProto"`
}

type SeriesGroup struct {
	Date   string        `json:"date"`
	Series []SeriesEntry `json:"series"`
}

type SeriesEntry struct {
	ID        any    `json:"id"`
	Name      string `json:"name"`
	StartDt   any    `json:"startDt"`
	EndDt     any    `json:"endDt"`
}

// SeriesDetail is the per-series response carrying that series' matches.
type SeriesDetail struct {
	MatchDetails []MatchDetail `json:"matchDetails"`
}

type MatchDetail struct {
	MatchDetailsMap *MatchDetailsMap `json:"matchDetailsMap"`
}

type MatchDetailsMap struct {
	Key   string  `json:"key"`
	Match []Match `json:"match"`
}

// TeamListing is the international teams index. The list mixes real teams
// with header entries that carry a name but no teamId.
type TeamListing struct {
	List []TeamEntry `json:"list"`
}

type TeamEntry struct {
	TeamID      any    `json:"teamId"`
	TeamName    string `json:"teamName"`
	TeamSName   string `json:"teamSName"`
	CountryName string `json:"countryName"`
	ImageID     any    `json:"imageId"`
}

// TeamPlayersListing is the per-team squad response. Like the team index,
// category headers ("BATSMEN", "BOWLERS") appear as entries without an id.
type TeamPlayersListing struct {
	Player []SquadPlayer `json:"player"`
}

type SquadPlayer struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

// PlayerProfile is the per-player info response.
type PlayerProfile struct {
	ID          any          `json:"id"`
	Name        string       `json:"name"`
	NickName    string       `json:"nickName"`
	Role        string       `json:"role"`
	Bat         string       `json:"bat"`
	Bowl        string       `json:"bowl"`
	DoBFormat   string       `json:"DoBFormat"`
	BirthPlace  string       `json:"birthPlace"`
	IntlTeam    string       `json:"intlTeam"`
	Image       string       `json:"image"`
	TeamNameIDs []TeamNameID `json:"teamNameIds"`
}

type TeamNameID struct {
	TeamID any `json:"teamId"`
}

// VenueDetail is the per-venue info response.
type VenueDetail struct {
	Ground      string `json:"ground"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Timezone    string `json:"timezone"`
	Established any    `json:"established"`
	Capacity    any    `json:"capacity"`
	KnownAs     any    `json:"knownAs"`
	Ends        string `json:"ends"`
	HomeTeam    string `json:"homeTeam"`
	Floodlights bool   `json:"floodlights"`
	ImageURL    string `json:"imageUrl"`
}

// StatsMatrix is the career batting/bowling response: a metrics-by-format
// table where headers[0] is "ROWHEADER" and the rest are format names, and
// each row's values[0] is the metric name.
type StatsMatrix struct {
	Headers []string   `json:"headers"`
	Values  []StatsRow `json:"values"`
}

type StatsRow struct {
	Values []string `json:"values"`
}

// Scorecard is the per-match scorecard response.
type Scorecard struct {
	MatchID   any       `json:"matchId"`
	Scorecard []Innings `json:"scorecard"`
}

type Innings struct {
	InningsID any       `json:"inningsid"`
	Batsman   []Batsman `json:"batsman"`
	Bowler    []Bowler  `json:"bowler"`
	Fow       *FowBlock `json:"fow"`
}

type Batsman struct {
	ID         any    `json:"id"`
	Name       string `json:"name"`
	Runs       any    `json:"runs"`
	Balls      any    `json:"balls"`
	Fours      any    `json:"fours"`
	Sixes      any    `json:"sixes"`
	StrikeRate any    `json:"strkrate"`
	OutDec     string `json:"outdec"`
}

type Bowler struct {
	ID      any    `json:"id"`
	Name    string `json:"name"`
	Overs   any    `json:"overs"`
	Maidens any    `json:"maidens"`
	Runs    any    `json:"runs"`
	Wickets any    `json:"wickets"`
	Economy any    `json:"economy"`
	Balls   any    `json:"balls"`
}

type FowBlock struct {
	Fow []FowEntry `json:"fow"`
}

type FowEntry struct {
	BatsmanID   any `json:"batsmanid"`
	BatsmanName any `json:"batsmanname"`
	Runs        any `json:"runs"`
	OverNumber  any `json:"overnbr"`
}
