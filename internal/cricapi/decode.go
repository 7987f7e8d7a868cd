package cricapi

import (
	"encoding/json"
	"fmt"
)

func decode[T any](kind string, data []byte) (*T, error) {
	var v T
	if len(data) == 0 {
		return nil, fmt.Errorf("decode %s: empty payload", kind)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return &v, nil
}

func DecodeMatchListing(data []byte) (*MatchListing, error) {
	return decode[MatchListing]("match listing", data)
}

func DecodeMatchCenter(data []byte) (*MatchCenter, error) {
	return decode[MatchCenter]("match center", data)
}

func DecodeSeriesListing(data []byte) (*SeriesListing, error) {
	return decode[SeriesListing]("series listing", data)
}

func DecodeSeriesDetail(data []byte) (*SeriesDetail, error) {
	return decode[SeriesDetail]("series detail", data)
}

func DecodeTeamListing(data []byte) (*TeamListing, error) {
	return decode[TeamListing]("team listing", data)
}

func DecodeTeamPlayers(data []byte) (*TeamPlayersListing, error) {
	return decode[TeamPlayersListing]("team players", data)
}

func DecodePlayerProfile(data []byte) (*PlayerProfile, error) {
	return decode[PlayerProfile]("player profile", data)
}

func DecodeVenueDetail(data []byte) (*VenueDetail, error) {
	return decode[VenueDetail]("venue detail", data)
}

func DecodeStatsMatrix(data []byte) (*StatsMatrix, error) {
	return decode[StatsMatrix]("stats matrix", data)
}

func DecodeScorecard(data []byte) (*Scorecard, error) {
	return decode[Scorecard]("scorecard", data)
}
