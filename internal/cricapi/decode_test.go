package cricapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMatchListing(t *testing.T) {
	payload := []byte(`{
		"typeMatches": [{
			"matchType": "International",
			"seriesMatches": [
				{"seriesAdWrapper": {
					"seriesId": 9237,
					"seriesName": "The Ashes 2025",
					"matches": [{"matchInfo": {
						"matchId": 41881,
						"seriesId": 9237,
						"matchFormat": "TEST",
						"venueInfo": {"id": 31, "ground": "MCG"}
					}}]
				}},
				{"adDetail": {"name": "native"}}
			]
		}]
	}`)

	listing, err := DecodeMatchListing(payload)
	require.NoError(t, err)
	require.Len(t, listing.TypeMatches, 1)

	blocks := listing.TypeMatches[0].SeriesMatches
	require.Len(t, blocks, 2)
	require.NotNil(t, blocks[0].SeriesAdWrapper)
	assert.Nil(t, blocks[1].SeriesAdWrapper, "ad block has no series wrapper")

	info := blocks[0].SeriesAdWrapper.Matches[0].Info
	require.NotNil(t, info)
	assert.Equal(t, float64(41881), info.MatchID)
	assert.Equal(t, "TEST", info.MatchFormat)
	assert.Equal(t, float64(31), info.VenueInfo.ID)
}

func TestDecodeSeriesDetail(t *testing.T) {
	payload := []byte(`{
		"matchDetails": [
			{"matchDetailsMap": {
				"key": "SAT, DEC 13 2025",
				"match": [{"matchInfo": {"matchId": 1, "seriesId": 2}}]
			}},
			{"adDetail": {}}
		]
	}`)

	detail, err := DecodeSeriesDetail(payload)
	require.NoError(t, err)
	require.Len(t, detail.MatchDetails, 2)
	require.NotNil(t, detail.MatchDetails[0].MatchDetailsMap)
	assert.Nil(t, detail.MatchDetails[1].MatchDetailsMap)
	assert.Len(t, detail.MatchDetails[0].MatchDetailsMap.Match, 1)
}

func TestDecodePlayerProfileStringID(t *testing.T) {
	// Player profile ids arrive as strings, unlike match ids.
	payload := []byte(`{
		"id": "1413",
		"name": "Virat Kohli",
		"nickName": "Kohli",
		"role": "Batsman",
		"bat": "Right Handed Bat",
		"bowl": "Right-arm medium",
		"DoBFormat": "November 05, 1988",
		"intlTeam": "India",
		"teamNameIds": [{"teamId": "2"}, {"teamId": "59"}]
	}`)

	p, err := DecodePlayerProfile(payload)
	require.NoError(t, err)
	assert.Equal(t, "1413", p.ID)
	assert.Equal(t, "Virat Kohli", p.Name)
	assert.Len(t, p.TeamNameIDs, 2)
}

func TestDecodeStatsMatrix(t *testing.T) {
	payload := []byte(`{
		"headers": ["ROWHEADER", "Test", "ODI", "T20"],
		"values": [
			{"values": ["Matches", "113", "292", "115"]},
			{"values": ["Runs", "8848", "13848", "4008"]}
		]
	}`)

	m, err := DecodeStatsMatrix(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"ROWHEADER", "Test", "ODI", "T20"}, m.Headers)
	require.Len(t, m.Values, 2)
	assert.Equal(t, "Runs", m.Values[1].Values[0])
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := DecodeScorecard([]byte(`{"scorecard": "nope"}`))
	assert.Error(t, err)

	_, err = DecodeTeamListing(nil)
	assert.Error(t, err)

	_, err = DecodeMatchListing([]byte(`{`))
	assert.Error(t, err)
}
