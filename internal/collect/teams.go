package collect

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/cricapi"
)

// Teams fetches the international team listing plus every team's
// schedule, results and squad.
func (c *Collector) Teams(ctx context.Context) Report {
	var rep Report

	data := c.fetch(ctx, "teams/v1/international", cache.TeamsList(), &rep)
	if len(data) == 0 {
		return rep
	}
	listing, err := cricapi.DecodeTeamListing(data)
	if err != nil {
		slog.Warn("Skipping unparsable team listing", "error", err)
		return rep
	}

	teams := 0
	for _, team := range listing.List {
		tid := cricapi.AsInt(team.TeamID)
		if tid == nil {
			// Section header rows carry a name but no id.
			continue
		}
		id := int(*tid)
		c.fetch(ctx, fmt.Sprintf("teams/v1/%d/schedule", id), cache.TeamSchedule(id), &rep)
		c.fetch(ctx, fmt.Sprintf("teams/v1/%d/results", id), cache.TeamResults(id), &rep)
		c.fetch(ctx, fmt.Sprintf("teams/v1/%d/players", id), cache.TeamPlayers(id), &rep)
		teams++
	}

	slog.Info("Team collection done", "teams", teams, "report", rep.String())
	return rep
}

// TeamPlayers fetches full per-player data (profile, career, batting and
// bowling stats) for squads of teams whose country is on the allow-list.
// The filter bounds API cost, nothing more.
func (c *Collector) TeamPlayers(ctx context.Context) Report {
	var rep Report

	data := c.fetch(ctx, "teams/v1/international", cache.TeamsList(), &rep)
	if len(data) == 0 {
		return rep
	}
	listing, err := cricapi.DecodeTeamListing(data)
	if err != nil {
		slog.Warn("Skipping unparsable team listing", "error", err)
		return rep
	}

	seen := map[int]bool{}
	for _, team := range listing.List {
		tid := cricapi.AsInt(team.TeamID)
		if tid == nil {
			continue
		}
		country := team.CountryName
		if country == "" {
			country = team.TeamName
		}
		if !slices.Contains(c.cfg.AllowedCountries, country) {
			continue
		}

		id := int(*tid)
		squadData := c.fetch(ctx, fmt.Sprintf("teams/v1/%d/players", id), cache.TeamPlayers(id), &rep)
		if len(squadData) == 0 {
			continue
		}
		squad, err := cricapi.DecodeTeamPlayers(squadData)
		if err != nil {
			slog.Warn("Skipping unparsable squad", "team", id, "error", err)
			continue
		}
		for _, p := range squad.Player {
			pid := cricapi.AsInt(p.ID)
			if pid == nil || seen[int(*pid)] {
				continue
			}
			seen[int(*pid)] = true
			c.fetchPlayer(ctx, int(*pid), &rep)
		}
	}

	slog.Info("Team player collection done", "players", len(seen), "report", rep.String())
	return rep
}
