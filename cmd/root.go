// Package cmd wires configuration, the HTTP client, the cache and the
// database into the cricdata command line interface.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/collect"
	"github.com/sightscreen/cricdata/internal/config"
	"github.com/sightscreen/cricdata/internal/datastore"
	"github.com/sightscreen/cricdata/internal/fetch"
	"github.com/sightscreen/cricdata/internal/ingest"
	"github.com/sightscreen/cricdata/internal/warnlog"
)

// CLI is the complete command structure for the cricdata application.
type CLI struct {
	Fetch FetchCmd `cmd:"" help:"Fetch API responses into the local JSON cache"`
	Load  LoadCmd  `cmd:"" help:"Load cached JSON into the relational database"`
}

// FetchCmd selects which entity families to fetch. Families already on
// disk are skipped; only missing files cost API quota.
type FetchCmd struct {
	All         bool `help:"Fetch every family"`
	Matches     bool `help:"Fetch live/upcoming/recent listings and match details"`
	Series      bool `help:"Fetch international series and their matches"`
	Teams       bool `help:"Fetch teams with schedules, results and squads"`
	TeamPlayers bool `help:"Fetch full player data for squads of allow-listed countries"`
	Venues      bool `help:"Fetch venue details for venues seen in cached matches"`
	PlayerStats bool `help:"Fetch stats for players found in cached match rosters"`
	Rankings    bool `help:"Fetch ICC rankings and top-stats listings"`
	Scorecards  bool `help:"Fetch scorecards for every cached match"`
	Scorecard   int  `help:"Fetch a single scorecard by match id"`
}

// LoadCmd selects which entity families to load from the cache.
type LoadCmd struct {
	All          bool `help:"Load every family"`
	Teams        bool `help:"Load the team index"`
	Players      bool `help:"Load player profiles and team links"`
	Venues       bool `help:"Load venue details"`
	Series       bool `help:"Load series and their matches"`
	MatchDetails bool `help:"Load results, tosses, officials, awards and rosters"`
	PlayerStats  bool `help:"Load career batting and bowling stats"`
	Scorecards   bool `help:"Load scorecard batting, bowling and fall-of-wicket lines"`
}

// Execute runs the Kong-based CLI.
func Execute() {
	initLogging()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cricdata"),
		kong.Description("Fetch cricket API data into a JSON cache and load it into a database."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func (f *FetchCmd) anySelected() bool {
	return f.All || f.Matches || f.Series || f.Teams || f.TeamPlayers ||
		f.Venues || f.PlayerStats || f.Rankings || f.Scorecards || f.Scorecard > 0
}

func (f *FetchCmd) Run() error {
	if !f.anySelected() {
		return fmt.Errorf("nothing to fetch: pass --all or a family flag")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, err := cache.NewStore(cfg.CacheDir)
	if err != nil {
		return err
	}
	warnings, err := warnlog.Open(cfg.WarningsLog)
	if err != nil {
		return err
	}
	defer func() { _ = warnings.Close() }()

	client := fetch.New(cfg, store, warnings)
	collector := collect.New(cfg, store, client)
	ctx := context.Background()

	if f.Scorecard > 0 {
		var rep collect.Report
		collector.Scorecard(ctx, f.Scorecard, &rep)
		slog.Info("Scorecard fetch done", "match", f.Scorecard, "report", rep.String())
		return nil
	}

	var total collect.Report
	venueIDs := map[int]bool{}

	if f.All || f.Matches {
		_, found, rep := collector.Matches(ctx)
		for vid := range found {
			venueIDs[vid] = true
		}
		total.Add(rep)
	}
	if f.All || f.Series {
		_, found, rep := collector.Series(ctx)
		for vid := range found {
			venueIDs[vid] = true
		}
		total.Add(rep)
	}
	if f.All || f.Teams {
		total.Add(collector.Teams(ctx))
	}
	if f.All || f.TeamPlayers {
		total.Add(collector.TeamPlayers(ctx))
	}
	if f.All || f.Venues {
		if len(venueIDs) == 0 {
			venueIDs = collector.CachedVenueIDs()
		}
		total.Add(collector.Venues(ctx, venueIDs))
	}
	if f.All || f.PlayerStats {
		total.Add(collector.PlayerStats(ctx))
	}
	if f.All || f.Rankings {
		total.Add(collector.Rankings(ctx))
	}
	if f.All || f.Scorecards {
		total.Add(collector.Scorecards(ctx))
	}

	slog.Info("Fetch run done", "report", total.String())
	return nil
}

func (l *LoadCmd) anySelected() bool {
	return l.All || l.Teams || l.Players || l.Venues || l.Series ||
		l.MatchDetails || l.PlayerStats || l.Scorecards
}

func (l *LoadCmd) Run() error {
	if !l.anySelected() {
		return fmt.Errorf("nothing to load: pass --all or a family flag")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, err := cache.NewStore(cfg.CacheDir)
	if err != nil {
		return err
	}
	db, err := datastore.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	if err := db.CreateSchema(); err != nil {
		return err
	}

	loader := ingest.New(store, db)

	// Reference entities load before the facts that point at them.
	families := []struct {
		enabled bool
		load    func() (ingest.Result, error)
	}{
		{l.All || l.Teams, loader.Teams},
		{l.All || l.Players, loader.Players},
		{l.All || l.Venues, loader.Venues},
		{l.All || l.Series, loader.SeriesAndMatches},
		{l.All || l.MatchDetails, loader.MatchDetails},
		{l.All || l.PlayerStats, loader.BattingStats},
		{l.All || l.PlayerStats, loader.BowlingStats},
		{l.All || l.Scorecards, loader.Scorecards},
	}
	for _, f := range families {
		if !f.enabled {
			continue
		}
		res, err := f.load()
		if err != nil {
			return err
		}
		for _, s := range res.Skips {
			slog.Debug("Record skipped", "family", res.Family, "id", s.ID, "reason", s.Reason)
		}
	}
	return nil
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
