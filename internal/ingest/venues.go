package ingest

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/sightscreen/cricdata/internal/cricapi"
)

const venueUpsert = `INSERT INTO venues
	(venue_id, name, city, country, timezone, established, capacity,
	 known_as, ends, home_team, floodlights, image_url)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (venue_id) DO UPDATE SET
		name = excluded.name,
		city = excluded.city,
		country = excluded.country,
		timezone = excluded.timezone,
		established = excluded.established,
		capacity = excluded.capacity,
		known_as = excluded.known_as,
		ends = excluded.ends,
		home_team = excluded.home_team,
		floodlights = excluded.floodlights,
		image_url = excluded.image_url`

// Venues loads cached venue detail files. The venue id lives only in the
// filename; the payload does not echo it back.
func (l *Loader) Venues() (Result, error) {
	res := Result{Family: "venues"}

	keys, err := l.cache.List("venue", "info")
	if err != nil {
		return res, fmt.Errorf("list cached venues: %w", err)
	}

	tx, err := l.db.Beginx()
	if err != nil {
		return res, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range keys {
		vid, err := strconv.ParseInt(key.ID, 10, 64)
		if err != nil {
			res.skip(key.ID, "no venue id in filename")
			continue
		}
		data, err := l.cache.Read(key)
		if err != nil {
			res.skip(key.ID, "unreadable file")
			continue
		}
		v, err := cricapi.DecodeVenueDetail(data)
		if err != nil {
			res.skip(key.ID, "unparsable payload")
			continue
		}

		err = exec(tx, venueUpsert,
			vid, v.Ground, nz(v.City), nz(v.Country), nz(v.Timezone),
			cricapi.AsString(v.Established), cricapi.AsString(v.Capacity),
			cricapi.AsString(v.KnownAs), nz(v.Ends), nz(v.HomeTeam),
			v.Floodlights, nz(v.ImageURL))
		if err != nil {
			return res, fmt.Errorf("upsert venue %d: %w", vid, err)
		}
		res.Succeeded++
	}

	if err := tx.Commit(); err != nil {
		return res, err
	}
	slog.Info("Venues loaded", "summary", res.Summary())
	return res, nil
}
