// Package pffcsv loads Pro Football Focus player rows from a CSV export.
package pffcsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/logging"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

// Column aliases, most specific first. The first alias present in the header wins.
var (
	nameColumns            = []string{"Full Name", "name", "player", "player_name"}
	positionColumns        = []string{"Position", "position", "pos"}
	teamColumns            = []string{"Team Abbreviation", "team", "team_name"}
	overallRankColumns     = []string{"Overall Rank", "overall", "rating", "grade"}
	positionRankColumns    = []string{"Position Rank", "rank", "position_rank"}
	byeWeekColumns         = []string{"Bye Week", "bye"}
	adpColumns             = []string{"ADP", "adp"}
	projectedPointsColumns = []string{"Projected Points", "projected_points", "points"}
	auctionValueColumns    = []string{"Auction Value", "auction_value", "value"}
)

// Loader reads the export from a path on every Fetch.
type Loader struct {
	path   string
	logger *slog.Logger
}

// New constructs a loader for the CSV at path.
func New(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Fetch parses the CSV. A missing file is logged and yields no rows.
func (l *Loader) Fetch(ctx context.Context) ([]ratings.PFFRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx, l.logger)

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Error(logger, "pff ratings file not found", err, slog.String("path", l.path))
			return []ratings.PFFRating{}, nil
		}
		return nil, &providers.FetchError{Source: providers.SourcePFF, Message: "open pff csv", Err: err}
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, &providers.FetchError{Source: providers.SourcePFF, Message: "parse pff csv", Err: err}
	}
	logging.Info(logger, "loaded pff ratings", slog.String("path", l.path), slog.Int(logging.FieldCount, len(rows)))
	return rows, nil
}

// Parse decodes a PFF export. Blank lines and a leading preamble row without
// any recognised column are skipped.
func Parse(r io.Reader) ([]ratings.PFFRating, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := readHeader(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []ratings.PFFRating{}, nil
		}
		return nil, err
	}
	cols := newColumns(header)

	out := make([]ratings.PFFRating, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		out = append(out, cols.rating(record))
	}
	return out, nil
}

func readHeader(reader *csv.Reader) ([]string, error) {
	for attempt := 0; attempt < 2; attempt++ {
		record, err := reader.Read()
		if err != nil {
			return nil, err
		}
		if newColumns(record).known() {
			return record, nil
		}
	}
	return nil, errors.New("pff csv: no recognised header row")
}

type columns map[string]int

func newColumns(header []string) columns {
	cols := make(columns, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func (c columns) known() bool {
	_, ok := c.index(nameColumns)
	return ok
}

func (c columns) index(aliases []string) (int, bool) {
	for _, alias := range aliases {
		if i, ok := c[alias]; ok {
			return i, true
		}
	}
	return 0, false
}

func (c columns) value(record []string, aliases []string) (string, bool) {
	i, ok := c.index(aliases)
	if !ok || i >= len(record) {
		return "", false
	}
	v := strings.TrimSpace(record[i])
	switch strings.ToLower(v) {
	case "", "null", "n/a", "nan":
		return "", false
	}
	return v, true
}

func (c columns) number(record []string, aliases []string) *float64 {
	raw, ok := c.value(record, aliases)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", ""), 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

func (c columns) rating(record []string) ratings.PFFRating {
	name, _ := c.value(record, nameColumns)
	position, _ := c.value(record, positionColumns)
	team, _ := c.value(record, teamColumns)

	var bye *int
	if v := c.number(record, byeWeekColumns); v != nil {
		week := int(*v)
		bye = &week
	}

	return ratings.PFFRating{
		Name:            name,
		Position:        strings.ToUpper(position),
		Team:            team,
		OverallRank:     c.number(record, overallRankColumns),
		PositionRank:    c.number(record, positionRankColumns),
		ByeWeek:         bye,
		ADP:             c.number(record, adpColumns),
		ProjectedPoints: c.number(record, projectedPointsColumns),
		AuctionValue:    c.number(record, auctionValueColumns),
		Source:          ratings.SourcePFF,
	}
}
