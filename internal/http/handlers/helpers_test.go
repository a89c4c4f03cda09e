package handlers

import (
	"github.com/preston-bernstein/nfl-data-service/internal/app/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/app/madden"
	"github.com/preston-bernstein/nfl-data-service/internal/app/pff"
	"github.com/preston-bernstein/nfl-data-service/internal/app/players"
	"github.com/preston-bernstein/nfl-data-service/internal/app/rankings"
	domaininjuries "github.com/preston-bernstein/nfl-data-service/internal/domain/injuries"
	domainrankings "github.com/preston-bernstein/nfl-data-service/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
	"github.com/preston-bernstein/nfl-data-service/internal/teststubs"
	"github.com/preston-bernstein/nfl-data-service/internal/testutil"
)

type readers struct {
	injuries *teststubs.StubReader[domaininjuries.TeamInjuries]
	madden   *teststubs.StubReader[ratings.MaddenRating]
	pff      *teststubs.StubReader[ratings.PFFRating]
	rankings *teststubs.StubReader[domainrankings.TeamRanking]
}

func newReaders() readers {
	return readers{
		injuries: &teststubs.StubReader[domaininjuries.TeamInjuries]{Items: []domaininjuries.TeamInjuries{
			testutil.SampleInjuryReport("Seattle Seahawks",
				domaininjuries.Injury{Player: "DK Metcalf", Position: "WR", Status: "Questionable"}),
			testutil.SampleInjuryReport("Detroit Lions"),
		}},
		madden: &teststubs.StubReader[ratings.MaddenRating]{Items: []ratings.MaddenRating{
			testutil.SampleMadden("Devon Witherspoon", "CB", "Seattle Seahawks", 88),
			testutil.SampleMadden("Patrick Mahomes", "QB", "Kansas City Chiefs", 99),
		}},
		pff: &teststubs.StubReader[ratings.PFFRating]{Items: []ratings.PFFRating{
			testutil.SamplePFF("Patrick Mahomes", "QB", "KC", 5, 360),
			testutil.SamplePFF("Josh Allen", "QB", "BUF", 2, 380),
		}},
		rankings: &teststubs.StubReader[domainrankings.TeamRanking]{Items: []domainrankings.TeamRanking{
			testutil.SampleRanking(1, "Philadelphia Eagles", 86.5),
			testutil.SampleRanking(2, "Detroit Lions", 84.1),
		}},
	}
}

func (r readers) services() Services {
	return Services{
		Injuries: injuries.NewService(r.injuries),
		Madden:   madden.NewService(r.madden),
		PFF:      pff.NewService(r.pff),
		Rankings: rankings.NewService(r.rankings),
		Players:  players.NewService(r.madden, r.pff),
	}
}

func newTestHandler() (*Handler, readers) {
	r := newReaders()
	return NewHandler(r.services(), nil, nil), r
}
