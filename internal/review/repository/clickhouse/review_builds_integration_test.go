package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

func (s *RepositorySuite) TestInsertReviewBuilds() {
	builtAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	records := []model.BuildRecord{
		{
			Network:        model.Mainnet,
			Classification: "transfer",
			Status:         model.BuildSuccess,
			Sections:       []string{"withdrawals", "deposits"},
			Transfers:      2,
			Guarantees:     1,
			Duration:       40 * time.Millisecond,
			BuiltAt:        builtAt,
		},
		{
			Network:        model.Mainnet,
			Classification: "general",
			Status:         model.BuildUnclassified,
			BuiltAt:        builtAt.Add(time.Second),
		},
	}

	s.metrics.EXPECT().Observe("insert_review_builds", "mainnet", gomock.Nil(), gomock.Any()).Times(1)
	s.Require().NoError(s.repo.InsertReviewBuilds(s.testCtx, records))

	rows, err := s.repo.conn.Query(s.testCtx, `
SELECT classification, status, sections, transfers, duration_ms
FROM review_builds
WHERE network = ?
ORDER BY built_at`, uint8(model.Mainnet))
	s.Require().NoError(err)
	defer func() {
		_ = rows.Close()
	}()

	type row struct {
		classification string
		status         string
		sections       []string
		transfers      uint32
		durationMs     uint64
	}
	var got []row
	for rows.Next() {
		var r row
		s.Require().NoError(rows.Scan(&r.classification, &r.status, &r.sections, &r.transfers, &r.durationMs))
		got = append(got, r)
	}
	s.Require().NoError(rows.Err())
	s.Require().Len(got, 2)
	s.Equal(row{"transfer", model.BuildSuccess, []string{"withdrawals", "deposits"}, 2, 40}, got[0])
	s.Equal("general", got[1].classification)
	s.Equal(model.BuildUnclassified, got[1].status)
	s.Empty(got[1].sections)
}
