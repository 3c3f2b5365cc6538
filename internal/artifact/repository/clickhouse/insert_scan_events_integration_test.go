package clickhouse

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

func newEvent(kind model.ScanEventKind, cid string, at time.Time) model.ScanEvent {
	return model.ScanEvent{
		Kind:        kind,
		CID:         cid,
		TxHash:      common.HexToHash("0x01"),
		TaskID:      common.HexToHash("0x7a5c"),
		BlockNumber: 42,
		Gateway:     "https://gw.example/ipfs",
		EventTime:   at,
	}
}

func (s *RepositorySuite) TestInsertScanEvents() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	events := []model.ScanEvent{
		newEvent(model.EventDiscovered, "QmA", now),
		newEvent(model.EventRejected, "QmB", now),
		newEvent(model.EventRejected, "QmC", now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_scan_events", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertScanEvents(s.testCtx, events))
	s.Equal(uint64(len(events)), s.countRows("artifact_scan_events"))
}

func (s *RepositorySuite) TestScanEventCounts() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	events := []model.ScanEvent{
		newEvent(model.EventDiscovered, "QmA", now.Add(-48*time.Hour)),
		newEvent(model.EventDiscovered, "QmB", now),
		newEvent(model.EventInaccessible, "QmC", now),
		newEvent(model.EventInaccessible, "QmD", now),
	}

	s.metrics.EXPECT().Observe("insert_scan_events", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("scan_event_counts", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertScanEvents(s.testCtx, events))

	counts, err := s.repo.ScanEventCounts(s.testCtx, now.Add(-time.Hour))
	s.Require().NoError(err)
	s.Equal(map[model.ScanEventKind]uint64{
		model.EventDiscovered:   1,
		model.EventInaccessible: 2,
	}, counts)
}
