package postgres

import (
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

func (s *RepositorySuite) TestCreateArtifactIsIdempotent() {
	a := newArtifact("0x01", 0, testCID("a"))

	created, err := s.repo.CreateArtifact(s.testCtx, a)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.repo.CreateArtifact(s.testCtx, a)
	s.Require().NoError(err)
	s.False(created)

	s.Equal(int64(1), s.countRows("artifacts"))
}

func (s *RepositorySuite) TestCreateArtifactUniqueKeys() {
	first := newArtifact("0x01", 0, testCID("a"))
	sameCID := newArtifact("0x02", 0, testCID("a"))
	sameTx := newArtifact("0x01", 0, testCID("b"))
	nextInBatch := newArtifact("0x01", 1, testCID("c"))

	for _, tc := range []struct {
		artifact model.Artifact
		want     bool
	}{
		{first, true},
		{sameCID, false},
		{sameTx, false},
		{nextInBatch, true},
	} {
		created, err := s.repo.CreateArtifact(s.testCtx, tc.artifact)
		s.Require().NoError(err)
		s.Equal(tc.want, created, tc.artifact.CID)
	}
	s.Equal(int64(2), s.countRows("artifacts"))
}

func (s *RepositorySuite) TestCreateArtifactPromotesCandidate() {
	a := newArtifact("0x01", 0, testCID("d"))
	_, err := s.repo.SaveCandidate(s.testCtx, model.Candidate{
		Artifact:    a,
		LastReason:  "not_image",
		NextCheckAt: time.Now().Add(time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(int64(1), s.countRows("artifact_candidates"))

	created, err := s.repo.CreateArtifact(s.testCtx, a)
	s.Require().NoError(err)
	s.True(created)
	s.Equal(int64(0), s.countRows("artifact_candidates"))

	exists, err := s.repo.HasArtifact(s.testCtx, a.CID)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *RepositorySuite) TestHasArtifactMissing() {
	exists, err := s.repo.HasArtifact(s.testCtx, testCID("z"))
	s.Require().NoError(err)
	s.False(exists)
}
