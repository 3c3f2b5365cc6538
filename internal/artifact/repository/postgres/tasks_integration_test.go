package postgres

import (
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

func (s *RepositorySuite) TestSaveTaskFirstWins() {
	task := newTask("0x7a5c")

	created, err := s.repo.SaveTask(s.testCtx, task)
	s.Require().NoError(err)
	s.True(created)

	other := newTask("0x7a5c")
	other.Prompt = "something else"
	created, err = s.repo.SaveTask(s.testCtx, other)
	s.Require().NoError(err)
	s.False(created)

	got, err := s.repo.Task(s.testCtx, task.ID)
	s.Require().NoError(err)
	s.Equal(task.Prompt, got.Prompt)
	s.Equal(task.Submitter, got.Submitter)
	s.Equal(task.Model, got.Model)
	s.Equal(0, task.Fee.Cmp(got.Fee), "fee %s != %s", task.Fee, got.Fee)
	s.Equal(task.BlockNumber, got.BlockNumber)
	s.Equal(task.Source, got.Source)

	var want, have map[string]any
	s.Require().NoError(json.Unmarshal(task.Params, &want))
	s.Require().NoError(json.Unmarshal(got.Params, &have))
	s.Equal(want, have)
}

func (s *RepositorySuite) TestTaskNotFound() {
	_, err := s.repo.Task(s.testCtx, common.HexToHash("0xdead"))
	s.True(errors.Is(err, ErrNotFound))
}
