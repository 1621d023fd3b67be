package repository

import (
	"testing"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRecordAndHasVoted(t *testing.T) {
	repos := newTestRepositories(t)

	voted, err := repos.Vote().HasVoted(1, "v1", 0)
	require.NoError(t, err)
	require.False(t, voted)

	err = repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 0, Upvote: true})
	require.NoError(t, err)

	voted, err = repos.Vote().HasVoted(1, "v1", 0)
	require.NoError(t, err)
	require.True(t, voted)
}

func TestRecordRejectsDuplicateTuple(t *testing.T) {
	repos := newTestRepositories(t)

	err := repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 0, Upvote: true})
	require.NoError(t, err)

	// Same tuple with the opposite direction is still a duplicate.
	err = repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 0, Upvote: false})
	require.ErrorIs(t, err, dto.ErrAlreadyVoted)
}

func TestRecordDuplicateInsertIsConflictNotInternal(t *testing.T) {
	repos := newTestRepositories(t)

	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 0, Upvote: true}))

	// The duplicate fails on the unique index itself; it must surface as
	// the conflict class, not as an internal failure.
	err := repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 0, Upvote: true})
	require.ErrorIs(t, err, dto.ErrAlreadyVoted)
	require.NotErrorIs(t, err, dto.ErrInternalFailure)

	voted, err := repos.Vote().VotesByVoter(1, "v1")
	require.NoError(t, err)
	require.Len(t, voted, 1)
}

func TestRecordDistinguishesTuples(t *testing.T) {
	repos := newTestRepositories(t)

	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 0, Upvote: true}))
	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 1, Upvote: true}))
	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v2", Position: 0, Upvote: false}))
	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 2, VoterID: "v1", Position: 0, Upvote: true}))
}

func TestVotesByVoter(t *testing.T) {
	repos := newTestRepositories(t)

	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 0, Upvote: true}))
	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v1", Position: 2, Upvote: false}))
	require.NoError(t, repos.Vote().Record(model.Vote{EventID: 1, VoterID: "v2", Position: 1, Upvote: true}))

	voted, err := repos.Vote().VotesByVoter(1, "v1")
	require.NoError(t, err)
	require.Equal(t, map[int]bool{0: true, 2: false}, voted)

	voted, err = repos.Vote().VotesByVoter(1, "nobody")
	require.NoError(t, err)
	require.Empty(t, voted)
}
