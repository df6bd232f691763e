package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/questlog/internal/domain"
	"github.com/alexanderramin/questlog/internal/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSession_PlainReply(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{reply: "Tell me more about that goal."}
	session := NewChatSession(client, tr)
	ctx := context.Background()

	result, ok := session.Submit(ctx, "I want to get fit")
	require.True(t, ok)
	assert.Equal(t, "Tell me more about that goal.", result.Reply)
	assert.Nil(t, result.Proposal)
	assert.Equal(t, StateIdle, session.State())

	chat := tr.Chat()
	require.Len(t, chat, 3) // greeting, user, bot
	assert.Equal(t, domain.SenderUser, chat[1].Sender)
	assert.Equal(t, "I want to get fit", chat[1].Text)
	assert.Equal(t, domain.SenderBot, chat[2].Sender)
}

func TestChatSession_ProposalFlow_Accept(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{reply: `Love it! {"type":"quest","title":"Run 5k","description":"Morning run","xp":30,"tags":["Fitness "]}`}
	session := NewChatSession(client, tr)
	ctx := context.Background()

	result, ok := session.Submit(ctx, "I want to run more")
	require.True(t, ok)
	assert.Equal(t, "Love it!", result.Reply)
	require.NotNil(t, result.Proposal)
	assert.Equal(t, StateProposalPending, session.State())

	q, accepted := session.Accept(ctx)
	require.True(t, accepted)
	assert.Equal(t, "Run 5k", q.Title)
	assert.Equal(t, []string{"fitness"}, q.Tags, "tags normalized on accept")
	assert.Equal(t, StateIdle, session.State())
	assert.Nil(t, session.Pending())

	quests := tr.Quests()
	require.Len(t, quests, 1)
	assert.Equal(t, domain.QuestActive, quests[0].Status)

	last := tr.Chat()[len(tr.Chat())-1]
	assert.Equal(t, domain.SenderBot, last.Sender)
	assert.Contains(t, last.Text, `"Run 5k"`)
}

func TestChatSession_ProposalFlow_Decline(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{reply: `Go for it! {"type":"quest","title":"t","description":"d","xp":10}`}
	session := NewChatSession(client, tr)
	ctx := context.Background()

	_, ok := session.Submit(ctx, "maybe something small")
	require.True(t, ok)
	require.Equal(t, StateProposalPending, session.State())

	assert.True(t, session.Decline(ctx))
	assert.Equal(t, StateIdle, session.State())
	assert.Empty(t, tr.Quests(), "declined draft is discarded")

	last := tr.Chat()[len(tr.Chat())-1]
	assert.Equal(t, declineMessage, last.Text)
}

func TestChatSession_SubmitBlockedWhileProposalPending(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{reply: `Yes! {"type":"quest","title":"t","description":"d","xp":10}`}
	session := NewChatSession(client, tr)
	ctx := context.Background()

	_, ok := session.Submit(ctx, "first")
	require.True(t, ok)
	require.Equal(t, StateProposalPending, session.State())

	transcriptLen := len(tr.Chat())
	callsBefore := client.calls

	_, ok = session.Submit(ctx, "second attempt")
	assert.False(t, ok, "input while a proposal is pending is a no-op")
	assert.Len(t, tr.Chat(), transcriptLen, "no user message appended")
	assert.Equal(t, callsBefore, client.calls, "no oracle request issued")
}

func TestChatSession_EmptyInputIgnored(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{reply: "hi"}
	session := NewChatSession(client, tr)

	_, ok := session.Submit(context.Background(), "   ")
	assert.False(t, ok)
	assert.Zero(t, client.calls)
	assert.Len(t, tr.Chat(), 1)
}

func TestChatSession_OracleFailureAppendsApology(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{err: oracle.ErrUnavailable}
	session := NewChatSession(client, tr)
	ctx := context.Background()

	result, ok := session.Submit(ctx, "hello?")
	require.True(t, ok)
	assert.Equal(t, apologyMessage, result.Reply)
	assert.Equal(t, StateIdle, session.State(), "failure returns to idle, no retry")

	chat := tr.Chat()
	require.Len(t, chat, 3)
	assert.Equal(t, "hello?", chat[1].Text, "user message stays appended (optimistic)")
	assert.Equal(t, apologyMessage, chat[2].Text)

	// The session keeps working after a failure.
	client.err = nil
	client.reply = "Back online."
	result, ok = session.Submit(ctx, "still there?")
	require.True(t, ok)
	assert.Equal(t, "Back online.", result.Reply)
}

func TestChatSession_MissingCredentialFailsClosed(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{err: oracle.ErrMissingCredential}
	session := NewChatSession(client, tr)

	result, ok := session.Submit(context.Background(), "hi")
	require.True(t, ok)
	assert.Equal(t, apologyMessage, result.Reply)
	assert.Equal(t, StateIdle, session.State())
}

func TestChatSession_AcceptWithoutPending(t *testing.T) {
	tr := newTestTracker(t)
	session := NewChatSession(&stubOracle{}, tr)

	_, ok := session.Accept(context.Background())
	assert.False(t, ok)
	assert.False(t, session.Decline(context.Background()))
}

func TestChatSession_PromptCarriesHistory(t *testing.T) {
	tr := newTestTracker(t)
	client := &stubOracle{reply: "ok"}
	session := NewChatSession(client, tr)
	ctx := context.Background()

	_, _ = session.Submit(ctx, "I want to learn Go")
	_, _ = session.Submit(ctx, "where do I start?")

	assert.Contains(t, client.lastReq.UserPrompt, "I want to learn Go")
	assert.Contains(t, client.lastReq.UserPrompt, "User: where do I start?")
	assert.Equal(t, oracle.TaskChat, client.lastReq.Task)
	assert.Equal(t, chatSystemPrompt, client.lastReq.SystemPrompt)
}
