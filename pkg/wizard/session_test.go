package wizard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetform/pkg/adapters/memory"
	redisadapter "fleetform/pkg/adapters/redis"
	"fleetform/pkg/domain"
)

// script joins answers into the line stream an operator would type.
func script(answers ...string) *strings.Reader {
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

func TestSessionRun_EndToEnd(t *testing.T) {
	var out bytes.Buffer
	store := memory.NewStore()
	prompter := NewPrompter(script(
		"Jean",  // operator name
		"Trusk", // company
		"1",     // employee count
		"Marie", // 1st employee
		"2",     // truck count
		"10",    // 1st volume
		"20.5",  // 2nd volume
		"Van",   // truck type
		"yes",   // confirm recap
	), &out)

	session := NewSession(store, prompter)
	require.NoError(t, session.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "1 employee:", "singular wording for one employee")
	assert.NotContains(t, output, "1 employees")
	assert.Contains(t, output, "Marie")
	assert.Contains(t, output, "2 trucks:", "plural wording for two trucks")
	assert.Contains(t, output, "10 m3")
	assert.Contains(t, output, "20.5 m3")
	assert.Contains(t, output, "truck type: Van")
	assert.Contains(t, output, "1st employee")
	assert.Contains(t, output, "2nd truck")
}

func TestSessionRun_InvalidInputRetries(t *testing.T) {
	var out bytes.Buffer
	store := memory.NewStore()
	prompter := NewPrompter(script(
		"42",   // user name: pure number, rejected
		"",     // blank, rejected
		"Jean", // accepted
		"Trusk",
		"zero", // employee count: not a number
		"0",    // not positive
		"2.5",  // not integral
		"1",    // accepted
		"Marie",
		"1",
		"-3",   // volume: negative
		"12.5", // accepted
		"Van",
		"yes",
	), &out)

	session := NewSession(store, prompter)
	require.NoError(t, session.Run(context.Background()))

	assert.Equal(t, 6, strings.Count(out.String(), retryMessage))
	assert.Contains(t, out.String(), "12.5 m3")
}

func TestSessionRun_RejectRestartsFresh(t *testing.T) {
	var out bytes.Buffer
	store := memory.NewStore()

	firstRound := []string{"Jean", "Trusk", "1", "Marie", "1", "10", "Van", "no"}
	secondRound := []string{"Paul", "Wheely", "1", "Anna", "1", "8", "Flatbed", "yes"}
	prompter := NewPrompter(script(append(firstRound, secondRound...)...), &out)

	session := NewSession(store, prompter)
	require.NoError(t, session.Run(context.Background()))

	output := out.String()
	// The reject restarted the whole sequence from a blank store.
	assert.Equal(t, 2, strings.Count(output, "What is your name?"))
	assert.Contains(t, output, "Anna")
	assert.Contains(t, output, "Flatbed")

	// Nothing survives the final flush either.
	val, err := store.GetField(context.Background(), domain.KeyUserName)
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestSessionRun_FlushHappensBeforeRestart(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	// First process: operator fills everything and rejects the recap.
	var out1 bytes.Buffer
	p1 := NewPrompter(script("Jean", "Trusk", "1", "Marie", "1", "10", "Van", "no"), &out1)
	session1 := NewSession(store, p1)

	// Input runs dry right after the reject, so the restarted round
	// fails on its first prompt. The store must already be empty.
	err := session1.Run(ctx)
	require.ErrorIs(t, err, domain.ErrInputClosed)

	for _, key := range []string{
		domain.KeyUserName, domain.KeyCompanyName, domain.KeyEmployeeCount,
		domain.KeyTruckCount, domain.KeyTruckType,
	} {
		val, err := store.GetField(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, val, "key %s should be flushed before the restart", key)
	}
	n, err := store.ListLen(ctx, domain.KeyEmployeeNames)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func newSeededRedisStore(t *testing.T) *redisadapter.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redisadapter.NewFromClient(client)
}

func TestSessionRun_ResumesFromStoredAnswers(t *testing.T) {
	store := newSeededRedisStore(t)
	ctx := context.Background()

	// A previous run answered everything up to the third employee name.
	require.NoError(t, store.SetField(ctx, domain.KeyUserName, "Jean"))
	require.NoError(t, store.SetField(ctx, domain.KeyCompanyName, "Trusk"))
	require.NoError(t, store.SetField(ctx, domain.KeyEmployeeCount, "3"))
	for _, name := range []string{"Marie", "Paul"} {
		_, err := store.AppendItem(ctx, domain.KeyEmployeeNames, name)
		require.NoError(t, err)
	}

	var out bytes.Buffer
	prompter := NewPrompter(script(
		"Anna", // 3rd employee — the only name still missing
		"1",    // truck count
		"10",   // volume
		"Van",  // truck type
		"yes",
	), &out)

	session := NewSession(store, prompter)
	require.NoError(t, session.Run(ctx))

	output := out.String()
	// Already-answered questions were skipped.
	assert.NotContains(t, output, "What is your name?")
	assert.NotContains(t, output, "1st employee")
	assert.NotContains(t, output, "2nd employee")
	assert.Contains(t, output, "3rd employee")

	// Stored names are reused unchanged in the recap.
	assert.Contains(t, output, "Marie")
	assert.Contains(t, output, "Paul")
	assert.Contains(t, output, "Anna")
	assert.Contains(t, output, "3 employees:")
}

func TestCollectList_ExactTargetAndOrder(t *testing.T) {
	var out bytes.Buffer
	store := memory.NewStore()
	session := NewSession(store, NewPrompter(script("alpha", "beta", "gamma"), &out))

	items, err := session.collectList(context.Background(), "names", 3,
		func(ordinal int) string { return EnglishOrdinal(ordinal) },
		domain.IsNonEmptyText)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, items)
}

func TestCollectList_TrimsWhenTargetShrinks(t *testing.T) {
	var out bytes.Buffer
	store := memory.NewStore()
	ctx := context.Background()

	for _, v := range []string{"10", "20", "30"} {
		_, err := store.AppendItem(ctx, domain.KeyTruckVolumes, v)
		require.NoError(t, err)
	}

	// Empty input: any prompt would fail, proving nothing is asked.
	session := NewSession(store, NewPrompter(strings.NewReader(""), &out))

	items, err := session.collectList(ctx, domain.KeyTruckVolumes, 2,
		func(ordinal int) string { return EnglishOrdinal(ordinal) },
		domain.IsPositiveVolume)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20"}, items)

	n, err := store.ListLen(ctx, domain.KeyTruckVolumes)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
