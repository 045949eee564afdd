package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
)

// stubRecommender returns a fixed recommendation, optionally blocking until
// released so tests can hold a request in flight.
type stubRecommender struct {
	rec     Recommendation
	block   chan struct{}
	entered chan struct{}
}

func (s *stubRecommender) Recommend(ctx context.Context, userQuery, menu string) Recommendation {
	if s.entered != nil {
		close(s.entered)
	}
	if s.block != nil {
		<-s.block
	}
	return s.rec
}

func newChatFixture(t *testing.T, rec Recommender) (*ChatService, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	catr := seedSmallCatalog(t, db)
	svc := NewChatService(repository.NewChatRepository(db), catr, NewCatalogService(catr), rec, nil)
	return svc, db
}

func TestAskFiltersUnknownRecommendedIDs(t *testing.T) {
	stub := &stubRecommender{rec: Recommendation{
		Message:            "Try the tagine!",
		RecommendedItemIDs: []int64{999, 1, 42},
	}}
	svc, _ := newChatFixture(t, stub)

	reply, err := svc.Ask(context.Background(), 1, "something hearty")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAssistant, reply.Role)
	assert.Equal(t, "Try the tagine!", reply.Body)
	assert.Equal(t, []int64{1}, reply.RecommendedItemIDs)
}

func TestAskTruncatesRecommendations(t *testing.T) {
	stub := &stubRecommender{rec: Recommendation{
		Message:            "Everything!",
		RecommendedItemIDs: []int64{1, 2, 3, 4},
	}}
	svc, _ := newChatFixture(t, stub)

	reply, err := svc.Ask(context.Background(), 1, "surprise me")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, reply.RecommendedItemIDs)
}

func TestAskStoresBothTurnsInOrder(t *testing.T) {
	stub := &stubRecommender{rec: Recommendation{Message: "Fish it is."}}
	svc, _ := newChatFixture(t, stub)

	_, err := svc.Ask(context.Background(), 1, "fish?")
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), 1, "anything else?")
	require.NoError(t, err)

	history, err := svc.History(1)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, entity.RoleUser, history[0].Role)
	assert.Equal(t, "fish?", history[0].Body)
	assert.Equal(t, entity.RoleAssistant, history[1].Role)
	assert.Equal(t, entity.RoleUser, history[2].Role)
	assert.Equal(t, "anything else?", history[2].Body)
	assert.Equal(t, entity.RoleAssistant, history[3].Role)

	other, err := svc.History(2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAskRejectsConcurrentRequests(t *testing.T) {
	stub := &stubRecommender{
		rec:     Recommendation{Message: "Slow reply."},
		block:   make(chan struct{}),
		entered: make(chan struct{}),
	}
	svc, _ := newChatFixture(t, stub)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Ask(context.Background(), 1, "first")
		assert.NoError(t, err)
	}()

	select {
	case <-stub.entered:
	case <-time.After(time.Second):
		t.Fatal("first request never reached the recommender")
	}

	_, err := svc.Ask(context.Background(), 1, "second")
	assert.ErrorIs(t, err, ErrRequestPending)

	// A different session is not affected by user 1's in-flight request.
	quick := &stubRecommender{rec: Recommendation{Message: "Hi."}}
	svc.Recommender = quick
	close(stub.block)
	wg.Wait()

	_, err = svc.Ask(context.Background(), 2, "hello")
	assert.NoError(t, err)
}

func TestAskAllowsNewRequestAfterCompletion(t *testing.T) {
	stub := &stubRecommender{rec: Recommendation{Message: "Done."}}
	svc, _ := newChatFixture(t, stub)

	_, err := svc.Ask(context.Background(), 1, "one")
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), 1, "two")
	require.NoError(t, err)
}
