package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripweaver/internal/app/models"
)

func testPlan() *models.TripPlan {
	return &models.TripPlan{
		Destination: "Kyoto",
		Summary:     "Temples and food.",
		Itinerary: []models.ItineraryDay{
			{Day: 1, Title: "Arrival", Activities: []string{"Check in"}},
		},
		Budget: models.BudgetBreakdown{Currency: "JPY", Total: 100000},
	}
}

func TestSession_SubmissionLifecycle(t *testing.T) {
	t.Run("should start in the form state", func(t *testing.T) {
		sess := New()
		snap := sess.Snapshot()
		assert.Equal(t, StateForm, snap.State)
		assert.Nil(t, snap.Plan)
	})

	t.Run("should move form to loading to result", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())
		assert.Equal(t, StateLoading, sess.Snapshot().State)

		require.NoError(t, sess.Complete(testPlan()))
		snap := sess.Snapshot()
		assert.Equal(t, StateResult, snap.State)
		require.NotNil(t, snap.Plan)
		assert.Equal(t, "Kyoto", snap.Plan.Destination)
	})

	t.Run("should move loading to error with a message", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())
		require.NoError(t, sess.Fail(models.GenerationFailedMessage))
		snap := sess.Snapshot()
		assert.Equal(t, StateError, snap.State)
		assert.Equal(t, models.GenerationFailedMessage, snap.Message)
		assert.Nil(t, snap.Plan)
	})
}

func TestSession_MutualExclusion(t *testing.T) {
	t.Run("second submit while loading is a no-op", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())

		err := sess.BeginSubmission()
		assert.ErrorIs(t, err, models.ErrSubmissionInFlight)
		assert.Equal(t, StateLoading, sess.Snapshot().State)
	})

	t.Run("complete and fail require loading", func(t *testing.T) {
		sess := New()
		assert.ErrorIs(t, sess.Complete(testPlan()), models.ErrInvalidTransition)
		assert.ErrorIs(t, sess.Fail("boom"), models.ErrInvalidTransition)
	})

	t.Run("submit from result requires reset first", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())
		require.NoError(t, sess.Complete(testPlan()))

		assert.ErrorIs(t, sess.BeginSubmission(), models.ErrInvalidTransition)
	})
}

func TestSession_Reset(t *testing.T) {
	t.Run("reset from result discards the plan", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())
		require.NoError(t, sess.Complete(testPlan()))

		require.NoError(t, sess.Reset())
		snap := sess.Snapshot()
		assert.Equal(t, StateForm, snap.State)
		assert.Nil(t, snap.Plan)
	})

	t.Run("reset from error clears the message", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())
		require.NoError(t, sess.Fail("boom"))

		require.NoError(t, sess.Reset())
		snap := sess.Snapshot()
		assert.Equal(t, StateForm, snap.State)
		assert.Empty(t, snap.Message)
	})

	t.Run("reset from form is a no-op", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.Reset())
		assert.Equal(t, StateForm, sess.Snapshot().State)
	})

	t.Run("reset while loading is rejected", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())
		assert.ErrorIs(t, sess.Reset(), models.ErrInvalidTransition)
		assert.Equal(t, StateLoading, sess.Snapshot().State)
	})

	t.Run("fresh submit after reset is accepted", func(t *testing.T) {
		sess := New()
		require.NoError(t, sess.BeginSubmission())
		require.NoError(t, sess.Complete(testPlan()))
		require.NoError(t, sess.Reset())

		assert.NoError(t, sess.BeginSubmission())
	})
}

func TestStore(t *testing.T) {
	t.Run("should create a session on first access and reuse it after", func(t *testing.T) {
		store := NewStore(time.Minute, zap.NewNop())

		first := store.Get("visitor-1")
		require.NotNil(t, first)
		assert.Equal(t, StateForm, first.Snapshot().State)

		require.NoError(t, first.BeginSubmission())
		again := store.Get("visitor-1")
		assert.Same(t, first, again)
		assert.Equal(t, StateLoading, again.Snapshot().State)
	})

	t.Run("should keep sessions isolated by id", func(t *testing.T) {
		store := NewStore(time.Minute, zap.NewNop())
		require.NoError(t, store.Get("a").BeginSubmission())
		assert.Equal(t, StateForm, store.Get("b").Snapshot().State)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("should hand concurrent first contacts the same session", func(t *testing.T) {
		const workers = 8

		for attempt := 0; attempt < 200; attempt++ {
			store := NewStore(time.Minute, zap.NewNop())
			start := make(chan struct{})
			sessions := make([]*Session, workers)
			accepted := make([]bool, workers)

			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					sess := store.Get("visitor")
					sessions[i] = sess
					accepted[i] = sess.BeginSubmission() == nil
				}(i)
			}
			close(start)
			wg.Wait()

			submissions := 0
			for i := 0; i < workers; i++ {
				assert.Same(t, sessions[0], sessions[i], "attempt %d worker %d", attempt, i)
				if accepted[i] {
					submissions++
				}
			}
			assert.Equal(t, 1, submissions, "attempt %d: exactly one submission may win", attempt)
			assert.Equal(t, 1, store.Len(), "attempt %d", attempt)
		}
	})
}
