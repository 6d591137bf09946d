package statemachine

import (
	"testing"

	"delivery-marketplace-api/models"

	"github.com/stretchr/testify/assert"
)

func TestHappyPathTransitions(t *testing.T) {
	path := []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusDelivering,
		models.StatusCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.NoError(t, CanTransition(path[i], path[i+1]))
	}
}

func TestCancellationOnlyBeforeDispatch(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusCancelled))
	assert.NoError(t, CanTransition(models.StatusPreparing, models.StatusCancelled))
	assert.Error(t, CanTransition(models.StatusReady, models.StatusCancelled))
	assert.Error(t, CanTransition(models.StatusDelivering, models.StatusCancelled))
}

func TestInvalidTransitionsRejected(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPending, models.StatusReady))
	assert.Error(t, CanTransition(models.StatusReady, models.StatusCompleted))
	assert.Error(t, CanTransition(models.StatusCompleted, models.StatusPending))
	assert.Error(t, CanTransition(models.StatusCancelled, models.StatusPreparing))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
}
