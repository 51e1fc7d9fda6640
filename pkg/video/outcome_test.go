package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOutcomeInclusiveBounds(t *testing.T) {
	zone := DefaultConfig().Goal

	assert.Equal(t, ResultMake, ClassifyOutcome(Position{X: 200, Y: 50}, zone))
	assert.Equal(t, ResultMake, ClassifyOutcome(Position{X: 280, Y: 120}, zone))
	assert.Equal(t, ResultMake, ClassifyOutcome(Position{X: 240, Y: 85}, zone))

	assert.Equal(t, ResultMiss, ClassifyOutcome(Position{X: 199, Y: 50}, zone))
	assert.Equal(t, ResultMiss, ClassifyOutcome(Position{X: 281, Y: 85}, zone))
	assert.Equal(t, ResultMiss, ClassifyOutcome(Position{X: 240, Y: 49}, zone))
	assert.Equal(t, ResultMiss, ClassifyOutcome(Position{X: 240, Y: 121}, zone))
}

func TestClassifyOutcomeCustomZone(t *testing.T) {
	zone := GoalZone{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	assert.Equal(t, ResultMake, ClassifyOutcome(Position{X: 0, Y: 0}, zone))
	assert.Equal(t, ResultMiss, ClassifyOutcome(Position{X: 11, Y: 5}, zone))
}
