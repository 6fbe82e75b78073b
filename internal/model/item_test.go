package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Completed", TodoItem{Completed: true}.StatusLabel())
	assert.Equal(t, "Pending", TodoItem{Completed: false}.StatusLabel())
}

func TestStats(t *testing.T) {
	items := []TodoItem{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Buy eggs", Completed: true},
		{ID: 3, Title: "Walk dog"},
	}
	done, pending := Stats(items)
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)

	done, pending = Stats(nil)
	assert.Zero(t, done)
	assert.Zero(t, pending)
}
