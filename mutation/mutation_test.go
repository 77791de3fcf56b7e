package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashgrove-forge/passiveopt/build"
	"github.com/ashgrove-forge/passiveopt/budget"
	"github.com/ashgrove-forge/passiveopt/mutation"
)

func TestCost_AddOnly(t *testing.T) {
	m := mutation.TreeMutation{Added: map[int]struct{}{1: {}}}
	assert.Equal(t, budget.Cost{Unallocated: 1, Respec: 0}, m.Cost())
}

func TestCost_Swap(t *testing.T) {
	m := mutation.TreeMutation{Added: map[int]struct{}{1: {}}, Removed: map[int]struct{}{2: {}}}
	assert.Equal(t, budget.Cost{Unallocated: 0, Respec: 1}, m.Cost())
}

func TestIsIdentity(t *testing.T) {
	assert.True(t, mutation.TreeMutation{}.IsIdentity())
	assert.False(t, mutation.TreeMutation{Added: map[int]struct{}{1: {}}}.IsIdentity())
}

func TestApply_AddNode(t *testing.T) {
	data := &build.Data{Allocated: map[int]struct{}{1: {}}}
	m := mutation.TreeMutation{Added: map[int]struct{}{2: {}}}
	result := m.Apply(data)

	assert.Len(t, data.Allocated, 1, "source must be untouched")
	assert.Len(t, result.Allocated, 2)
	_, ok := result.Allocated[2]
	assert.True(t, ok)
}

func TestApply_Swap(t *testing.T) {
	data := &build.Data{Allocated: map[int]struct{}{1: {}, 2: {}}}
	m := mutation.TreeMutation{Added: map[int]struct{}{3: {}}, Removed: map[int]struct{}{2: {}}}
	result := m.Apply(data)

	_, has2 := result.Allocated[2]
	_, has3 := result.Allocated[3]
	assert.False(t, has2)
	assert.True(t, has3)
	assert.Len(t, result.Allocated, 2)
}
