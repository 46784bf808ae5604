package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frostlib/gokit/collection/frozenset"
)

func even(v int) bool     { return v%2 == 0 }
func positive(v int) bool { return v > 0 }

func TestConstants(t *testing.T) {
	assert.True(t, AlwaysTrue[int]()(0))
	assert.True(t, AlwaysTrue[string]()("x"))
	assert.False(t, AlwaysFalse[int]()(0))
}

func TestNot(t *testing.T) {
	odd := Not(Predicate[int](even))
	assert.True(t, odd(3))
	assert.False(t, odd(4))
}

func TestAnd(t *testing.T) {
	p := And(Predicate[int](even), Predicate[int](positive))
	assert.True(t, p(4))
	assert.False(t, p(-4))
	assert.False(t, p(3))
	assert.True(t, And[int]()(99), "empty conjunction holds vacuously")
}

func TestAndShortCircuits(t *testing.T) {
	called := false
	p := And(AlwaysFalse[int](), func(int) bool {
		called = true
		return true
	})
	assert.False(t, p(1))
	assert.False(t, called)
}

func TestOr(t *testing.T) {
	p := Or(Predicate[int](even), Predicate[int](positive))
	assert.True(t, p(3))
	assert.True(t, p(-2))
	assert.False(t, p(-3))
	assert.False(t, Or[int]()(99), "empty disjunction never holds")
}

func TestOrShortCircuits(t *testing.T) {
	called := false
	p := Or(AlwaysTrue[int](), func(int) bool {
		called = true
		return false
	})
	assert.True(t, p(1))
	assert.False(t, called)
}

func TestCombinatorsCopyOperands(t *testing.T) {
	ps := []Predicate[int]{AlwaysTrue[int]()}
	p := And(ps...)
	ps[0] = AlwaysFalse[int]()
	assert.True(t, p(1), "mutating the source slice must not change the predicate")
}

func TestEqualTo(t *testing.T) {
	p := EqualTo(frozenset.HasherFor[string](), "yes")
	assert.True(t, p("yes"))
	assert.False(t, p("no"))
}

func TestIn(t *testing.T) {
	s := frozenset.Of(1, 2, 3)
	p := In(s)
	assert.True(t, p(2))
	assert.False(t, p(5))

	assert.False(t, In[int](nil)(1))
	assert.False(t, In(frozenset.Of[int]())(1))
}
