package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/wiring/internal/dao"
	"github.com/eugenenazirov/wiring/internal/metier"
)

func constant(v any) Factory {
	return func() (any, error) { return v, nil }
}

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Register("a.B", constant(1)))

	factory, ok := r.Lookup("a.B")
	require.True(t, ok)
	got, err := factory()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestLookupTrimsIdentifier(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Register(" a.B ", constant(1)))

	_, ok := r.Lookup("a.B\t")
	assert.True(t, ok)
}

func TestLookupMissing(t *testing.T) {
	t.Parallel()

	factory, ok := New().Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, factory)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	r := New()
	assert.ErrorIs(t, r.Register("", constant(1)), ErrInvalidRegistration)
	assert.ErrorIs(t, r.Register("   ", constant(1)), ErrInvalidRegistration)
	assert.ErrorIs(t, r.Register("x", nil), ErrInvalidRegistration)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Register("x", constant(1)))

	err := r.Register("x", constant(2))
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestAlias(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Register("target", constant("v")))
	require.NoError(t, r.Alias("alias", "target"))

	factory, ok := r.Lookup("alias")
	require.True(t, ok)
	got, err := factory()
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	assert.ErrorIs(t, r.Alias("other", "nope"), ErrUnknown)
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	r := New().MustRegister("x", constant(1))
	assert.Panics(t, func() { r.MustRegister("x", constant(1)) })
}

func TestIdentifiersSorted(t *testing.T) {
	t.Parallel()

	r := New().MustRegister("c", constant(1)).MustRegister("a", constant(1)).MustRegister("b", constant(1))
	assert.Equal(t, []string{"a", "b", "c"}, r.Identifiers())
}

func TestConcurrentRegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := fmt.Sprintf("id-%d", i)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Register(id, constant(id)))
		}()
		go func() {
			defer wg.Done()
			_ = r.Identifiers()
		}()
	}
	wg.Wait()

	assert.Len(t, r.Identifiers(), 50)
}

func TestDefaultBuildsBuiltins(t *testing.T) {
	t.Parallel()

	r := Default()
	assert.Equal(t, []string{"dao.DaoImpl", "dao.StaticProvider", "metier.Doubler", "metier.MetierImpl"}, r.Identifiers())

	for _, id := range []string{StaticProviderID, legacyProviderID} {
		factory, ok := r.Lookup(id)
		require.True(t, ok, id)
		instance, err := factory()
		require.NoError(t, err)
		assert.Implements(t, (*dao.Provider)(nil), instance)
	}

	for _, id := range []string{DoublerID, legacyCalculatorID} {
		factory, ok := r.Lookup(id)
		require.True(t, ok, id)
		instance, err := factory()
		require.NoError(t, err)
		assert.Implements(t, (*metier.Calculator)(nil), instance)
	}
}

func TestDefaultFactoriesReturnFreshInstances(t *testing.T) {
	t.Parallel()

	factory, ok := Default().Lookup(DoublerID)
	require.True(t, ok)

	first, err := factory()
	require.NoError(t, err)
	second, err := factory()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
