package registry

import (
	"github.com/eugenenazirov/wiring/internal/dao"
	"github.com/eugenenazirov/wiring/internal/metier"
)

// Identifiers of the built-in components.
const (
	StaticProviderID = "dao.StaticProvider"
	DoublerID        = "metier.Doubler"

	legacyProviderID   = "dao.DaoImpl"
	legacyCalculatorID = "metier.MetierImpl"
)

// Default returns a registry holding the built-in data providers and calculators.
func Default() *Registry {
	r := New().
		MustRegister(StaticProviderID, func() (any, error) { return dao.NewStatic(), nil }).
		MustRegister(DoublerID, func() (any, error) { return metier.New(), nil })

	// Configuration files written for the earlier class names keep working.
	if err := r.Alias(legacyProviderID, StaticProviderID); err != nil {
		panic(err)
	}
	if err := r.Alias(legacyCalculatorID, DoublerID); err != nil {
		panic(err)
	}
	return r
}
