package metier

import "github.com/eugenenazirov/wiring/internal/dao"

// ProviderSetter accepts the data access component a calculator reads from.
type ProviderSetter interface {
	SetProvider(p dao.Provider)
}

// Computer performs the business computation.
type Computer interface {
	Compute() (float64, error)
}

// Calculator describes the behaviour required from a business component.
type Calculator interface {
	ProviderSetter
	Computer
}
