package metier

import "github.com/eugenenazirov/wiring/internal/dao"

const factor = 2

type doubler struct {
	provider dao.Provider
}

// New creates a Calculator that multiplies the provider value by two. SetProvider
// must be called before Compute.
func New() Calculator {
	return &doubler{}
}

// NewWithProvider creates a doubling Calculator already wired to p.
func NewWithProvider(p dao.Provider) Calculator {
	return &doubler{provider: p}
}

func (d *doubler) SetProvider(p dao.Provider) {
	d.provider = p
}

func (d *doubler) Compute() (float64, error) {
	if d.provider == nil {
		return 0, ErrProviderNotSet
	}
	return factor * d.provider.Value(), nil
}
