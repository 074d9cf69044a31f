package dao

const defaultValue = 4.0

// Provider describes the behaviour required from a data access component.
type Provider interface {
	Value() float64
}

// StaticProvider returns a value fixed at construction.
type StaticProvider struct {
	value float64
}

// NewStatic creates a StaticProvider holding the default value.
func NewStatic() *StaticProvider {
	return &StaticProvider{value: defaultValue}
}

// NewStaticWithValue creates a StaticProvider holding v.
func NewStaticWithValue(v float64) *StaticProvider {
	return &StaticProvider{value: v}
}

func (p *StaticProvider) Value() float64 {
	return p.value
}
