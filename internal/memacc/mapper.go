package memacc

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// AddrCallback resolves the IB at va. It returns exactly ndw dwords, or
// false when the address is unmapped or the mapping is shorter than ndw.
type AddrCallback func(va uint64, ndw uint32) ([]uint32, bool)

// Mapper is a registry of non-overlapping accessors.
type Mapper struct {
	mu        sync.RWMutex
	accessors []Accessor
}

func NewMapper() *Mapper {
	return &Mapper{}
}

func (m *Mapper) AddAccessor(acc Accessor) error {
	if acc.EndAddr() < acc.StartAddr() {
		return ErrEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accessors {
		if a.StartAddr() <= acc.EndAddr() && acc.StartAddr() <= a.EndAddr() {
			return errors.Wrapf(ErrMemAccOverlap, "%s and %s", a, acc)
		}
	}
	m.accessors = append(m.accessors, acc)
	sort.Slice(m.accessors, func(i, j int) bool {
		return m.accessors[i].StartAddr() < m.accessors[j].StartAddr()
	})
	return nil
}

func (m *Mapper) RemoveAccessor(acc Accessor) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.accessors {
		if a == acc {
			m.accessors = append(m.accessors[:i], m.accessors[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Mapper) RemoveAllAccessors() {
	m.mu.Lock()
	m.accessors = nil
	m.mu.Unlock()
}

// Accessors returns the mapped ranges in address order.
func (m *Mapper) Accessors() []Accessor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Accessor(nil), m.accessors...)
}

func (m *Mapper) find(va uint64) Accessor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := sort.Search(len(m.accessors), func(i int) bool {
		return m.accessors[i].EndAddr() >= va
	})
	if i < len(m.accessors) && m.accessors[i].StartAddr() <= va {
		return m.accessors[i]
	}
	return nil
}

// ReadDwords reads up to ndw dwords at va from the accessor covering it.
func (m *Mapper) ReadDwords(va uint64, ndw uint32) ([]uint32, error) {
	acc := m.find(va)
	if acc == nil {
		return nil, nil
	}
	return acc.Read(va, ndw)
}

// Callback adapts the mapper for the IB parser.
func (m *Mapper) Callback() AddrCallback {
	return func(va uint64, ndw uint32) ([]uint32, bool) {
		words, err := m.ReadDwords(va, ndw)
		if err != nil || uint32(len(words)) != ndw {
			return nil, false
		}
		return words, true
	}
}
