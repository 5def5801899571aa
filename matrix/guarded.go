// SPDX-License-Identifier: MIT

// Package matrix - opt-in synchronized wrapper.
//
// Purpose:
//   - Matrix[T] itself is unsynchronized. Guarded[T] owns a private Matrix and
//     serializes access with one sync.RWMutex: readers share the lock,
//     mutations take it exclusively for the whole operation.
//   - AddAssign/SubAssign/MulAssign take a plain *Matrix b that must be owned
//     by the caller: b is read without any lock while g is write-locked, and
//     is not retained after the call.
//   - AddGuarded snapshots the other Guarded under its own read lock before
//     locking the receiver, so two Guarded values never hold each other's
//     locks at the same time.

package matrix

import "sync"

// Guarded is a Matrix safe for concurrent use by multiple goroutines.
// The zero value is not usable; construct with NewGuarded.
type Guarded[T Number] struct {
	mu sync.RWMutex
	m  *Matrix[T]
}

// NewGuarded takes a private deep copy of m.
// Errors: ErrNilMatrix.
func NewGuarded[T Number](m *Matrix[T]) (*Guarded[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("NewGuarded", err)
	}

	return &Guarded[T]{m: m.Clone()}, nil
}

// Snapshot returns a deep copy of the current state.
func (g *Guarded[T]) Snapshot() *Matrix[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m.Clone()
}

// Dims returns (rows, cols) read atomically.
func (g *Guarded[T]) Dims() (int, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m.r, g.m.c
}

// At reads one element under the read lock.
func (g *Guarded[T]) At(row, col int) (T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m.At(row, col)
}

// Row reads a copy of row i under the read lock.
func (g *Guarded[T]) Row(i int) ([]T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m.Row(i)
}

// Column reads a copy of column j under the read lock.
func (g *Guarded[T]) Column(j int) ([]T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m.Column(j)
}

// Determinant computes det of the current state under the read lock.
func (g *Guarded[T]) Determinant() (T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Determinant(g.m)
}

// String renders the current state under the read lock.
func (g *Guarded[T]) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m.String()
}

// Set writes one element under the write lock.
func (g *Guarded[T]) Set(row, col int, v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.m.Set(row, col, v)
}

// AddRow appends a row under the write lock.
func (g *Guarded[T]) AddRow(values []T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.m.AddRow(values)
}

// AddColumn appends a column under the write lock.
func (g *Guarded[T]) AddColumn(values []T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.m.AddColumn(values)
}

// RemoveRow deletes row i under the write lock.
func (g *Guarded[T]) RemoveRow(i int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.m.RemoveRow(i)
}

// RemoveColumn deletes column j under the write lock.
func (g *Guarded[T]) RemoveColumn(j int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.m.RemoveColumn(j)
}

// apply runs a compound assignment on the wrapped matrix under the write lock.
func (g *Guarded[T]) apply(b *Matrix[T], fn func(m, b *Matrix[T]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.m, b)
}

// AddAssign performs g = g + b. b must not be mutated concurrently.
func (g *Guarded[T]) AddAssign(b *Matrix[T]) error {
	return g.apply(b, (*Matrix[T]).AddAssign)
}

// SubAssign performs g = g - b.
func (g *Guarded[T]) SubAssign(b *Matrix[T]) error {
	return g.apply(b, (*Matrix[T]).SubAssign)
}

// MulAssign performs g = g × b.
func (g *Guarded[T]) MulAssign(b *Matrix[T]) error {
	return g.apply(b, (*Matrix[T]).MulAssign)
}

// AddGuarded performs g = g + o where o is another Guarded. o is
// snapshotted first, so g == o is allowed.
func (g *Guarded[T]) AddGuarded(o *Guarded[T]) error {
	return g.AddAssign(o.Snapshot())
}

// DivAssign performs g = g / s.
func (g *Guarded[T]) DivAssign(s T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.m.DivAssign(s)
}
