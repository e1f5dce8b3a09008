// Package repository implements add, list, find, search, update and delete
// over store tables. Every mutation reads the whole table, builds the new row
// set in memory and rewrites the table.
package repository

import (
	"fmt"
	"strings"

	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/store"
)

// Entity describes how a repository handles one record type T updated with
// patches of type P.
type Entity[T any, P any] struct {
	Kind string
	ID   func(T) int32
	// WithID returns the record with its id replaced
	WithID func(T, int32) T
	// Fields returns the searchable text fields of a record
	Fields func(T) []string
	// Apply merges a patch into a record; blank patch fields keep old values
	Apply func(T, P) (T, error)
	// Normalize cleans up a record before validation; nil leaves it as is
	Normalize func(T) T
	Validate  func(T) error
}

// Repository is the generic CRUD layer over one table
type Repository[T any, P any] struct {
	table  *store.Table[T]
	entity Entity[T, P]
}

// New creates a repository over table
func New[T any, P any](table *store.Table[T], entity Entity[T, P]) *Repository[T, P] {
	return &Repository[T, P]{table: table, entity: entity}
}

// Table returns the underlying table
func (r *Repository[T, P]) Table() *store.Table[T] {
	return r.table
}

// Add assigns the next id to candidate, appends it and returns the stored record
func (r *Repository[T, P]) Add(candidate T) (T, error) {
	var stored T
	candidate = r.normalize(candidate)
	if err := r.entity.Validate(candidate); err != nil {
		return stored, err
	}
	err := r.table.Update(func(current []T) ([]T, error) {
		stored = r.entity.WithID(candidate, store.MaxID(current, r.entity.ID)+1)
		return append(current, stored), nil
	})
	if err != nil {
		return stored, fmt.Errorf("failed to add %s: %w", r.entity.Kind, err)
	}
	return stored, nil
}

// List returns every record in table order
func (r *Repository[T, P]) List() ([]T, error) {
	return r.table.ReadAll()
}

// FindByID returns the record with id, or ErrNotFound
func (r *Repository[T, P]) FindByID(id int32) (T, error) {
	records, err := r.table.ReadAll()
	if err != nil {
		var zero T
		return zero, err
	}
	return findByID(records, id, r.entity.ID, r.entity.Kind)
}

// Search returns, in table order, every record with a field containing text,
// ignoring case. A record is returned once even if several fields match.
func (r *Repository[T, P]) Search(text string) ([]T, error) {
	records, err := r.table.ReadAll()
	if err != nil {
		return nil, err
	}
	return search(records, text, r.entity.Fields), nil
}

// Update applies patch to the record with id and rewrites it at the same
// position.
func (r *Repository[T, P]) Update(id int32, patch P) (T, error) {
	var updated T
	err := r.table.Update(func(current []T) ([]T, error) {
		i := indexOf(current, id, r.entity.ID)
		if i < 0 {
			return nil, fmt.Errorf("%s %d: %w", r.entity.Kind, id, model.ErrNotFound)
		}
		next, err := r.entity.Apply(current[i], patch)
		if err != nil {
			return nil, err
		}
		next = r.normalize(r.entity.WithID(next, id))
		if err := r.entity.Validate(next); err != nil {
			return nil, err
		}
		out := make([]T, len(current))
		copy(out, current)
		out[i] = next
		updated = next
		return out, nil
	})
	return updated, err
}

// Delete removes every row with id and keeps the rest in order. Deleting an
// absent id succeeds and rewrites the table unchanged.
func (r *Repository[T, P]) Delete(id int32) error {
	return r.table.Update(func(current []T) ([]T, error) {
		out := make([]T, 0, len(current))
		for _, rec := range current {
			if r.entity.ID(rec) != id {
				out = append(out, rec)
			}
		}
		return out, nil
	})
}

// Pick returns the record with id from matches, or ErrNotFound if id is not
// one of them. It is used to resolve a choice made from search results.
func (r *Repository[T, P]) Pick(matches []T, id int32) (T, error) {
	return findByID(matches, id, r.entity.ID, r.entity.Kind)
}

// DeleteAmong deletes id only if it is one of matches
func (r *Repository[T, P]) DeleteAmong(matches []T, id int32) error {
	if _, err := r.Pick(matches, id); err != nil {
		return err
	}
	return r.Delete(id)
}

// UpdateAmong updates id only if it is one of matches
func (r *Repository[T, P]) UpdateAmong(matches []T, id int32, patch P) (T, error) {
	if _, err := r.Pick(matches, id); err != nil {
		var zero T
		return zero, err
	}
	return r.Update(id, patch)
}

func (r *Repository[T, P]) normalize(rec T) T {
	if r.entity.Normalize == nil {
		return rec
	}
	return r.entity.Normalize(rec)
}

// ID returns the id of rec
func (r *Repository[T, P]) ID(rec T) int32 {
	return r.entity.ID(rec)
}

func indexOf[T any](records []T, id int32, idOf func(T) int32) int {
	for i, rec := range records {
		if idOf(rec) == id {
			return i
		}
	}
	return -1
}

func findByID[T any](records []T, id int32, idOf func(T) int32, kind string) (T, error) {
	if i := indexOf(records, id, idOf); i >= 0 {
		return records[i], nil
	}
	var zero T
	return zero, fmt.Errorf("%s %d: %w", kind, id, model.ErrNotFound)
}

func search[T any](records []T, text string, fields func(T) []string) []T {
	needle := strings.ToLower(strings.TrimSpace(text))
	var out []T
	for _, rec := range records {
		for _, f := range fields(rec) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// keep returns next trimmed, or old when next is blank
func keep(old, next string) string {
	if v := strings.TrimSpace(next); v != "" {
		return v
	}
	return old
}

func checkLength(kind string, fields map[string]string) error {
	for name, v := range fields {
		if len(v) >= model.MaxField {
			return model.Invalid(model.RuleFieldLength, "%s %s is %d bytes, limit is %d", kind, name, len(v), model.MaxField-1)
		}
	}
	return nil
}
