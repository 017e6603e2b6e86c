// Package store defines the key-value persistence contract the services depend on.
//
// Every user owns one JSON record per [Name]. A record that was never written is reported with [ErrAbsent] and
// the services treat it as their default record.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fitevolve/fitevolve/internal/errors"
)

// Name identifies one of the records a user owns.
type Name string

const (
	User      Name = "user"
	Nutrition Name = "nutrition"
	Workout   Name = "workout"
)

// ErrAbsent is returned when a record has not been saved yet.
var ErrAbsent = errors.NewSentinel("record absent")

// KeyValue persists opaque records keyed by user and store name.
type KeyValue interface {
	// Load returns the record or ErrAbsent.
	Load(ctx context.Context, userID string, name Name) ([]byte, error)
	// Save overwrites the record.
	Save(ctx context.Context, userID string, name Name, record []byte) error
	// Update atomically reads the record, passes it to updateFn and stores the returned record. The record passed
	// to updateFn is nil when absent. Nothing is stored when updateFn returns an error.
	Update(ctx context.Context, userID string, name Name, updateFn func(record []byte) ([]byte, error)) error
	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, userID string, name Name) error
}

// Get decodes the record into a T. An absent record decodes into the zero T.
func Get[T any](ctx context.Context, kv KeyValue, userID string, name Name) (T, error) {
	var v T
	record, err := kv.Load(ctx, userID, name)
	if errors.Is(err, ErrAbsent) {
		return v, nil
	}
	if err != nil {
		return v, fmt.Errorf("load %s: %w", name, err)
	}
	if err = json.Unmarshal(record, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}

// Put encodes v and saves it.
func Put[T any](ctx context.Context, kv KeyValue, userID string, name Name, v T) error {
	record, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err = kv.Save(ctx, userID, name, record); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Mutate decodes the record into a *T, lets mutateFn change it and stores the result atomically.
//
// An absent record starts out as the zero T. Nothing is stored when mutateFn returns an error.
func Mutate[T any](
	ctx context.Context, kv KeyValue, userID string, name Name, mutateFn func(v *T) error,
) error {
	err := kv.Update(ctx, userID, name, func(record []byte) ([]byte, error) {
		var v T
		if record != nil {
			if err := json.Unmarshal(record, &v); err != nil {
				return nil, fmt.Errorf("decode %s: %w", name, err)
			}
		}
		if err := mutateFn(&v); err != nil {
			return nil, err
		}
		updated, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		return updated, nil
	})
	if err != nil {
		return fmt.Errorf("update %s: %w", name, err)
	}
	return nil
}
