package entity

import "encoding/json"

// Patch is a tri-state field of a partial update: absent (leave unchanged),
// explicit null (clear), or a value.
type Patch[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some returns a patch that sets the field to v
func Some[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Valid: true, Value: v}
}

// Null returns a patch that clears the field
func Null[T any]() Patch[T] {
	return Patch[T]{Set: true}
}

// IsNull reports whether the patch explicitly clears the field
func (p Patch[T]) IsNull() bool {
	return p.Set && !p.Valid
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what distinguishes "absent" from "null".
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true
	if string(data) == "null" {
		var zero T
		p.Valid = false
		p.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &p.Value); err != nil {
		return err
	}
	p.Valid = true
	return nil
}

// Apply writes the value into a non-nullable field. Null patches are ignored;
// callers reject them during validation.
func (p Patch[T]) Apply(dst *T) {
	if p.Set && p.Valid {
		*dst = p.Value
	}
}

// ApplyPtr writes the value into a nullable field, clearing it on null
func (p Patch[T]) ApplyPtr(dst **T) {
	if !p.Set {
		return
	}
	if !p.Valid {
		*dst = nil
		return
	}
	v := p.Value
	*dst = &v
}
