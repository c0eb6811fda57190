// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sql holds the data model shared by every stage of the query
// pipeline: the tagged Value union, Schema/Column, and Row.
package sql

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// Tag identifies which arm of a Value is populated.
type Tag int

const (
	// Invalid is the sentinel for "absent": the end of a variable's
	// sequence, casting absent data, an out-of-range lookup.
	Invalid Tag = iota
	Float
	String
	Bool
)

func (t Tag) String() string {
	switch t {
	case Float:
		return "float"
	case String:
		return "char"
	case Bool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a tagged union over {Float, String, Bool, Invalid}.
type Value struct {
	tag   Tag
	f     float64
	s     string
	b     bool
}

// NewInvalid returns the Invalid sentinel value.
func NewInvalid() Value { return Value{tag: Invalid} }

// NewFloat wraps a float64.
func NewFloat(f float64) Value { return Value{tag: Float, f: f} }

// NewString wraps a string.
func NewString(s string) Value { return Value{tag: String, s: s} }

// NewBool wraps a bool.
func NewBool(b bool) Value { return Value{tag: Bool, b: b} }

// Tag reports which arm of the union is populated.
func (v Value) Tag() Tag { return v.tag }

// IsInvalid reports whether v is the Invalid sentinel.
func (v Value) IsInvalid() bool { return v.tag == Invalid }

// Float returns the float64 arm. Only meaningful when Tag() == Float.
func (v Value) Float() float64 { return v.f }

// Str returns the string arm. Only meaningful when Tag() == String.
func (v Value) Str() string { return v.s }

// Bool returns the bool arm. Only meaningful when Tag() == Bool.
func (v Value) Bool() bool { return v.b }

// String renders v for REPL display and for building aggregate labels.
// Byte-wise, no locale-aware formatting.
func (v Value) String() string {
	switch v.tag {
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return "INVALID"
	}
}

// Equal reports value equality. Values with differing tags are never
// equal; two Invalids are equal to each other.
func (v Value) Equal(other Value) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case Float:
		return v.f == other.f
	case String:
		return v.s == other.s
	case Bool:
		return v.b == other.b
	default:
		return true
	}
}

// Less implements byte-wise string ordering and numeric ordering for
// Float. Used by the sort comparator and by min/max aggregation. Panics
// are never raised here; callers must have already checked tags match via
// CheckTags.
func (v Value) Less(other Value) bool {
	switch v.tag {
	case Float:
		return v.f < other.f
	case String:
		return v.s < other.s
	case Bool:
		return !v.b && other.b
	default:
		return false
	}
}

// CheckTags returns ErrEval-shaped error text when a and b carry
// different tags; binary comparisons and min/max require matching tags.
func CheckTags(a, b Value) error {
	if a.tag != b.tag {
		return fmt.Errorf("comparison between mismatched types %s and %s", a.tag, b.tag)
	}
	return nil
}

// ToFloat coerces v to a float64 using spf13/cast, for the `tofloat`
// expression function.
func ToFloat(v Value) (float64, error) {
	switch v.tag {
	case Float:
		return v.f, nil
	case String:
		return cast.ToFloat64E(v.s)
	case Bool:
		return cast.ToFloat64E(v.b)
	default:
		return 0, fmt.Errorf("cannot convert INVALID to float")
	}
}

// ToStr coerces v to its string representation using spf13/cast.
func ToStr(v Value) (string, error) {
	switch v.tag {
	case String:
		return v.s, nil
	case Invalid:
		return "", fmt.Errorf("cannot convert INVALID to string")
	default:
		return cast.ToStringE(v.String())
	}
}

// ToBool coerces v to bool using spf13/cast.
func ToBool(v Value) (bool, error) {
	switch v.tag {
	case Bool:
		return v.b, nil
	case String:
		return cast.ToBoolE(v.s)
	case Float:
		return cast.ToBoolE(v.f)
	default:
		return false, fmt.Errorf("cannot convert INVALID to bool")
	}
}
