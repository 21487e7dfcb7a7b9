// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all pref types. the pre hook can prevent a value from
// being stored by returning an error
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}

	v.Store(nv)

	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}

	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(bool)
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value  atomic.Value // string
	maxLen atomic.Int32
}

func (p *String) String() string {
	return p.Get().(string)
}

func (p *String) crop(s string) string {
	if m := int(p.maxLen.Load()); m > 0 && len(s) > m {
		return s[:m]
	}
	return s
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. Note that the existing string
// will be cropped if necessary and the cropped information will be lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen.Store(int32(max))
	if v := p.value.Load(); v != nil {
		p.value.Store(p.crop(v.(string)))
	}
}

// Set new value to String type. Values of any type are converted to a string
// with the %v verb.
func (p *String) Set(v Value) error {
	return p.store(&p.value, p.crop(fmt.Sprintf("%v", v)))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int

	// if min and max are both zero then there is no range limit
	min, max int
}

// SetRange limits the values that can be stored. A value outside of the
// range will cause Set() to fail.
func (p *Int) SetRange(min int, max int) {
	p.min = min
	p.max = max
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	if (p.min != 0 || p.max != 0) && (nv < p.min || nv > p.max) {
		return fmt.Errorf("prefs: %d is outside the range %d to %d", nv, p.min, p.max)
	}

	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(int)
	}
	return 0
}

// Reset sets the int value to zero. If zero is outside of the range of the
// Int then the minimum value is used.
func (p *Int) Reset() error {
	if p.min > 0 || p.max < 0 {
		return p.Set(p.min)
	}
	return p.Set(0)
}
