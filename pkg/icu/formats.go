package icu

import (
	"maps"
	"sync"
)

// NumberFormat describes a named number formatting preset.
type NumberFormat struct {
	// Style selects the base formatter: "decimal" (default), "percent",
	// or "currency".
	Style string

	// Currency is the ISO 4217 code used when Style is "currency".
	Currency string

	// MinFractionDigits and MaxFractionDigits bound the rendered fraction.
	// Zero values leave the locale defaults in place.
	MinFractionDigits int
	MaxFractionDigits int
}

// Number format styles.
const (
	StyleDecimal  = "decimal"
	StyleInteger  = "integer"
	StylePercent  = "percent"
	StyleCurrency = "currency"
)

// Presets groups named format presets per category. Date and time presets are
// Go time layouts.
type Presets struct {
	Number map[string]NumberFormat
	Date   map[string]string
	Time   map[string]string
}

// Formats is a store of named format presets read by Render when a template
// references a preset by name, e.g. {price, number, currency}. It is safe for
// concurrent use.
type Formats struct {
	mu      sync.RWMutex
	presets Presets
}

// NewFormats creates a preset store pre-populated with the built-in presets,
// overlaid with the given presets.
func NewFormats(p Presets) *Formats {
	f := &Formats{presets: builtinPresets()}
	f.Add(p)
	return f
}

// Set replaces all presets wholesale. Categories absent from p become empty.
func (f *Formats) Set(p Presets) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presets = Presets{
		Number: maps.Clone(p.Number),
		Date:   maps.Clone(p.Date),
		Time:   maps.Clone(p.Time),
	}
}

// Add merges presets shallowly per category: new names are added, same-named
// presets are overwritten, other existing presets are retained.
func (f *Formats) Add(p Presets) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.presets.Number == nil {
		f.presets.Number = make(map[string]NumberFormat)
	}
	if f.presets.Date == nil {
		f.presets.Date = make(map[string]string)
	}
	if f.presets.Time == nil {
		f.presets.Time = make(map[string]string)
	}
	maps.Copy(f.presets.Number, p.Number)
	maps.Copy(f.presets.Date, p.Date)
	maps.Copy(f.presets.Time, p.Time)
}

func (f *Formats) number(name string) (NumberFormat, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	nf, ok := f.presets.Number[name]
	return nf, ok
}

func (f *Formats) date(name string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	layout, ok := f.presets.Date[name]
	return layout, ok
}

func (f *Formats) timeLayout(name string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	layout, ok := f.presets.Time[name]
	return layout, ok
}

func builtinPresets() Presets {
	return Presets{
		Number: map[string]NumberFormat{
			"decimal": {Style: StyleDecimal},
			"integer": {Style: StyleInteger},
			"percent": {Style: StylePercent},
		},
		Date: map[string]string{
			"short":  "1/2/06",
			"medium": "Jan 2, 2006",
			"long":   "January 2, 2006",
			"full":   "Monday, January 2, 2006",
		},
		Time: map[string]string{
			"short":  "3:04 PM",
			"medium": "3:04:05 PM",
			"long":   "3:04:05 PM MST",
		},
	}
}

var defaultFormats = NewFormats(Presets{})

// defaultLayout picks a date or time layout for the given style, falling
// back to the medium built-in.
func defaultLayout(kind, style string) string {
	p := builtinPresets()
	var presets map[string]string
	if kind == "date" {
		presets = p.Date
	} else {
		presets = p.Time
	}
	if layout, ok := presets[style]; ok {
		return layout
	}
	return presets["medium"]
}
