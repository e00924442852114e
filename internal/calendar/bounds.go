package calendar

import (
	apperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// Bounds holds the optional inclusive limits on selectable dates. A nil
// field means that side is unbounded.
//
// When Min is after Max the bounds are inverted and no date is selectable.
type Bounds struct {
	Min *Date
	Max *Date
}

// ParseBounds builds Bounds from ISO strings, treating "" as unbounded.
func ParseBounds(min, max string) (Bounds, error) {
	var b Bounds
	if min != "" {
		d, ok := ParseISO(min)
		if !ok {
			return Bounds{}, apperrors.NewValueError("min", min, "must be an ISO calendar date (YYYY-MM-DD)")
		}
		b.Min = &d
	}
	if max != "" {
		d, ok := ParseISO(max)
		if !ok {
			return Bounds{}, apperrors.NewValueError("max", max, "must be an ISO calendar date (YYYY-MM-DD)")
		}
		b.Max = &d
	}
	return b, nil
}

// Inverted reports whether both limits are set and Min is after Max.
func (b Bounds) Inverted() bool {
	return b.Min != nil && b.Max != nil && b.Min.After(*b.Max)
}

// Selectable reports whether d lies within the bounds.
func (b Bounds) Selectable(d Date) bool {
	if b.Inverted() {
		return false
	}
	if b.Min != nil && d.Before(*b.Min) {
		return false
	}
	if b.Max != nil && d.After(*b.Max) {
		return false
	}
	return true
}

// IsSelectable reports whether day of ym exists and lies within b.
func IsSelectable(ym YearMonth, day int, b Bounds) bool {
	d, ok := SelectDay(ym, day)
	if !ok {
		return false
	}
	return b.Selectable(d)
}

// HasSelectable reports whether at least one day of ym is selectable.
func HasSelectable(ym YearMonth, b Bounds) bool {
	if b.Inverted() {
		return false
	}
	first, ok := ym.First()
	if !ok {
		return false
	}
	last, _ := ym.Last()
	if b.Max != nil && first.After(*b.Max) {
		return false
	}
	if b.Min != nil && last.Before(*b.Min) {
		return false
	}
	return true
}

// Clamp returns the month nearest to ym that contains a selectable day.
// Inverted bounds have no such month, so ym is returned unchanged.
func (b Bounds) Clamp(ym YearMonth) YearMonth {
	if b.Inverted() {
		return ym
	}
	if b.Min != nil && ym.Compare(b.Min.YearMonth()) < 0 {
		return b.Min.YearMonth()
	}
	if b.Max != nil && ym.Compare(b.Max.YearMonth()) > 0 {
		return b.Max.YearMonth()
	}
	return ym
}
