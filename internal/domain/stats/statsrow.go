// Package stats provides the denormalized per-(resource, language)
// translation statistics and the aggregation engine that computes them.
package stats

import (
	"fmt"
	"math"
	"time"
)

// StatsRow is the denormalized aggregate for one (resource, language) pair.
// It is derived state: whenever in doubt it is recomputed from the
// translation store, never trusted as primary truth.
//
// Invariants: translated + untranslated == total, reviewed <= translated.
type StatsRow struct {
	id                uint
	resourceID        uint
	languageCode      string
	total             int
	translated        int
	untranslated      int
	reviewed          int
	totalWords        int
	translatedWords   int
	untranslatedWords int
	lastUpdate        *time.Time
	lastCommitterID   *uint
	updatedAt         time.Time
}

// NewStatsRow creates an empty row for a pair. The aggregator fills it in;
// an untouched row is a valid "0 of 0" aggregate.
func NewStatsRow(resourceID uint, languageCode string) (*StatsRow, error) {
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if languageCode == "" {
		return nil, fmt.Errorf("language code is required")
	}

	return &StatsRow{
		resourceID:   resourceID,
		languageCode: languageCode,
		updatedAt:    time.Now(),
	}, nil
}

// ReconstructStatsRow reconstructs a row from persistence, enforcing the
// counting invariants.
func ReconstructStatsRow(
	id uint,
	resourceID uint,
	languageCode string,
	total, translated, untranslated, reviewed int,
	totalWords, translatedWords, untranslatedWords int,
	lastUpdate *time.Time,
	lastCommitterID *uint,
	updatedAt time.Time,
) (*StatsRow, error) {
	if id == 0 {
		return nil, fmt.Errorf("stats row ID cannot be zero")
	}
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if languageCode == "" {
		return nil, fmt.Errorf("language code is required")
	}
	if total < 0 || translated < 0 || untranslated < 0 || reviewed < 0 {
		return nil, fmt.Errorf("stats counts cannot be negative")
	}
	if translated+untranslated != total {
		return nil, fmt.Errorf("count conservation violated: %d translated + %d untranslated != %d total",
			translated, untranslated, total)
	}
	if reviewed > translated {
		return nil, fmt.Errorf("reviewed count %d exceeds translated count %d", reviewed, translated)
	}

	return &StatsRow{
		id:                id,
		resourceID:        resourceID,
		languageCode:      languageCode,
		total:             total,
		translated:        translated,
		untranslated:      untranslated,
		reviewed:          reviewed,
		totalWords:        totalWords,
		translatedWords:   translatedWords,
		untranslatedWords: untranslatedWords,
		lastUpdate:        lastUpdate,
		lastCommitterID:   lastCommitterID,
		updatedAt:         updatedAt,
	}, nil
}

// ID returns the row ID
func (s *StatsRow) ID() uint {
	return s.id
}

// ResourceID returns the resource this row aggregates
func (s *StatsRow) ResourceID() uint {
	return s.resourceID
}

// LanguageCode returns the language this row aggregates
func (s *StatsRow) LanguageCode() string {
	return s.languageCode
}

// Total returns the number of source entities
func (s *StatsRow) Total() int {
	return s.total
}

// Translated returns the number of fully translated entities
func (s *StatsRow) Translated() int {
	return s.translated
}

// Untranslated returns the number of entities with no or partial coverage
func (s *StatsRow) Untranslated() int {
	return s.untranslated
}

// Reviewed returns the number of translated entities whose rows are all
// reviewed
func (s *StatsRow) Reviewed() int {
	return s.reviewed
}

// TotalWords returns the source word count over all entities
func (s *StatsRow) TotalWords() int {
	return s.totalWords
}

// TranslatedWords returns the word workload over existing translation rows
func (s *StatsRow) TranslatedWords() int {
	return s.translatedWords
}

// UntranslatedWords returns the source word count of untranslated entities
func (s *StatsRow) UntranslatedWords() int {
	return s.untranslatedWords
}

// LastUpdate returns the newest translation timestamp, or nil if no rows
// exist
func (s *StatsRow) LastUpdate() *time.Time {
	return s.lastUpdate
}

// LastCommitterID returns the author of the newest translation, or nil
func (s *StatsRow) LastCommitterID() *uint {
	return s.lastCommitterID
}

// UpdatedAt returns when the row itself was last recomputed
func (s *StatsRow) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the row ID (only for persistence layer use)
func (s *StatsRow) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("stats row ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("stats row ID cannot be zero")
	}
	s.id = id
	return nil
}

// Percentage returns the translated percentage as an integer 0-100. An
// empty resource is 0%, never a division error.
func (s *StatsRow) Percentage() int {
	if s.total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.translated) / float64(s.total)))
}

// ReviewedPercentage returns the reviewed percentage as an integer 0-100.
func (s *StatsRow) ReviewedPercentage() int {
	if s.total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.reviewed) / float64(s.total)))
}
