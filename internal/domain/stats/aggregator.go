package stats

import (
	"context"
	"fmt"

	"transtats/internal/domain/language"
	"transtats/internal/domain/resource"
	"transtats/internal/domain/translation"
)

// Aggregator computes a StatsRow from the translation store. Compute is a
// pure read: it performs no writes, so a failed or repeated call is always
// safe to retry.
type Aggregator struct {
	entities     resource.SourceEntityRepository
	translations translation.Repository
}

// NewAggregator creates a new aggregator over the given stores.
func NewAggregator(entities resource.SourceEntityRepository, translations translation.Repository) *Aggregator {
	return &Aggregator{
		entities:     entities,
		translations: translations,
	}
}

// Compute aggregates the counts for one (resource, language) pair.
//
// An entity counts as translated when every plural category the language
// requires carries a non-empty string ("other" alone for plain entities).
// Categories present in storage but no longer required are ignored for that
// decision, but their words still count, so translator work is never thrown
// away silently. An entity counts as reviewed when it is translated and all
// of its existing rows are reviewed.
//
// For the resource's source language every entity is its own translation,
// so translated == total by construction.
func (a *Aggregator) Compute(ctx context.Context, res *resource.Resource, lang language.Language) (*StatsRow, error) {
	entities, err := a.entities.ListByResource(ctx, res.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list source entities: %w", err)
	}

	rows, err := a.translations.ListByResourceAndLanguage(ctx, res.ID(), lang.Code())
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}

	byEntity := make(map[uint][]*translation.Translation, len(entities))
	for _, row := range rows {
		byEntity[row.EntityID()] = append(byEntity[row.EntityID()], row)
	}

	stat, err := NewStatsRow(res.ID(), lang.Code())
	if err != nil {
		return nil, err
	}

	isSource := lang.Code() == res.SourceLanguageCode()
	required := language.Categories(lang)

	for _, entity := range entities {
		entityRows := byEntity[entity.ID()]

		stat.total++
		stat.totalWords += entity.WordCount()

		for _, row := range entityRows {
			stat.translatedWords += row.WordCount()

			if stat.lastUpdate == nil || row.UpdatedAt().After(*stat.lastUpdate) {
				updated := row.UpdatedAt()
				author := row.AuthorID()
				stat.lastUpdate = &updated
				stat.lastCommitterID = &author
			}
		}

		translated := isSource || entityTranslated(entity, entityRows, required)
		if translated {
			stat.translated++
			if entityReviewed(entityRows) {
				stat.reviewed++
			}
		} else {
			stat.untranslated++
			stat.untranslatedWords += entity.WordCount()
		}
	}

	if isSource {
		// Source strings are their own translations; the workload metric is
		// the source word count itself.
		stat.translatedWords = stat.totalWords
		stat.untranslatedWords = 0
	}

	return stat, nil
}

// entityTranslated decides coverage for one entity: plain entities need a
// non-empty "other" row, pluralized entities need every required category.
func entityTranslated(entity *resource.SourceEntity, rows []*translation.Translation, required []language.Category) bool {
	present := make(map[language.Category]bool, len(rows))
	for _, row := range rows {
		if row.IsTranslated() {
			present[row.Rule()] = true
		}
	}

	if !entity.Pluralized() {
		return present[language.CategoryOther]
	}

	for _, category := range required {
		if !present[category] {
			return false
		}
	}
	return true
}

// entityReviewed reports whether an entity's rows are unanimously reviewed.
// Only called for translated entities, so rows is never a partial group
// that accidentally passes.
func entityReviewed(rows []*translation.Translation) bool {
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if !row.Reviewed() {
			return false
		}
	}
	return true
}
