package resource

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"transtats/internal/domain/translation"
)

// SourceEntity represents one translatable unit within a resource,
// identified by the hash of its source text and disambiguation context.
type SourceEntity struct {
	id           uint
	resourceID   uint
	stringHash   string
	sourceString string
	context      string
	pluralized   bool
	position     int
	comment      string
	occurrences  string
	wordCount    int
	createdAt    time.Time
	updatedAt    time.Time
}

// HashSourceString computes the identity hash of a source string within its
// context. Distinct contexts keep otherwise identical strings apart.
func HashSourceString(sourceString, context string) string {
	sum := md5.Sum([]byte(sourceString + ":" + context))
	return hex.EncodeToString(sum[:])
}

// NewSourceEntity creates a new source entity for a resource.
func NewSourceEntity(resourceID uint, sourceString, context string, pluralized bool, position int) (*SourceEntity, error) {
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if sourceString == "" {
		return nil, fmt.Errorf("source string is required")
	}

	now := time.Now()
	return &SourceEntity{
		resourceID:   resourceID,
		stringHash:   HashSourceString(sourceString, context),
		sourceString: sourceString,
		context:      context,
		pluralized:   pluralized,
		position:     position,
		wordCount:    translation.CountWords(sourceString),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructSourceEntity reconstructs a source entity from persistence.
func ReconstructSourceEntity(
	id uint,
	resourceID uint,
	stringHash string,
	sourceString string,
	context string,
	pluralized bool,
	position int,
	comment string,
	occurrences string,
	wordCount int,
	createdAt, updatedAt time.Time,
) (*SourceEntity, error) {
	if id == 0 {
		return nil, fmt.Errorf("source entity ID cannot be zero")
	}
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if stringHash == "" {
		return nil, fmt.Errorf("string hash is required")
	}
	if wordCount < 0 {
		return nil, fmt.Errorf("word count cannot be negative")
	}

	return &SourceEntity{
		id:           id,
		resourceID:   resourceID,
		stringHash:   stringHash,
		sourceString: sourceString,
		context:      context,
		pluralized:   pluralized,
		position:     position,
		comment:      comment,
		occurrences:  occurrences,
		wordCount:    wordCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the entity ID
func (e *SourceEntity) ID() uint {
	return e.id
}

// ResourceID returns the owning resource ID
func (e *SourceEntity) ResourceID() uint {
	return e.resourceID
}

// StringHash returns the identity hash of text plus context
func (e *SourceEntity) StringHash() string {
	return e.stringHash
}

// SourceString returns the source text
func (e *SourceEntity) SourceString() string {
	return e.sourceString
}

// Context returns the disambiguation context
func (e *SourceEntity) Context() string {
	return e.context
}

// Pluralized reports whether the entity needs one translation per plural
// category of the target language
func (e *SourceEntity) Pluralized() bool {
	return e.pluralized
}

// Position returns the entity's order within the resource
func (e *SourceEntity) Position() int {
	return e.position
}

// Comment returns the developer comment
func (e *SourceEntity) Comment() string {
	return e.comment
}

// Occurrences returns the free-form provenance text
func (e *SourceEntity) Occurrences() string {
	return e.occurrences
}

// WordCount returns the source string's word count
func (e *SourceEntity) WordCount() int {
	return e.wordCount
}

// CreatedAt returns when the entity was created
func (e *SourceEntity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns when the entity was last updated
func (e *SourceEntity) UpdatedAt() time.Time {
	return e.updatedAt
}

// SetID sets the entity ID (only for persistence layer use)
func (e *SourceEntity) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("source entity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("source entity ID cannot be zero")
	}
	e.id = id
	return nil
}

// UpdateSourceString replaces the source text, recomputing the identity hash
// and word count.
func (e *SourceEntity) UpdateSourceString(sourceString string) error {
	if sourceString == "" {
		return fmt.Errorf("source string cannot be empty")
	}
	if e.sourceString == sourceString {
		return nil
	}
	e.sourceString = sourceString
	e.stringHash = HashSourceString(sourceString, e.context)
	e.wordCount = translation.CountWords(sourceString)
	e.updatedAt = time.Now()
	return nil
}

// SetPosition updates the entity's order within the resource.
func (e *SourceEntity) SetPosition(position int) {
	if e.position == position {
		return
	}
	e.position = position
	e.updatedAt = time.Now()
}

// SetComment updates the developer comment.
func (e *SourceEntity) SetComment(comment string) {
	if e.comment == comment {
		return
	}
	e.comment = comment
	e.updatedAt = time.Now()
}

// SetOccurrences updates the provenance text.
func (e *SourceEntity) SetOccurrences(occurrences string) {
	if e.occurrences == occurrences {
		return
	}
	e.occurrences = occurrences
	e.updatedAt = time.Now()
}
