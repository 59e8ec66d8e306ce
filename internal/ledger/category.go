package ledger

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
)

// IgnoreCategoryName is the category users assign to records they want kept out of
// spending totals.
const IgnoreCategoryName = "Ignore"

// CategoryTag drives downstream behaviour for a category.
type CategoryTag string

const (
	CategoryTagPersonal CategoryTag = "PERSONAL"
	CategoryTagShared   CategoryTag = "SHARED"
	CategoryTagSavings  CategoryTag = "SAVINGS"
	CategoryTagBusiness CategoryTag = "BUSINESS"
	CategoryTagIgnore   CategoryTag = "IGNORE"
)

func (c CategoryTag) Valid() bool {
	switch c {
	case CategoryTagPersonal, CategoryTagShared, CategoryTagSavings, CategoryTagBusiness, CategoryTagIgnore:
		return true
	}
	return false
}

// ParseCategoryTag converts stored text into a CategoryTag.
func ParseCategoryTag(s string) (CategoryTag, error) {
	c := CategoryTag(s)
	if !c.Valid() {
		return "", &UnknownValueError{Enum: "category tag", Value: s}
	}
	return c, nil
}

// Category is a versioned label. The ID is never reused or reassigned; the name may
// change over time, which is why transactions carry a name snapshot.
type Category struct {
	ID        uuid.UUID
	Name      string
	Tag       CategoryTag
	CreatedAt int64
	UpdatedAt int64
	Active    bool
}

// NewCategory creates an active category with a fresh stable id.
func NewCategory(name string, tag CategoryTag, nowMillis int64) (*Category, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("NewCategory: generate id: %w", err)
	}
	return &Category{
		ID:        id,
		Name:      name,
		Tag:       tag,
		CreatedAt: nowMillis,
		UpdatedAt: nowMillis,
		Active:    true,
	}, nil
}

// Rename changes the display name. Existing snapshots are untouched.
func (c *Category) Rename(name string, nowMillis int64) {
	c.Name = name
	c.UpdatedAt = nowMillis
}

// Deactivate soft-deletes the category.
func (c *Category) Deactivate(nowMillis int64) {
	c.Active = false
	c.UpdatedAt = nowMillis
}

// Ref builds the versioned reference a transaction stores: the id plus the name as
// it reads right now.
func (c *Category) Ref() CategoryRef {
	id := c.ID
	name := c.Name
	return CategoryRef{ID: &id, NameSnapshot: &name}
}

// CategoryRef is the category as a transaction sees it. Legacy free text and the
// versioned (ID, NameSnapshot) pair may coexist; Name decides which one is shown.
type CategoryRef struct {
	Legacy       *string
	ID           *uuid.UUID
	NameSnapshot *string
}

// LegacyCategory builds a ref that only carries the legacy free-text value.
func LegacyCategory(name string) CategoryRef {
	return CategoryRef{Legacy: &name}
}

// Name returns the display name of the category. A non-blank snapshot wins over the
// legacy text; ok is false when neither is present.
func (r CategoryRef) Name() (name string, ok bool) {
	if !IsBlank(r.NameSnapshot) {
		return *r.NameSnapshot, true
	}
	if !IsBlank(r.Legacy) {
		return *r.Legacy, true
	}
	return "", false
}

// IsIgnore reports whether the displayed category is the Ignore category.
func (r CategoryRef) IsIgnore() bool {
	name, ok := r.Name()
	return ok && strings.EqualFold(strings.TrimSpace(name), IgnoreCategoryName)
}

func (r CategoryRef) clone() CategoryRef {
	c := CategoryRef{
		Legacy:       cloneString(r.Legacy),
		NameSnapshot: cloneString(r.NameSnapshot),
	}
	if r.ID != nil {
		id := *r.ID
		c.ID = &id
	}
	return c
}
