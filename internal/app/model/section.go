package model

import "errors"

// SectionKind identifies one of the five dependent wizard sections.
// The set is closed: unknown tags are rejected at parse time instead of
// falling through a dynamic lookup.
type SectionKind string

const (
	SectionContact   SectionKind = "contact"
	SectionCategory  SectionKind = "category"
	SectionAddresses SectionKind = "addresses"
	SectionBank      SectionKind = "bank"
	SectionDocuments SectionKind = "documents"
)

// ErrUnknownSectionKind is returned for a section key outside the closed set
var ErrUnknownSectionKind = errors.New("unknown section kind")

// SectionKinds lists the dependent sections in wizard order
func SectionKinds() []SectionKind {
	return []SectionKind{
		SectionContact,
		SectionCategory,
		SectionAddresses,
		SectionBank,
		SectionDocuments,
	}
}

// ParseSectionKind validates a section key from the request path
func ParseSectionKind(s string) (SectionKind, error) {
	switch SectionKind(s) {
	case SectionContact:
		return SectionContact, nil
	case SectionCategory:
		return SectionCategory, nil
	case SectionAddresses:
		return SectionAddresses, nil
	case SectionBank:
		return SectionBank, nil
	case SectionDocuments:
		return SectionDocuments, nil
	default:
		return "", ErrUnknownSectionKind
	}
}

// Section is implemented by the five per-kind records. UpsertColumns
// names the payload columns an upsert may overwrite; the generated
// section id and created_at are never in that list, so a resubmission
// updates in place without reassigning identifiers.
type Section interface {
	Kind() SectionKind
	BusinessRef() string
	StampBusiness(businessID string)
	UpsertColumns() []string
}
