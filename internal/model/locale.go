package model

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Locale identifies a display language.
type Locale string

const (
	// LocaleEN is English, the designated default locale.
	LocaleEN Locale = "en"
	// LocaleID is Indonesian.
	LocaleID Locale = "id"
)

// DefaultLocale is the locale used when a requested locale has no entry.
const DefaultLocale = LocaleEN

// ParseLocale maps a raw locale string to a supported Locale, defaulting to
// DefaultLocale for anything unknown.
func ParseLocale(s string) Locale {
	switch Locale(s) {
	case LocaleID:
		return LocaleID
	default:
		return DefaultLocale
	}
}

// LocalizedString is text that may vary by display locale. Historically it
// was stored either as a bare string or as a per-locale document, so both
// forms decode into it. Bare keeps the stored bare-string form; when set it
// wins for every locale.
type LocalizedString struct {
	Bare string `json:"-" bson:"-"`
	ID   string `json:"id" bson:"id,omitempty"`
	EN   string `json:"en" bson:"en,omitempty"`
}

// NewLocalized builds a per-locale value.
func NewLocalized(id, en string) LocalizedString {
	return LocalizedString{ID: id, EN: en}
}

// Get returns the value for the given locale with no cross-locale fallback:
// the bare form if stored bare, otherwise the locale's own entry (possibly
// empty). Field-level merging uses this.
func (l LocalizedString) Get(locale Locale) string {
	if l.Bare != "" {
		return l.Bare
	}
	switch locale {
	case LocaleID:
		return l.ID
	default:
		return l.EN
	}
}

// Resolve returns the display value for a locale: a bare stored string is
// used verbatim, otherwise the requested locale's entry, then the default
// locale's entry, then the caller-supplied fallback.
func (l LocalizedString) Resolve(locale Locale, fallback string) string {
	if l.Bare != "" {
		return l.Bare
	}
	if v := l.Get(locale); v != "" {
		return v
	}
	if v := l.Get(DefaultLocale); v != "" {
		return v
	}
	return fallback
}

// IsZero reports whether no value is stored in any form. Makes omitempty
// work for bson marshalling of partial updates.
func (l LocalizedString) IsZero() bool {
	return l.Bare == "" && l.ID == "" && l.EN == ""
}

// normalized spreads a bare stored string across every locale so the
// canonical model always carries the per-locale form.
func (l LocalizedString) normalized() LocalizedString {
	if l.Bare != "" {
		return LocalizedString{ID: l.Bare, EN: l.Bare}
	}
	return LocalizedString{ID: l.ID, EN: l.EN}
}

type localizedDoc struct {
	ID string `bson:"id" json:"id"`
	EN string `bson:"en" json:"en"`
}

// UnmarshalBSONValue accepts either a bare string or an {id, en} document.
func (l *LocalizedString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		rv := bson.RawValue{Type: t, Value: data}
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("malformed string value")
		}
		*l = LocalizedString{Bare: s}
		return nil
	case bsontype.EmbeddedDocument:
		var doc localizedDoc
		if err := bson.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decode localized document: %w", err)
		}
		*l = LocalizedString{ID: doc.ID, EN: doc.EN}
		return nil
	case bsontype.Null, bsontype.Undefined:
		*l = LocalizedString{}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into a localized string", t)
	}
}

// MarshalBSONValue always writes the per-locale document form.
func (l LocalizedString) MarshalBSONValue() (bsontype.Type, []byte, error) {
	n := l.normalized()
	return bson.MarshalValue(localizedDoc{ID: n.ID, EN: n.EN})
}

// UnmarshalJSON accepts either a bare string or an {id, en} object.
func (l *LocalizedString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LocalizedString{Bare: s}
		return nil
	}
	var doc localizedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode localized value: %w", err)
	}
	*l = LocalizedString{ID: doc.ID, EN: doc.EN}
	return nil
}

// MarshalJSON always emits the per-locale object form.
func (l LocalizedString) MarshalJSON() ([]byte, error) {
	n := l.normalized()
	return json.Marshal(localizedDoc{ID: n.ID, EN: n.EN})
}
