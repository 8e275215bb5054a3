// Package labels localizes the user visible texts
// of the page behaviors using message files
// embedded into the binary.
package labels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	pagetable "github.com/domonda/go-pagetable"
)

//go:embed locales/*.toml
var locales embed.FS

var defaultMessages = map[string]*i18n.Message{
	"MovementType": {ID: "MovementType", Other: "Movement Type"},
	"Transfer":     {ID: "Transfer", Other: "Transfer"},
	"StockIn":      {ID: "StockIn", Other: "Stock In"},
	"StockOut":     {ID: "StockOut", Other: "Stock Out"},
	"Processing":   {ID: "Processing", Other: "Processing..."},
}

// NewBundle returns a bundle with English as default language
// and all embedded message files loaded.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(locales, file); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", file, err)
		}
	}
	return bundle, nil
}

// Localizer returns the labels for one language.
// Messages missing in a language fall back to English.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns a Localizer for tag.
// Unsupported languages use English.
func New(tag language.Tag) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return &Localizer{tag: tag, localizer: i18n.NewLocalizer(bundle, tag.String())}, nil
}

// English returns a Localizer for English.
// It panics if the embedded message files can't be loaded.
func English() *Localizer {
	l, err := New(language.English)
	if err != nil {
		panic(err)
	}
	return l
}

// Language returns the requested language.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// MovementType returns the prefix of the movement type indicator.
func (l *Localizer) MovementType() string {
	return l.localize("MovementType")
}

// Processing returns the content of a submit button while its form is sent.
func (l *Localizer) Processing() string {
	return l.localize("Processing")
}

// Classification returns the label of c
// or an empty string for NoClassification.
func (l *Localizer) Classification(c pagetable.Classification) string {
	id := c.MessageID()
	if id == "" {
		return ""
	}
	return l.localize(id)
}

func (l *Localizer) localize(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: defaultMessages[id],
	})
	if msg == "" && err != nil {
		if def, ok := defaultMessages[id]; ok {
			return def.Other
		}
		return id
	}
	return msg
}
