package behavior

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
)

// FormValidation stops the submission of forms
// with fields violating their constraints
// and marks every submitted form as validated.
type FormValidation struct {
	page *Page
}

func bindFormValidation(p *Page) *FormValidation {
	v := &FormValidation{page: p}
	p.Bus.Subscribe(events.TypeSubmit, v.onSubmit)
	return v
}

func (v *FormValidation) onSubmit(ev events.Event) {
	form := ev.Target()
	if invalid := InvalidFields(form); len(invalid) > 0 {
		ev.PreventDefault()
		ev.StopPropagation()
		v.page.Logger.Debug("Form invalid",
			zap.String("form", dom.AttrOr(form, "id", "")),
			zap.Int("invalidFields", len(invalid)),
		)
	}
	dom.AddClass(form, "was-validated")
}

// FormValid reports if no field of form violates its constraints.
func FormValid(form *html.Node) bool {
	return len(InvalidFields(form)) == 0
}

// InvalidFields returns the enabled fields of form
// violating a required, min or max constraint.
func InvalidFields(form *html.Node) (invalid []*html.Node) {
	for _, field := range dom.FormFields(form) {
		if !FieldValid(field) {
			invalid = append(invalid, field)
		}
	}
	return invalid
}

// FieldValid checks the constraints of a single form field.
// Disabled fields and fields not taking user input are always valid.
func FieldValid(field *html.Node) bool {
	if dom.HasAttr(field, "disabled") {
		return true
	}
	typ := strings.ToLower(dom.AttrOr(field, "type", "text"))
	if dom.IsTag(field, atom.Input) {
		switch typ {
		case "hidden", "submit", "button", "reset", "image":
			return true
		case "checkbox", "radio":
			return !dom.HasAttr(field, "required") || dom.HasAttr(field, "checked")
		}
	}

	value := dom.FieldValue(field)
	if value == "" {
		return !dom.HasAttr(field, "required")
	}
	if dom.IsTag(field, atom.Input) && typ == "number" {
		num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		if limit, ok := numberAttr(field, "min"); ok && num < limit {
			return false
		}
		if limit, ok := numberAttr(field, "max"); ok && num > limit {
			return false
		}
	}
	return true
}

func numberAttr(n *html.Node, key string) (float64, bool) {
	s, ok := dom.Attr(n, key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

// bindSubmitLoading replaces the content of a clicked submit button
// with a loading spinner and disables it if its form is valid.
func bindSubmitLoading(p *Page) {
	p.Bus.Subscribe(events.TypeClick, func(ev events.Event) {
		button := dom.Closest(ev.Target(), isSubmitButton)
		if button == nil {
			return
		}
		form := dom.Closest(button, dom.TagMatcher(atom.Form))
		if form == nil || !FormValid(form) {
			return
		}
		dom.RemoveChildren(button)
		button.AppendChild(dom.NewElement(atom.Span, html.Attribute{Key: "class", Val: "loading"}))
		button.AppendChild(&html.Node{Type: html.TextNode, Data: " " + p.Labels.Processing()})
		dom.SetAttr(button, "disabled", "")
	})
}
