// Package i18n holds the user-facing strings of the report in every supported
// language. Russian is the default.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English text.
const (
	MsgPrompt  = "Enter publisher name or ID: "
	MsgNoSales = "No sales for publisher '%s'."
)

var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

func init() {
	set := func(tag language.Tag, key, text string) {
		if err := message.SetString(tag, key, text); err != nil {
			panic(err)
		}
	}

	set(language.Russian, MsgPrompt, "Введите имя или ID издателя: ")
	set(language.Russian, MsgNoSales, "Нет продаж для издателя '%s'.")

	set(language.English, MsgPrompt, MsgPrompt)
	set(language.English, MsgNoSales, MsgNoSales)
}

type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter picks the closest supported language for lang. Unknown or
// malformed values fall back to Russian.
func NewPrinter(lang string) *Printer {
	tag := language.Russian
	if parsed, err := language.Parse(lang); err == nil {
		_, idx, confidence := matcher.Match(parsed)
		if confidence != language.No {
			tag = supported[idx]
		}
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag)}
}

func (p *Printer) Language() language.Tag {
	return p.tag
}

func (p *Printer) Prompt() string {
	return p.p.Sprintf(MsgPrompt)
}

func (p *Printer) NoSales(input string) string {
	return p.p.Sprintf(MsgNoSales, input)
}
