// Package formatter renders free-text model reports as HTML fragments.
//
// Each input line is classified on its own (see Classify); the only state
// carried between lines is whether a bullet list is open.
package formatter

import (
	"strings"
)

const (
	spacerBlock = `<div class="response-spacer"></div>`
	listOpen    = `<ul class="response-list">`
	listClose   = `</ul>`
)

// Format converts text into an HTML fragment. Empty text is returned as is.
// Content is emitted verbatim, without HTML escaping.
func Format(text string) string {
	if text == "" {
		return text
	}
	text = strings.ReplaceAll(text, "**", "")
	acc := &accumulator{}
	for _, raw := range strings.Split(text, "\n") {
		acc.add(Classify(raw))
	}
	return acc.finish()
}

type accumulator struct {
	blocks []string
	inList bool
}

func (a *accumulator) add(line Line) {
	if line.Kind != KindBullet {
		a.closeList()
	}
	switch line.Kind {
	case KindBlank:
		a.blocks = append(a.blocks, spacerBlock)
	case KindHeader:
		a.blocks = append(a.blocks, `<div class="response-header"><span class="header-icon">`+line.Icon+`</span> `+line.Text+`</div>`)
	case KindSubHeader:
		a.blocks = append(a.blocks, `<div class="response-subheader"><span class="label">`+line.Label+`:</span> <span class="value">`+line.Value+`</span></div>`)
	case KindBullet:
		if !a.inList {
			a.blocks = append(a.blocks, listOpen)
			a.inList = true
		}
		a.blocks = append(a.blocks, `<li class="response-bullet">`+line.Text+`</li>`)
	case KindNumbered:
		a.blocks = append(a.blocks, `<div class="response-numbered">`+line.Text+`</div>`)
	default:
		a.blocks = append(a.blocks, `<div class="response-content">`+line.Text+`</div>`)
	}
}

func (a *accumulator) closeList() {
	if a.inList {
		a.blocks = append(a.blocks, listClose)
		a.inList = false
	}
}

func (a *accumulator) finish() string {
	a.closeList()
	return strings.Join(a.blocks, "\n")
}
