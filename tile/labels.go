package tile

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. They double as the English text.
const (
	msgPageOf      = "Page %d of %d"
	msgGrid        = "Grid: Row %d, Col %d"
	msgLeftHelper  = "← Left: Align with Page %d"
	msgTopHelper   = "↑ Top: Align with Page %d"
	msgAlignLeft   = "Align edge →"
	msgAlignRight  = "← Align edge"
	msgAlignTop    = "Align edge ↓"
	msgAlignBottom = "Align edge ↑"
	msgScaleTitle  = "SCALE VERIFICATION"
	msgScaleHint   = "Measure between end caps"
	msgScaleLength = "%.1f cm"
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		msgPageOf:      "Seite %d von %d",
		msgGrid:        "Raster: Zeile %d, Spalte %d",
		msgLeftHelper:  "← Links: an Seite %d anlegen",
		msgTopHelper:   "↑ Oben: an Seite %d anlegen",
		msgAlignLeft:   "Kante anlegen →",
		msgAlignRight:  "← Kante anlegen",
		msgAlignTop:    "Kante anlegen ↓",
		msgAlignBottom: "Kante anlegen ↑",
		msgScaleTitle:  "MASSSTAB PRÜFEN",
		msgScaleHint:   "Zwischen den Endmarken messen",
	},
	language.French: {
		msgPageOf:      "Page %d sur %d",
		msgGrid:        "Grille : ligne %d, colonne %d",
		msgLeftHelper:  "← Gauche : aligner avec la page %d",
		msgTopHelper:   "↑ Haut : aligner avec la page %d",
		msgAlignLeft:   "Aligner le bord →",
		msgAlignRight:  "← Aligner le bord",
		msgAlignTop:    "Aligner le bord ↓",
		msgAlignBottom: "Aligner le bord ↑",
		msgScaleTitle:  "VÉRIFICATION DE L'ÉCHELLE",
		msgScaleHint:   "Mesurer entre les butées",
	},
}

func init() {
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// Keys and messages are constant; SetString only fails on
			// malformed messages.
			_ = message.SetString(tag, key, msg)
		}
	}
}

// Languages returns the languages page text is translated into, English
// first.
func Languages() []language.Tag {
	return []language.Tag{language.English, language.German, language.French}
}

func newPrinter(tag language.Tag) *message.Printer {
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
