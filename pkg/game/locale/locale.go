// Package locale installs the embedded message catalogues used for console output.
package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when a requested catalogue is not embedded
const DefaultLanguage = "en"

const domain = "default"

//go:embed po/*.po
var catalogues embed.FS

// Load parses the catalogue for lang and makes it the global gotext storage.
// Unknown languages fall back to DefaultLanguage. Returns the language loaded.
func Load(lang string) (string, error) {
	data, err := catalogues.ReadFile("po/" + lang + ".po")
	if err != nil {
		lang = DefaultLanguage
		data, err = catalogues.ReadFile("po/" + lang + ".po")
		if err != nil {
			return "", fmt.Errorf("locale: default catalogue missing: %w", err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)

	return lang, nil
}

// Languages lists the embedded catalogues
func Languages() []string {
	entries, err := catalogues.ReadDir("po")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		langs = append(langs, name[:len(name)-len(".po")])
	}
	return langs
}
