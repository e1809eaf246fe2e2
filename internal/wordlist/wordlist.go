// Package wordlist loads the built-in word bank.
package wordlist

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed bank.toml
var bankTOML []byte

type bankFile struct {
	Groups []group `toml:"group"`
}

type group struct {
	Name  string   `toml:"name"`
	Words []string `toml:"words"`
}

// Load decodes the embedded word bank.
func Load() ([]string, error) {
	return Decode(bankTOML)
}

// Decode parses a TOML word bank and returns its words in file order.
// Repeated words are kept once so every word is equally likely.
func Decode(data []byte) ([]string, error) {
	var bank bankFile
	if _, err := toml.Decode(string(data), &bank); err != nil {
		return nil, fmt.Errorf("failed to decode word bank: %w", err)
	}
	keep := BankFilter()
	var words []string
	for _, g := range bank.Groups {
		for _, w := range g.Words {
			if !keep(w) {
				return nil, fmt.Errorf("invalid word %q in group %q", w, g.Name)
			}
			words = append(words, w)
		}
	}
	words = Dedupe(words)
	if len(words) == 0 {
		return nil, fmt.Errorf("word bank is empty")
	}
	return words, nil
}
