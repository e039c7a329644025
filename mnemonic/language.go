// Package mnemonic implements BIP-39 mnemonic phrases: entropy to
// words, phrase validation, and the PBKDF2 seed stretch.
package mnemonic

import (
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language selects the word list a mnemonic is drawn from. English is
// the interoperable default; the other lists are provided for wallets
// that localise their phrases.
type Language int

const (
	English Language = iota
	SimplifiedChinese
	TraditionalChinese
	Czech
	French
	Italian
	Japanese
	Korean
	Spanish
)

// AllLanguages lists every supported word list, in detection order.
func AllLanguages() []Language {
	return []Language{
		English,
		SimplifiedChinese,
		TraditionalChinese,
		Czech,
		French,
		Italian,
		Japanese,
		Korean,
		Spanish,
	}
}

func (l Language) String() string {
	switch l {
	case English:
		return "english"
	case SimplifiedChinese:
		return "chinese-simplified"
	case TraditionalChinese:
		return "chinese-traditional"
	case Czech:
		return "czech"
	case French:
		return "french"
	case Italian:
		return "italian"
	case Japanese:
		return "japanese"
	case Korean:
		return "korean"
	case Spanish:
		return "spanish"
	default:
		return "unknown"
	}
}

// wordList returns the 2048-entry list for the language.
func (l Language) wordList() []string {
	switch l {
	case English:
		return wordlists.English
	case SimplifiedChinese:
		return wordlists.ChineseSimplified
	case TraditionalChinese:
		return wordlists.ChineseTraditional
	case Czech:
		return wordlists.Czech
	case French:
		return wordlists.French
	case Italian:
		return wordlists.Italian
	case Japanese:
		return wordlists.Japanese
	case Korean:
		return wordlists.Korean
	case Spanish:
		return wordlists.Spanish
	default:
		return nil
	}
}

// uniqueWords reports whether every word in this list appears in no
// other supported list. A match against a unique list is never
// ambiguous. English/French and the two Chinese lists overlap.
func (l Language) uniqueWords() bool {
	switch l {
	case Czech, Italian, Japanese, Korean, Spanish:
		return true
	default:
		return false
	}
}

// index maps words to their list position, built lazily per language.
var wordIndexes [9]map[string]int

func init() {
	for _, l := range AllLanguages() {
		m := make(map[string]int, 2048)
		for i, w := range l.wordList() {
			m[w] = i
		}
		wordIndexes[l] = m
	}
}

// wordIndex looks a word up in the language's list.
func (l Language) wordIndex(word string) (int, bool) {
	i, ok := wordIndexes[l][word]
	return i, ok
}
