package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"crypto/sha512"
)

// SeedLength is the byte length of the PBKDF2-stretched seed.
const SeedLength = 64

const seedIterations = 2048

// validWordCounts per BIP-39: entropy of 128/160/192/224/256 bits.
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// Mnemonic is a validated BIP-39 phrase: an ordered word sequence from
// a single word list, carrying a checksum over the entropy it encodes.
type Mnemonic struct {
	language Language
	words    []string
}

// FromPhrase parses and validates a phrase. The word list is detected
// automatically; phrases whose words match several lists fail
// ErrAmbiguousWordList unless exactly one matching list is marked
// unique. The phrase is NFKD-normalised before lookup.
func FromPhrase(phrase string) (Mnemonic, error) {
	words := strings.Fields(norm.NFKD.String(phrase))
	if !validWordCounts[len(words)] {
		return Mnemonic{}, badWordCount(len(words))
	}

	lang, err := detectLanguage(words)
	if err != nil {
		return Mnemonic{}, err
	}

	m := Mnemonic{language: lang, words: words}
	if _, err := m.ToEntropy(); err != nil {
		return Mnemonic{}, err
	}
	return m, nil
}

// FromEntropy encodes entropy as a phrase in the given language.
// Entropy must be 128-256 bits long in 32-bit steps.
func FromEntropy(entropy []byte, lang Language) (Mnemonic, error) {
	bits := len(entropy) * 8
	if bits < 128 || bits > 256 || bits%32 != 0 {
		return Mnemonic{}, badEntropyBitCount(bits)
	}
	list := lang.wordList()
	if list == nil {
		return Mnemonic{}, fmt.Errorf("unsupported language %d", lang)
	}

	csBits := bits / 32
	sum := sha256.Sum256(entropy)
	// The checksum never exceeds 8 bits, so a single appended byte
	// carries it.
	stream := make([]byte, len(entropy)+1)
	copy(stream, entropy)
	stream[len(entropy)] = sum[0]

	wordCount := (bits + csBits) / 11
	words := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		idx := 0
		for b := 0; b < 11; b++ {
			idx <<= 1
			if bitAt(stream, i*11+b) {
				idx |= 1
			}
		}
		words[i] = list[idx]
	}
	return Mnemonic{language: lang, words: words}, nil
}

// NewRandom draws fresh entropy for a phrase of the given word count
// (12, 15, 18, 21 or 24) in the given language.
func NewRandom(wordCount int, lang Language) (Mnemonic, error) {
	if !validWordCounts[wordCount] {
		return Mnemonic{}, badWordCount(wordCount)
	}
	entropy := make([]byte, wordCount*11*32/33/8)
	if _, err := rand.Read(entropy); err != nil {
		return Mnemonic{}, err
	}
	return FromEntropy(entropy, lang)
}

// ToEntropy unpacks the phrase back into its entropy bytes, verifying
// the checksum.
func (m Mnemonic) ToEntropy() ([]byte, error) {
	totalBits := len(m.words) * 11
	csBits := totalBits / 33
	entBits := totalBits - csBits

	stream := make([]byte, (totalBits+7)/8)
	for i, w := range m.words {
		idx, ok := m.language.wordIndex(w)
		if !ok {
			return nil, unknownWord(w)
		}
		for b := 0; b < 11; b++ {
			if idx&(1<<(10-b)) != 0 {
				setBit(stream, i*11+b)
			}
		}
	}

	entropy := make([]byte, entBits/8)
	copy(entropy, stream[:entBits/8])

	sum := sha256.Sum256(entropy)
	for b := 0; b < csBits; b++ {
		if bitAt(stream, entBits+b) != bitAt(sum[:], b) {
			return nil, ErrInvalidChecksum
		}
	}
	return entropy, nil
}

// ToSeed stretches the phrase into a 64-byte seed:
// PBKDF2-HMAC-SHA512 over NFKD(words) with salt "mnemonic"+NFKD(passphrase)
// and 2048 iterations.
func (m Mnemonic) ToSeed(passphrase string) []byte {
	password := norm.NFKD.String(strings.Join(m.words, " "))
	salt := "mnemonic" + norm.NFKD.String(passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedLength, sha512.New)
}

// Language returns the word list the phrase was drawn from.
func (m Mnemonic) Language() Language {
	return m.language
}

// Words returns a copy of the phrase's words.
func (m Mnemonic) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// String joins the words with single spaces.
func (m Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

// detectLanguage finds the word list containing every word. When
// several lists match, a single unique-words list among them wins;
// otherwise the phrase is ambiguous.
func detectLanguage(words []string) (Language, error) {
	var candidates []Language
	for _, lang := range AllLanguages() {
		all := true
		for _, w := range words {
			if _, ok := lang.wordIndex(w); !ok {
				all = false
				break
			}
		}
		if all {
			candidates = append(candidates, lang)
		}
	}

	switch len(candidates) {
	case 0:
		// No list holds every word. Anchor on the lists containing the
		// first word and report the first word missing from all of them.
		var anchors []Language
		for _, lang := range AllLanguages() {
			if _, ok := lang.wordIndex(words[0]); ok {
				anchors = append(anchors, lang)
			}
		}
		if len(anchors) == 0 {
			return 0, unknownWord(words[0])
		}
		for _, w := range words[1:] {
			inAny := false
			for _, lang := range anchors {
				if _, ok := lang.wordIndex(w); ok {
					inAny = true
					break
				}
			}
			if !inAny {
				return 0, unknownWord(w)
			}
		}
		return 0, ambiguousWordList(anchors)
	case 1:
		return candidates[0], nil
	default:
		var unique []Language
		for _, lang := range candidates {
			if lang.uniqueWords() {
				unique = append(unique, lang)
			}
		}
		if len(unique) == 1 {
			return unique[0], nil
		}
		return 0, ambiguousWordList(candidates)
	}
}

func bitAt(data []byte, i int) bool {
	return data[i/8]&(1<<(7-i%8)) != 0
}

func setBit(data []byte, i int) {
	data[i/8] |= 1 << (7 - i%8)
}
