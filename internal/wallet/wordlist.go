package wallet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// WordlistSize is the number of words in every BIP-39 wordlist.
const WordlistSize = 2048

// Wordlist is a BIP-39 wordlist with a reverse index.
type Wordlist struct {
	Name      string
	Separator string
	words     []string
	index     map[string]int
}

func newWordlist(name string, words []string, sep string) *Wordlist {
	wl := &Wordlist{
		Name:      name,
		Separator: sep,
		words:     words,
		index:     make(map[string]int, len(words)),
	}
	for i, w := range words {
		wl.index[norm.NFKD.String(w)] = i
	}
	return wl
}

// Word returns the word at index i (0..2047).
func (wl *Wordlist) Word(i int) string {
	return wl.words[i]
}

// Index returns the position of word in the list.
func (wl *Wordlist) Index(word string) (int, bool) {
	i, ok := wl.index[norm.NFKD.String(word)]
	return i, ok
}

// Supported wordlists.
var (
	English            = newWordlist("english", wordlists.English, " ")
	Japanese           = newWordlist("japanese", wordlists.Japanese, "\u3000")
	Spanish            = newWordlist("spanish", wordlists.Spanish, " ")
	French             = newWordlist("french", wordlists.French, " ")
	Italian            = newWordlist("italian", wordlists.Italian, " ")
	Korean             = newWordlist("korean", wordlists.Korean, " ")
	Czech              = newWordlist("czech", wordlists.Czech, " ")
	ChineseSimplified  = newWordlist("chinese-simplified", wordlists.ChineseSimplified, " ")
	ChineseTraditional = newWordlist("chinese-traditional", wordlists.ChineseTraditional, " ")
)

var wordlistsByName = map[string]*Wordlist{
	English.Name:            English,
	Japanese.Name:           Japanese,
	Spanish.Name:            Spanish,
	French.Name:             French,
	Italian.Name:            Italian,
	Korean.Name:             Korean,
	Czech.Name:              Czech,
	ChineseSimplified.Name:  ChineseSimplified,
	ChineseTraditional.Name: ChineseTraditional,
}

// WordlistByName looks up a wordlist by its lowercase name, e.g. "english".
func WordlistByName(name string) (*Wordlist, error) {
	wl, ok := wordlistsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown wordlist %q (available: %s)", name, strings.Join(WordlistNames(), ", "))
	}
	return wl, nil
}

// WordlistNames returns the supported wordlist names, sorted.
func WordlistNames() []string {
	names := make([]string, 0, len(wordlistsByName))
	for name := range wordlistsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
