//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/HipparchiaGoTopics/internal/lnch"
	"github.com/e-gun/HipparchiaGoTopics/internal/vv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// TOKENIZER
//

// Tokenize - lower-case the text, split it on whitespace, and keep only the words longer than 3 runes that
// consist entirely of letters; order and repeats are preserved
func Tokenize(text string) []string {
	// "The cats, the DOGS and 4ever naïve" --> [dogs naïve]
	// "cats," fails the letters-only test: punctuation is never stripped, the whole token is dropped

	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < vv.MINTERMLEN {
			continue
		}
		if !allletters(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func allletters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
