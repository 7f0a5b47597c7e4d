package lexicon_test

import (
	"fmt"

	"github.com/cwbudde/algo-formant/lexicon"
)

func ExampleLexicon_Word() {
	lex, err := lexicon.Default()
	if err != nil {
		panic(err)
	}
	word, err := lex.Word("hello")
	if err != nil {
		panic(err)
	}
	for _, d := range word {
		fmt.Println(d.Name, d.Frames())
	}
	// Output:
	// h-eh 20
	// eh-l 20
	// l-ow 20
	// ow-sil 20
}
