package synth

var (
	silence = Params{}

	aeVowel = Params{
		F0: 120,
		Formants: [NumFormants]Formant{
			{700, 50}, {1400, 80}, {2400, 120}, {3300, 150}, {3900, 200}, {4500, 250},
		},
		Nasal: Formant{250, 100},
		AF:    1,
	}

	sFricative = Params{
		Formants: [NumFormants]Formant{
			{0, 0}, {0, 0}, {2500, 200}, {3500, 300}, {4500, 400}, {5500, 500},
		},
		Nasal: Formant{4500, 500},
		AN:    1,
	}
)

func diphone(name string, from, to *Params, start, trans, end int) Diphone {
	return Diphone{
		Name: name, From: from, To: to,
		StartFrames: start, TransitionFrames: trans, EndFrames: end,
	}
}

func testWord() []Diphone {
	return []Diphone{
		diphone("sil-ae", &silence, &aeVowel, 5, 10, 5),
		diphone("ae-s", &aeVowel, &sFricative, 5, 10, 5),
		diphone("s-sil", &sFricative, &silence, 5, 10, 5),
	}
}
