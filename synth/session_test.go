package synth

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/cwbudde/algo-formant/dsp/buffer"
	"github.com/cwbudde/algo-formant/dsp/core"
	"github.com/cwbudde/algo-formant/dsp/filter/dcblock"
	"github.com/cwbudde/algo-formant/dsp/signal"
	"github.com/cwbudde/algo-formant/internal/testutil"
)

func mustSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero sample rate", WithSampleRate(0)},
		{"nan frame period", WithFramePeriod(math.NaN())},
		{"bad quotients", WithGlottalQuotients(0.9, 0.2)},
		{"dc above nyquist", WithDCCutoff(9000)},
		{"negative pause", WithWordPause(-1)},
		{"zero max duration", WithMaxDuration(0)},
		{"unknown policy", WithOverrunPolicy(buffer.Policy(42))},
		{"sub-sample frame", WithFramePeriod(1e-6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSession(tt.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSamplesPerFrame(t *testing.T) {
	tests := []struct {
		rate, period float64
		want         int
	}{
		{16000, 0.010, 160},
		{44100, 0.010, 441},
		{22050, 0.005, 110},
		{8000, 0.0125, 100},
	}
	for _, tt := range tests {
		s := mustSession(t, WithSampleRate(tt.rate), WithFramePeriod(tt.period), WithDCCutoff(20))
		if got := s.SamplesPerFrame(); got != tt.want {
			t.Errorf("rate=%v period=%v: got %d, want %d", tt.rate, tt.period, got, tt.want)
		}
		buf := buffer.New(tt.want)
		if err := s.SynthesizeFrame(aeVowel, buf); err != nil {
			t.Fatalf("SynthesizeFrame: %v", err)
		}
		if buf.Cursor() != tt.want {
			t.Errorf("frame wrote %d samples, want %d", buf.Cursor(), tt.want)
		}
	}
}

func TestTimingOptionsMatchProcessorConfig(t *testing.T) {
	def := core.ApplyProcessorOptions()
	s := mustSession(t)
	if s.SampleRate() != def.SampleRate || s.SamplesPerFrame() != def.SamplesPerFrame() {
		t.Fatalf("default session %v Hz / %d, want %v Hz / %d",
			s.SampleRate(), s.SamplesPerFrame(), def.SampleRate, def.SamplesPerFrame())
	}

	want := core.ApplyProcessorOptions(core.WithSampleRate(11025), core.WithFramePeriod(0.02))
	s = mustSession(t, WithSampleRate(11025), WithFramePeriod(0.02))
	if s.SampleRate() != want.SampleRate || s.SamplesPerFrame() != want.SamplesPerFrame() {
		t.Fatalf("session %v Hz / %d, want %v Hz / %d",
			s.SampleRate(), s.SamplesPerFrame(), want.SampleRate, want.SamplesPerFrame())
	}
}

func TestSilenceToVowelDiphone(t *testing.T) {
	s := mustSession(t)
	d := diphone("sil-ae", &silence, &aeVowel, 5, 10, 5)
	buf := buffer.New(3200)
	if err := s.SynthesizeDiphone(&d, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Cursor() != 3200 {
		t.Fatalf("wrote %d samples, want 3200", buf.Cursor())
	}
	out := buf.Samples()
	testutil.RequireZero(t, out[:800])
	testutil.RequireFinite(t, out)
	if signal.PeakAbs(out[1000:]) == 0 {
		t.Fatal("no voiced output after the transition starts")
	}
}

func TestDiphoneDuration(t *testing.T) {
	tests := []struct {
		start, trans, end int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, 7, 0},
		{3, 4, 5},
		{10, 5, 10},
	}
	s := mustSession(t)
	for _, tt := range tests {
		d := diphone("x", &aeVowel, &sFricative, tt.start, tt.trans, tt.end)
		buf := buffer.New(0)
		buf.SetPolicy(buffer.PolicyGrow)
		if err := s.SynthesizeDiphone(&d, buf); err != nil {
			t.Fatal(err)
		}
		want := d.Frames() * s.SamplesPerFrame()
		if buf.Cursor() != want || buf.Len() != want {
			t.Errorf("%d/%d/%d: cursor=%d len=%d, want %d", tt.start, tt.trans, tt.end, buf.Cursor(), buf.Len(), want)
		}
	}
}

func TestSynthesizeDiphoneOverrun(t *testing.T) {
	s := mustSession(t)
	d := diphone("ae", &aeVowel, &aeVowel, 1, 0, 0)

	buf := buffer.New(100)
	err := s.SynthesizeDiphone(&d, buf)
	if !errors.Is(err, buffer.ErrOverrun) {
		t.Fatalf("err=%v, want ErrOverrun", err)
	}
	if buf.Dropped() != 60 {
		t.Fatalf("dropped=%d, want 60", buf.Dropped())
	}

	buf = buffer.New(100)
	buf.SetPolicy(buffer.PolicyTruncate)
	if err := s.SynthesizeDiphone(&d, buf); err != nil {
		t.Fatalf("truncate policy: %v", err)
	}
	if buf.Len() != 100 {
		t.Fatalf("len=%d, want 100", buf.Len())
	}
}

func TestSynthesizeDiphoneInvalid(t *testing.T) {
	s := mustSession(t)
	nan := aeVowel
	nan.F0 = math.NaN()
	tests := []Diphone{
		{Name: "nil from", To: &aeVowel, StartFrames: 1},
		diphone("negative", &aeVowel, &aeVowel, -1, 0, 0),
		diphone("nan", &nan, &aeVowel, 1, 0, 0),
	}
	for i := range tests {
		buf := buffer.New(0)
		if err := s.SynthesizeDiphone(&tests[i], buf); !errors.Is(err, ErrInvalidDiphone) {
			t.Fatalf("%s: err=%v", tests[i].Name, err)
		}
		if buf.Cursor() != 0 {
			t.Fatalf("%s: invalid diphone wrote samples", tests[i].Name)
		}
	}
}

func TestFramePipelineWithDisabledFormants(t *testing.T) {
	// With every resonator disabled each branch passes the excitation
	// through, so the frame is the DC-blocked sum of six copies.
	p := Params{F0: 100, AF: 0.5}
	s := mustSession(t)
	buf := buffer.New(s.SamplesPerFrame())
	if err := s.SynthesizeFrame(p, buf); err != nil {
		t.Fatal(err)
	}

	g, err := signal.NewGlottal(16000)
	if err != nil {
		t.Fatal(err)
	}
	dc, err := dcblock.New(dcblock.DefaultCutoffHz, 16000)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]float64, s.SamplesPerFrame())
	for i := range want {
		want[i] = dc.ProcessSample(6 * g.Next(100, 0.5))
	}
	testutil.RequireSliceNearlyEqual(t, buf.Samples(), want, 1e-12)
}

func TestResetDeterminism(t *testing.T) {
	s := mustSession(t)
	first, err := s.RenderWord(testWord())
	if err != nil {
		t.Fatal(err)
	}

	// Leave the session in a dirty state.
	scratch := buffer.New(0)
	scratch.SetPolicy(buffer.PolicyGrow)
	d := diphone("noise", &sFricative, &aeVowel, 3, 3, 3)
	if err := s.SynthesizeDiphone(&d, scratch); err != nil {
		t.Fatal(err)
	}

	second, err := s.RenderWord(testWord())
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}

	s.Reset()
	manual := buffer.New(s.WordSamples(testWord()))
	for _, d := range testWord() {
		if err := s.SynthesizeDiphone(&d, manual); err != nil {
			t.Fatal(err)
		}
	}
	testutil.RequireSliceNearlyEqual(t, manual.Samples(), first, 0)
}

func TestSeedChangesUnvoicedOutput(t *testing.T) {
	word := []Diphone{diphone("s", &sFricative, &sFricative, 3, 0, 0)}
	a, err := mustSession(t).RenderWord(word)
	if err != nil {
		t.Fatal(err)
	}
	b, err := mustSession(t, WithSeed(12345)).RenderWord(word)
	if err != nil {
		t.Fatal(err)
	}
	if signal.PeakAbs(a) == 0 {
		t.Fatal("fricative produced silence")
	}
	diff, err := testutil.MaxAbsDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if diff == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestConcurrentRenderOnSharedSession(t *testing.T) {
	s := mustSession(t)
	want, err := s.RenderWord(testWord())
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.RenderWord(testWord())
			if err != nil {
				errs <- err
				return
			}
			for i := range want {
				if got[i] != want[i] {
					errs <- errors.New("concurrent render differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestLoggerReceivesDiphoneRecords(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := mustSession(t, WithLogger(logger))
	if _, err := s.RenderWord(testWord()); err != nil {
		t.Fatal(err)
	}
	out := logs.String()
	for _, want := range []string{"msg=diphone", "name=sil-ae", "name=s-sil", "msg=rendered", "samples=9600"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestFramePeriodRoundingWarns(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	mustSession(t, WithFramePeriod(0.010), WithLogger(logger))
	if logs.Len() != 0 {
		t.Fatalf("exact frame period should not warn: %s", logs.String())
	}

	s := mustSession(t, WithSampleRate(44100), WithFramePeriod(0.0101), WithLogger(logger))
	if s.SamplesPerFrame() != 445 {
		t.Fatalf("SamplesPerFrame=%d", s.SamplesPerFrame())
	}
	if !strings.Contains(logs.String(), "frame period rounded") {
		t.Fatalf("missing warning: %s", logs.String())
	}
}
