package diar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteRTTMFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rttm")
	segs := []Segment{
		{Start: 0.5, End: 2.25, Speaker: "speaker_0"},
		{Start: 3.0, End: 4.5, Speaker: "speaker_1"},
	}
	if err := WriteRTTM(path, "/audio/meeting.wav", segs); err != nil {
		t.Fatalf("WriteRTTM: %v", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(buf), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d: %q", len(lines), string(buf))
	}
	want := "SPEAKER meeting 1 0.500 1.750 <NA> <NA> speaker_0 <NA> <NA>"
	if lines[0] != want {
		t.Errorf("line0 = %q, want %q", lines[0], want)
	}
}

func TestRTTMRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.rttm")
	orig := []Segment{
		{Start: 0.5, End: 2.25, Speaker: "a", Duration: 1.75, Confidence: 1},
		{Start: 3.125, End: 4.5, Speaker: "b", Duration: 1.375, Confidence: 1},
	}
	if err := WriteRTTM(path, "x.wav", orig); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRTTM(path)
	if err != nil {
		t.Fatalf("ReadRTTM: %v", err)
	}
	if len(got) != len(orig) {
		t.Fatalf("len = %d, want %d", len(got), len(orig))
	}
	for i := range orig {
		if got[i].Speaker != orig[i].Speaker {
			t.Errorf("seg %d speaker = %q", i, got[i].Speaker)
		}
		// 写入按毫秒精度取整
		if diff := got[i].Start - orig[i].Start; diff > 0.0005 || diff < -0.0005 {
			t.Errorf("seg %d start = %v, want %v", i, got[i].Start, orig[i].Start)
		}
		if diff := got[i].End - orig[i].End; diff > 0.001 || diff < -0.001 {
			t.Errorf("seg %d end = %v, want %v", i, got[i].End, orig[i].End)
		}
	}
}

func TestReadRTTMSkipsJunk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.rttm")
	content := "" +
		";; comment line\n" +
		"SPEAKER short 1 0.0\n" +
		"LIGHTS file 1 0.000 1.000 <NA> <NA> x <NA> <NA>\n" +
		"SPEAKER file 1 1.000 2.000 <NA> <NA> spk <NA> <NA>\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	segs, err := ReadRTTM(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 || segs[0].Speaker != "spk" || segs[0].End != 3.0 {
		t.Errorf("segs = %+v", segs)
	}
}
