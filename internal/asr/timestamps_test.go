package asr

import (
	"math"
	"testing"
)

func TestFormatTS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00.000"},
		{1.5, "00:00:01.500"},
		{61.25, "00:01:01.250"},
		{3661.007, "01:01:01.007"},
		{360000, "100:00:00.000"},
	}
	for _, tt := range tests {
		if got := FormatTS(tt.in); got != tt.want {
			t.Errorf("FormatTS(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWordTimestampsFromSegment(t *testing.T) {
	words := WordTimestampsFromSegment("hi there world", 10.0, 12.0)
	if len(words) != 3 {
		t.Fatalf("len = %d, want 3", len(words))
	}
	if words[0].Start != 10.0 {
		t.Errorf("first start = %v", words[0].Start)
	}
	// 最后一个词 end 对齐段末
	if words[2].End != 12.0 {
		t.Errorf("last end = %v, want 12.0", words[2].End)
	}
	// 词间无缝衔接
	for i := 1; i < len(words); i++ {
		if math.Abs(words[i].Start-words[i-1].End) > 1e-9 {
			t.Errorf("gap between word %d and %d", i-1, i)
		}
	}
	// 时长按字符数分配："there"(5) 比 "hi"(2) 长
	if words[1].End-words[1].Start <= words[0].End-words[0].Start {
		t.Error("longer word should get more time")
	}
}

func TestWordTimestampsFromSegmentDegenerate(t *testing.T) {
	if got := WordTimestampsFromSegment("", 0, 1); got != nil {
		t.Errorf("empty text: %v", got)
	}
	if got := WordTimestampsFromSegment("word", 5, 5); got != nil {
		t.Errorf("zero duration: %v", got)
	}
	if got := WordTimestampsFromSegment("word", 5, 3); got != nil {
		t.Errorf("negative duration: %v", got)
	}
}

func TestWordTimestampsFromTokens(t *testing.T) {
	// "hello world" 作为空格前缀 token 流；时间为 chunk 内相对秒
	tokens := []string{"he", "llo", " wor", "ld"}
	stamps := []float64{0.0, 0.2, 0.5, 0.7}
	words := WordTimestampsFromTokens(tokens, stamps, 10.0, 11.0)
	if len(words) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(words), words)
	}
	if words[0].Word != "hello" || words[1].Word != "world" {
		t.Errorf("words = %v", words)
	}
	if words[0].Start != 10.0 || words[0].End != 10.5 {
		t.Errorf("hello span = %v-%v", words[0].Start, words[0].End)
	}
	// 末词 end 取段末
	if words[1].Start != 10.5 || words[1].End != 11.0 {
		t.Errorf("world span = %v-%v", words[1].Start, words[1].End)
	}
}

func TestWordTimestampsFromTokensMismatched(t *testing.T) {
	if got := WordTimestampsFromTokens([]string{"a"}, []float64{0, 1}, 0, 1); got != nil {
		t.Errorf("mismatched lengths: %v", got)
	}
	if got := WordTimestampsFromTokens(nil, nil, 0, 1); got != nil {
		t.Errorf("nil inputs: %v", got)
	}
}

func TestSplitSegmentsOnPunctuation(t *testing.T) {
	words := []WordStamp{
		{Word: "hello", Start: 0, End: 0.5},
		{Word: "world.", Start: 0.5, End: 1.0},
		{Word: "next", Start: 1.1, End: 1.5},
		{Word: "one!", Start: 1.5, End: 2.0},
		{Word: "tail", Start: 2.1, End: 2.4},
	}
	segs := SplitSegmentsFromWords(words, 0, false)
	if len(segs) != 3 {
		t.Fatalf("len = %d, want 3: %+v", len(segs), segs)
	}
	if segs[0].Text != "hello world." {
		t.Errorf("seg0 = %q", segs[0].Text)
	}
	if segs[0].Start != 0 || segs[0].End != 1.0 {
		t.Errorf("seg0 span = %v-%v", segs[0].Start, segs[0].End)
	}
	if segs[2].Text != "tail" {
		t.Errorf("seg2 = %q", segs[2].Text)
	}
}

func TestSplitSegmentsOnGap(t *testing.T) {
	words := []WordStamp{
		{Word: "one", Start: 0, End: 0.5},
		{Word: "two", Start: 3.0, End: 3.5}, // 2.5s 停顿
		{Word: "three", Start: 3.6, End: 4.0},
	}
	segs := SplitSegmentsFromWords(words, 1.0, true)
	if len(segs) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(segs), segs)
	}
	if segs[0].Text != "one" || segs[1].Text != "two three" {
		t.Errorf("segs = %q / %q", segs[0].Text, segs[1].Text)
	}
}

func TestSplitSegmentsGapDisabled(t *testing.T) {
	words := []WordStamp{
		{Word: "one", Start: 0, End: 0.5},
		{Word: "two", Start: 10, End: 10.5},
	}
	if segs := SplitSegmentsFromWords(words, 0, false); len(segs) != 1 {
		t.Errorf("gap split should be off: %+v", segs)
	}
}

func TestSplitSegmentsEmpty(t *testing.T) {
	if segs := SplitSegmentsFromWords(nil, 1.0, true); segs != nil {
		t.Errorf("nil words: %+v", segs)
	}
}
