package asr

import "testing"

func TestParseParamsDefaults(t *testing.T) {
	p := ParseParams(map[string]string{})
	if p.ChunkLenS != 300.0 {
		t.Errorf("ChunkLenS = %v", p.ChunkLenS)
	}
	if p.ChunkBatchSize != 8 {
		t.Errorf("ChunkBatchSize = %d", p.ChunkBatchSize)
	}
	if p.HasSegmentGap {
		t.Error("segment gap should default to unset")
	}
	if !p.IncludeSegments || !p.IncludeWords || !p.MergeShortSegments {
		t.Error("include/merge flags should default to true")
	}
	if p.MergeAttachThreshold != 0.25 || p.MergeAttachMaxWords != 2 {
		t.Errorf("merge knobs = %v/%d", p.MergeAttachThreshold, p.MergeAttachMaxWords)
	}
	if p.SampleRate != 16000 {
		t.Errorf("SampleRate = %d", p.SampleRate)
	}
}

func TestParseParamsOverrides(t *testing.T) {
	p := ParseParams(map[string]string{
		"chunk_len_s":      "30",
		"chunk_batch_size": "2",
		"segment_gap_s":    "0.8",
		"include_words":    "false",
		"language":         "en",
		"target_language":  "de",
	})
	if p.ChunkLenS != 30 || p.ChunkBatchSize != 2 {
		t.Errorf("chunking = %v/%d", p.ChunkLenS, p.ChunkBatchSize)
	}
	if !p.HasSegmentGap || p.SegmentGapS != 0.8 {
		t.Errorf("gap = %v has=%v", p.SegmentGapS, p.HasSegmentGap)
	}
	if p.IncludeWords {
		t.Error("include_words not honored")
	}
	if p.Language != "en" || p.TargetLanguage != "de" {
		t.Errorf("languages = %q/%q", p.Language, p.TargetLanguage)
	}
}

func TestParseParamsBadValuesFallBack(t *testing.T) {
	p := ParseParams(map[string]string{
		"chunk_len_s":      "abc",
		"chunk_batch_size": "xyz",
		"segment_gap_s":    "not-a-number",
		"sample_rate":      "",
	})
	if p.ChunkLenS != 300.0 || p.ChunkBatchSize != 8 {
		t.Errorf("bad values did not fall back: %v/%d", p.ChunkLenS, p.ChunkBatchSize)
	}
	if p.HasSegmentGap {
		t.Error("unparseable gap should stay unset")
	}
	if p.SampleRate != 16000 {
		t.Errorf("SampleRate = %d", p.SampleRate)
	}
}

func TestParsePNC(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pnc", "pnc"},
		{"NOPNC", "nopnc"},
		{"true", "on"},
		{"yes", "on"},
		{"0", "off"},
		{"off", "off"},
		{"whatever", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parsePNC(tt.in); got != tt.want {
			t.Errorf("parsePNC(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVADPreset(t *testing.T) {
	p := ParseParams(map[string]string{"vad_preset": "aggressive"})
	v := p.VAD
	if v.SpeechPadMs != 150 || v.MinSilenceMs != 300 || v.MinSpeechMs != 120 || v.MaxSpeechS != 20 {
		t.Errorf("aggressive preset = %+v", v)
	}
	if v.Enabled {
		t.Error("vad should default to disabled")
	}
}

func TestParseVADOverridesBeatPreset(t *testing.T) {
	p := ParseParams(map[string]string{
		"vad_preset":         "conservative",
		"vad_enabled":        "true",
		"vad_speech_pad_ms":  "123",
		"vad_min_silence_ms": "456",
	})
	v := p.VAD
	if !v.Enabled {
		t.Error("vad_enabled not honored")
	}
	if v.SpeechPadMs != 123 || v.MinSilenceMs != 456 {
		t.Errorf("overrides lost: %+v", v)
	}
	// 未覆盖的项保持预设值
	if v.MinSpeechMs != 300 || v.MaxSpeechS != 30 {
		t.Errorf("preset values lost: %+v", v)
	}
}
