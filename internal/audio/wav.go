// Copyright 2026 fanjia1024
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package audio 音频解码：WAV → mono float32，以及廉价的时长头读取。
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"speech-engine/pkg/errors"
)

// Decoder 音频解码接口；管线通过它读输入，测试注入替身
type Decoder interface {
	// Decode 解码为 mono float32；采样率不符且无法重采样时报错
	Decode(path string, sampleRate int) ([]float32, int, error)
	// DurationSeconds 只读文件头估算时长
	DurationSeconds(path string) (float64, error)
}

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// WAVDecoder RIFF/WAVE 解码器，支持 PCM16 与 float32 编码
type WAVDecoder struct{}

type wavFormat struct {
	audioFormat   uint16
	numChannels   uint16
	sampleRate    uint32
	bitsPerSample uint16
}

func (f wavFormat) bytesPerFrame() int {
	return int(f.numChannels) * int(f.bitsPerSample) / 8
}

// Decode 实现 Decoder；多声道按均值混合为 mono
func (WAVDecoder) Decode(path string, sampleRate int) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errors.Wrapf(errors.ErrNotFound, "audio file not found: %s", path)
		}
		return nil, 0, err
	}
	defer f.Close()

	format, data, _, err := readChunks(f, true)
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav %s: %w", path, err)
	}
	if int(format.sampleRate) != sampleRate {
		return nil, 0, fmt.Errorf(
			"audio sample rate is %d Hz; expected %d Hz and resampling is not supported",
			format.sampleRate, sampleRate,
		)
	}

	samples, err := toFloat32(format, data)
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav %s: %w", path, err)
	}
	return samples, int(format.sampleRate), nil
}

// DurationSeconds 只解析头部与 data 块长度，不读取样本
func (WAVDecoder) DurationSeconds(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	format, _, dataLen, err := readChunks(f, false)
	if err != nil {
		return 0, err
	}
	bpf := format.bytesPerFrame()
	if bpf == 0 || format.sampleRate == 0 {
		return 0, fmt.Errorf("malformed wav header")
	}
	frames := dataLen / bpf
	return float64(frames) / float64(format.sampleRate), nil
}

// readChunks 遍历 RIFF 块，返回 fmt 信息、data 载荷与长度；
// wantData 为 false 时跳过载荷只记录长度
func readChunks(r io.ReadSeeker, wantData bool) (wavFormat, []byte, int, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return wavFormat{}, nil, 0, fmt.Errorf("short riff header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return wavFormat{}, nil, 0, fmt.Errorf("not a riff/wave file")
	}

	var format wavFormat
	var data []byte
	dataLen := 0
	haveFmt := false
	haveData := false

	for !(haveFmt && haveData) {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			break
		}
		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch id {
		case "fmt ":
			buf := make([]byte, size)
			if _, err := io.ReadFull(r, buf); err != nil {
				return wavFormat{}, nil, 0, fmt.Errorf("short fmt chunk: %w", err)
			}
			if len(buf) < 16 {
				return wavFormat{}, nil, 0, fmt.Errorf("fmt chunk too small")
			}
			format.audioFormat = binary.LittleEndian.Uint16(buf[0:2])
			format.numChannels = binary.LittleEndian.Uint16(buf[2:4])
			format.sampleRate = binary.LittleEndian.Uint32(buf[4:8])
			format.bitsPerSample = binary.LittleEndian.Uint16(buf[14:16])
			haveFmt = true
		case "data":
			dataLen = int(size)
			haveData = true
			if wantData {
				data = make([]byte, size)
				if _, err := io.ReadFull(r, data); err != nil {
					return wavFormat{}, nil, 0, fmt.Errorf("short data chunk: %w", err)
				}
			} else if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return wavFormat{}, nil, 0, err
			}
		default:
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return wavFormat{}, nil, 0, err
			}
		}
		// 块按偶数字节对齐
		if size%2 == 1 {
			if _, err := r.Seek(1, io.SeekCurrent); err != nil {
				break
			}
		}
	}

	if !haveFmt {
		return wavFormat{}, nil, 0, fmt.Errorf("missing fmt chunk")
	}
	if !haveData {
		return wavFormat{}, nil, 0, fmt.Errorf("missing data chunk")
	}
	return format, data, dataLen, nil
}

// toFloat32 按编码转样本并做 mono 混合
func toFloat32(format wavFormat, data []byte) ([]float32, error) {
	channels := int(format.numChannels)
	if channels == 0 {
		return nil, fmt.Errorf("zero channels")
	}

	var interleaved []float32
	switch {
	case format.audioFormat == formatPCM && format.bitsPerSample == 16:
		n := len(data) / 2
		interleaved = make([]float32, n)
		for i := 0; i < n; i++ {
			v := int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
			interleaved[i] = float32(v) / 32768.0
		}
	case format.audioFormat == formatIEEEFloat && format.bitsPerSample == 32:
		n := len(data) / 4
		interleaved = make([]float32, n)
		for i := 0; i < n; i++ {
			bits := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			interleaved[i] = math.Float32frombits(bits)
		}
	default:
		return nil, fmt.Errorf("unsupported wav encoding: format=%d bits=%d", format.audioFormat, format.bitsPerSample)
	}

	if channels == 1 {
		return interleaved, nil
	}
	frames := len(interleaved) / channels
	mono := make([]float32, frames)
	for i := 0; i < frames; i++ {
		sum := float32(0)
		for c := 0; c < channels; c++ {
			sum += interleaved[i*channels+c]
		}
		mono[i] = sum / float32(channels)
	}
	return mono, nil
}
