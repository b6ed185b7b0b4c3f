package game

import (
	"math"
)

// audio_synth.go 程序化合成音效的 PCM 数据
//
// 项目不携带音频素材，所有音效在启动时合成为
// 16-bit 小端、双声道交错的 PCM 字节流，直接交给 Ebitengine 播放。

// AudioSampleRate 合成与播放使用的采样率（Hz）
const AudioSampleRate = 48000

// synthTone 合成单个正弦音
// freq 为频率（Hz），duration 为时长（秒），gain 为振幅（0~1）
// 振幅随时间线性衰减，避免爆音
func synthTone(freq, duration, gain float64) []byte {
	n := int(duration * AudioSampleRate)
	buf := make([]byte, n*4) // 2 channels x 2 bytes

	for i := 0; i < n; i++ {
		t := float64(i) / AudioSampleRate
		envelope := 1 - t/duration
		v := math.Sin(2*math.Pi*freq*t) * gain * envelope
		writeSampleLE(buf, i, v)
	}
	return buf
}

// synthNoise 合成噪声脉冲（割草声的基础素材）
// 使用固定种子的线性同余序列，保证每次启动音色一致
func synthNoise(duration, gain float64) []byte {
	n := int(duration * AudioSampleRate)
	buf := make([]byte, n*4)

	seed := uint32(0x2545F491)
	prev := 0.0
	for i := 0; i < n; i++ {
		seed = seed*1664525 + 1013904223
		// int32 重解释后落在 [-MaxInt32, MaxInt32]，归一化为 [-1, 1]
		white := float64(int32(seed)) / float64(math.MaxInt32)
		// 一阶低通，把白噪声压成低沉的轰鸣
		prev = prev*0.92 + white*0.08
		t := float64(i) / AudioSampleRate
		envelope := 1 - t/duration
		writeSampleLE(buf, i, prev*gain*envelope*4)
	}
	return buf
}

// synthSequence 顺序拼接多段 PCM 数据
func synthSequence(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// writeSampleLE 将 [-1,1] 的采样值写入双声道缓冲区的第 i 个采样位
func writeSampleLE(buf []byte, i int, v float64) {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	s := int16(v * math.MaxInt16)
	lo := byte(s)
	hi := byte(s >> 8)
	buf[i*4+0] = lo // 左声道
	buf[i*4+1] = hi
	buf[i*4+2] = lo // 右声道
	buf[i*4+3] = hi
}
