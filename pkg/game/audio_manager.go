package game

import (
	"encoding/binary"
	"math"

	"github.com/decker502/tipcarousel/pkg/carousel"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 飞出音效参数
const (
	whooshDuration = 0.28 // 音效时长（秒）
	whooshPan      = 0.6  // 声像偏移量，卡片向哪边飞出声音就偏向哪边
)

// AudioManager 音频管理器
// 职责：
//   - 播放卡片飞出时的“嗖”声
//   - 从 SettingsManager 读取音效开关和音量
//
// 音效在首次使用时按方向合成一次并缓存 PCM 数据，不依赖音频资源文件。
type AudioManager struct {
	context         *audio.Context                // 全局音频上下文，可为 nil（静音模式）
	settingsManager *SettingsManager              // 设置管理器，可为 nil
	whooshCache     map[carousel.Direction][]byte // 方向 -> PCM 数据
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，为 nil 时所有播放调用都是空操作
//   - sm: SettingsManager 实例（可为 nil，此时使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		whooshCache:     make(map[carousel.Direction][]byte),
	}
}

// PlayWhoosh 播放卡片飞出音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayWhoosh(direction carousel.Direction) bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	pcm, ok := am.whooshCache[direction]
	if !ok {
		pcm = synthesizeWhoosh(am.context.SampleRate(), whooshDuration, whooshPanFor(direction))
		am.whooshCache[direction] = pcm
	}

	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	return true
}

// getSoundVolume 获取音效音量
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// whooshPanFor 向前翻页时卡片向左飞出，向后翻页时向右飞出
func whooshPanFor(direction carousel.Direction) float64 {
	switch direction {
	case carousel.DirectionForward:
		return -whooshPan
	case carousel.DirectionBackward:
		return whooshPan
	default:
		return 0
	}
}

// synthesizeWhoosh 合成一段带滤波扫频的噪声
//
// 输出为 16 位小端立体声 PCM，这是 ebiten/audio 播放器要求的格式。
// pan 取值 -1（全左）到 1（全右）。
func synthesizeWhoosh(sampleRate int, duration, pan float64) []byte {
	frames := int(float64(sampleRate) * duration)
	if frames <= 0 {
		return nil
	}
	pan = math.Max(-1, math.Min(1, pan))
	leftGain := math.Sqrt((1 - pan) / 2)
	rightGain := math.Sqrt((1 + pan) / 2)

	buf := make([]byte, frames*4)
	seed := uint32(0x9e3779b9)
	filtered := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)

		// xorshift 白噪声，保证每次合成结果一致
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(seed)/float64(math.MaxUint32)*2 - 1

		// 截止频率先升后降，形成“嗖”的音色
		cutoff := 300 + 3200*math.Sin(math.Pi*t)
		alpha := 1 - math.Exp(-2*math.Pi*cutoff/float64(sampleRate))
		filtered += alpha * (noise - filtered)

		envelope := math.Pow(math.Sin(math.Pi*t), 2)
		sample := filtered * envelope * 0.8

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(int16(sample*leftGain*math.MaxInt16)))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(int16(sample*rightGain*math.MaxInt16)))
	}
	return buf
}
