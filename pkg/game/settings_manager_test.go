package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.SoundVolume != 0.6 {
		t.Errorf("SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.OnboardingCompleted {
		t.Error("OnboardingCompleted: got true, want false")
	}
	if settings.LastTipIndex != 0 {
		t.Errorf("LastTipIndex: got %d, want 0", settings.LastTipIndex)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.IsPersistent() {
		t.Error("IsPersistent() should be false without gdata")
	}
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.MarkOnboardingCompleted()
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 往返
func TestSettingsLoadSave(t *testing.T) {
	manager := newTestGdataManager(t, "tipcarousel_test_settings")

	sm := NewSettingsManager(manager)
	sm.SetSoundEnabled(false)
	sm.SetSoundVolume(0.25)
	sm.SetLastTipIndex(2)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	got := reloaded.GetSettings()
	if got.SoundEnabled {
		t.Error("SoundEnabled: got true, want false")
	}
	if got.SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", got.SoundVolume)
	}
	if got.LastTipIndex != 2 {
		t.Errorf("LastTipIndex: got %d, want 2", got.LastTipIndex)
	}
}

// TestOnboardingProgress 测试完成引导与重置
func TestOnboardingProgress(t *testing.T) {
	manager := newTestGdataManager(t, "tipcarousel_test_onboarding")

	sm := NewSettingsManager(manager)
	sm.SetLastTipIndex(3)
	sm.MarkOnboardingCompleted()
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	if !reloaded.GetSettings().OnboardingCompleted {
		t.Error("OnboardingCompleted should persist")
	}
	if reloaded.GetSettings().LastTipIndex != 0 {
		t.Errorf("LastTipIndex should reset on completion, got %d", reloaded.GetSettings().LastTipIndex)
	}

	reloaded.ResetOnboarding()
	if reloaded.GetSettings().OnboardingCompleted {
		t.Error("ResetOnboarding should clear completion")
	}
}

// TestSettingsLoadCorruptData 测试损坏数据回退到默认值
func TestSettingsLoadCorruptData(t *testing.T) {
	manager := newTestGdataManager(t, "tipcarousel_test_corrupt")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(manager)
	if got := sm.GetSettings().SoundVolume; got != DefaultSettings().SoundVolume {
		t.Errorf("SoundVolume after corrupt load = %v, want default", got)
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
