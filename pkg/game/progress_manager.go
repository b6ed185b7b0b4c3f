package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ProgressData 关卡进度数据
//
// 保存内容：
//   - 最高完成关卡（如 "1-3" 表示完成了 1-3，可以玩 1-4）
//   - 每关最佳割草率和最快通关用时
type ProgressData struct {
	HighestLevel string             `yaml:"highestLevel"` // 最高完成关卡ID，如 "1-3"
	BestPercent  map[string]float64 `yaml:"bestPercent"`  // 关卡ID -> 最佳割草率
	BestTime     map[string]float64 `yaml:"bestTime"`     // 关卡ID -> 最快通关用时（秒）
}

// ProgressManager 进度管理器
//
// 职责：
//   - 加载和保存关卡进度
//   - 判断关卡解锁状态
//   - 记录每关最佳成绩
//
// 数据通过 gdata 持久化为 YAML，与设置存储保持一致
type ProgressManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存进度）
	data         *ProgressData
}

const (
	progressObject   = "progress"
	progressProperty = "global"
)

// NewProgressManager 创建进度管理器
// gdataManager 为 nil 时进度只保存在内存中
func NewProgressManager(gdataManager *gdata.Manager) (*ProgressManager, error) {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		data:         emptyProgress(),
	}

	if err := pm.Load(); err != nil {
		log.Warnf("[ProgressManager] Failed to load progress: %v (starting fresh)", err)
	}

	return pm, nil
}

func emptyProgress() *ProgressData {
	return &ProgressData{
		BestPercent: make(map[string]float64),
		BestTime:    make(map[string]float64),
	}
}

// Load 从 gdata 加载进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	loaded := emptyProgress()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if loaded.BestPercent == nil {
		loaded.BestPercent = make(map[string]float64)
	}
	if loaded.BestTime == nil {
		loaded.BestTime = make(map[string]float64)
	}

	pm.data = loaded
	log.Debugf("[ProgressManager] Progress loaded, highest level: %q", pm.data.HighestLevel)
	return nil
}

// Save 保存进度到 gdata
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// GetHighestLevel 返回最高完成关卡ID，从未通关时为空字符串
func (pm *ProgressManager) GetHighestLevel() string {
	return pm.data.HighestLevel
}

// IsLevelUnlocked 判断关卡是否已解锁
// 规则：第一关始终解锁；其余关卡要求其在排序中的前一关已完成
func (pm *ProgressManager) IsLevelUnlocked(levelIDs []string, id string) bool {
	for i, levelID := range levelIDs {
		if levelID != id {
			continue
		}
		if i == 0 {
			return true
		}
		if pm.data.HighestLevel == "" {
			return false
		}
		// 前一关在最高完成关之前或相等时，本关解锁
		return config.CompareLevelIDs(levelIDs[i-1], pm.data.HighestLevel) <= 0
	}
	return false
}

// RecordCompletion 记录一次通关成绩，必要时推进最高完成关卡
// 返回是否刷新了最佳割草率或最快用时
func (pm *ProgressManager) RecordCompletion(levelID string, percent, elapsed float64) bool {
	improved := false

	if best, ok := pm.data.BestPercent[levelID]; !ok || percent > best {
		pm.data.BestPercent[levelID] = percent
		improved = true
	}
	if best, ok := pm.data.BestTime[levelID]; !ok || elapsed < best {
		pm.data.BestTime[levelID] = elapsed
		improved = true
	}

	if pm.data.HighestLevel == "" || config.CompareLevelIDs(levelID, pm.data.HighestLevel) > 0 {
		pm.data.HighestLevel = levelID
	}

	if err := pm.Save(); err != nil {
		log.Warnf("[ProgressManager] Failed to save progress: %v", err)
	}
	return improved
}

// BestPercentFor 返回关卡的历史最佳割草率，无记录时 ok 为 false
func (pm *ProgressManager) BestPercentFor(levelID string) (float64, bool) {
	v, ok := pm.data.BestPercent[levelID]
	return v, ok
}

// BestTimeFor 返回关卡的历史最快通关用时，无记录时 ok 为 false
func (pm *ProgressManager) BestTimeFor(levelID string) (float64, bool) {
	v, ok := pm.data.BestTime[levelID]
	return v, ok
}
