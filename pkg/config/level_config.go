package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gonewx/powerlawn/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义草坪规格、障碍物布局和胜负条件
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "1-1"
	Name        string `yaml:"name"`        // 关卡名称，如 "门前草坪"
	Description string `yaml:"description"` // 关卡描述（可选）

	Cols int `yaml:"cols"` // 草坪列数，默认 16
	Rows int `yaml:"rows"` // 草坪行数，默认 9

	// TargetPercent 通关所需的割草百分比（1~100），默认 100
	TargetPercent float64 `yaml:"targetPercent"`
	// TimeLimit 时间限制（秒），0 表示不限时
	TimeLimit float64 `yaml:"timeLimit"`
	// TwoPlayer 本关默认是否启用双人模式
	TwoPlayer bool `yaml:"twoPlayer"`

	Obstacles   []TileRef    `yaml:"obstacles"`   // 障碍物格子列表
	MowerStarts []MowerStart `yaml:"mowerStarts"` // 割草机出生点，按玩家顺序
}

// TileRef 引用网格中的单个格子（0-based）
type TileRef struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// MowerStart 割草机出生点配置
type MowerStart struct {
	Col     int     `yaml:"col"`
	Row     int     `yaml:"row"`
	Heading float64 `yaml:"heading"` // 初始朝向角（度，0 朝右）
}

// LoadLevelConfig 加载指定路径的关卡配置
// 优先从嵌入资源读取（路径以 "data/" 开头时），失败后回退到文件系统
func LoadLevelConfig(path string) (*LevelConfig, error) {
	var data []byte
	var err error

	if embedded.IsInitialized() && strings.HasPrefix(path, "data/") {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	return ParseLevelConfig(data, path)
}

// LoadLevelByID 按关卡ID加载嵌入的关卡配置，如 "1-2"
func LoadLevelByID(id string) (*LevelConfig, error) {
	return LoadLevelConfig(fmt.Sprintf("data/levels/%s.yaml", id))
}

// ParseLevelConfig 从YAML数据解析关卡配置
// source 仅用于错误信息
func ParseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	// 应用默认值（旧配置文件可正常加载）
	applyDefaults(&levelConfig)

	// 验证必填字段
	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Cols == 0 {
		config.Cols = DefaultGridCols
	}
	if config.Rows == 0 {
		config.Rows = DefaultGridRows
	}

	// TargetPercent 为0（未配置）时要求割满
	if config.TargetPercent == 0 {
		config.TargetPercent = 100
	}

	// 未配置出生点时，玩家1从左上角出发、玩家2从左下角出发
	if len(config.MowerStarts) == 0 {
		config.MowerStarts = []MowerStart{
			{Col: 0, Row: 0, Heading: 0},
			{Col: 0, Row: config.Rows - 1, Heading: 0},
		}
	}
}

// validateLevelConfig 验证关卡配置的合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level id is required")
	}
	if config.Name == "" {
		return fmt.Errorf("level name is required")
	}

	if config.Cols < 1 || float64(config.Cols)*TileSize > GameWindowWidth {
		return fmt.Errorf("cols must be between 1 and %d, got %d", int(GameWindowWidth/TileSize), config.Cols)
	}
	if config.Rows < 1 || float64(config.Rows)*TileSize > GameWindowHeight {
		return fmt.Errorf("rows must be between 1 and %d, got %d", int(GameWindowHeight/TileSize), config.Rows)
	}

	if config.TargetPercent < 1 || config.TargetPercent > 100 {
		return fmt.Errorf("targetPercent must be between 1 and 100, got %.1f", config.TargetPercent)
	}
	if config.TimeLimit < 0 {
		return fmt.Errorf("timeLimit must be >= 0, got %.1f", config.TimeLimit)
	}

	obstacleSet := make(map[TileRef]bool, len(config.Obstacles))
	for _, ob := range config.Obstacles {
		if ob.Col < 0 || ob.Col >= config.Cols || ob.Row < 0 || ob.Row >= config.Rows {
			return fmt.Errorf("obstacle (%d,%d) outside %dx%d grid", ob.Col, ob.Row, config.Cols, config.Rows)
		}
		obstacleSet[ob] = true
	}

	for i, start := range config.MowerStarts {
		if start.Col < 0 || start.Col >= config.Cols || start.Row < 0 || start.Row >= config.Rows {
			return fmt.Errorf("mower start %d at (%d,%d) outside %dx%d grid", i+1, start.Col, start.Row, config.Cols, config.Rows)
		}
		if obstacleSet[TileRef{Col: start.Col, Row: start.Row}] {
			return fmt.Errorf("mower start %d at (%d,%d) overlaps an obstacle", i+1, start.Col, start.Row)
		}
	}

	return nil
}

// levelIDPattern 匹配 "章-关" 形式的关卡ID，如 "1-1"、"2-3"
var levelIDPattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ParseLevelID 解析关卡ID，返回章号和关号
// ID 格式非法时返回错误
func ParseLevelID(id string) (chapter, number int, err error) {
	m := levelIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid level id: %q (expected form \"1-2\")", id)
	}
	chapter, _ = strconv.Atoi(m[1])
	number, _ = strconv.Atoi(m[2])
	return chapter, number, nil
}

// CompareLevelIDs 按章、关顺序比较两个关卡ID
// a 在 b 之前返回负数，相等返回 0，之后返回正数；非法ID排在最后
func CompareLevelIDs(a, b string) int {
	ca, na, errA := ParseLevelID(a)
	cb, nb, errB := ParseLevelID(b)
	if errA != nil || errB != nil {
		if errA == nil {
			return -1
		}
		if errB == nil {
			return 1
		}
		return strings.Compare(a, b)
	}
	if ca != cb {
		return ca - cb
	}
	return na - nb
}

// ListLevelIDs 列出所有嵌入的关卡ID，按章、关排序
func ListLevelIDs() ([]string, error) {
	entries, err := embedded.ReadDir("data/levels")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded levels: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}

	sort.Slice(ids, func(i, j int) bool {
		return CompareLevelIDs(ids[i], ids[j]) < 0
	})
	return ids, nil
}
