package appctx

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvHome 覆蓋默認數據目錄的環境變量
const EnvHome = "COLORSTK_HOME"

// Paths 定義應用程序所有的關鍵路徑
type Paths struct {
	BaseDir string
	DataDir string
	LogDir  string

	ConfigFile  string
	PaletteFile string
	LogFile     string
}

// NewPaths 解析並創建目錄；baseDir 為空時依次使用 $COLORSTK_HOME、~/.colorstk
func NewPaths(baseDir string) (*Paths, error) {
	if baseDir == "" {
		baseDir = os.Getenv(EnvHome)
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("無法獲取用戶主目錄: %w", err)
		}
		baseDir = filepath.Join(home, ".colorstk")
	}

	absPath, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("無法解析絕對路徑: %w", err)
	}

	dataDir := filepath.Join(absPath, "data")
	logDir := filepath.Join(absPath, "logs")

	paths := &Paths{
		BaseDir:     absPath,
		DataDir:     dataDir,
		LogDir:      logDir,
		ConfigFile:  filepath.Join(absPath, "config.yaml"),
		PaletteFile: filepath.Join(dataDir, "palettes.json"),
		LogFile:     filepath.Join(logDir, "colorstk.log"),
	}

	// 確保目錄存在
	for _, dir := range []string{paths.BaseDir, paths.DataDir, paths.LogDir} {
		perm := os.FileMode(0700)
		if dir == paths.LogDir {
			perm = 0755
		}
		if err := os.MkdirAll(dir, perm); err != nil {
			return nil, fmt.Errorf("無法創建目錄 %s: %w", dir, err)
		}
	}

	return paths, nil
}
