package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic 原子寫入：臨時文件 -> 寫入 -> Sync -> 關閉 -> Rename -> Chmod
//
// pattern 為 os.CreateTemp 的文件名模式，臨時文件與目標位於同一目錄
func WriteAtomic(path string, data []byte, pattern string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("創建目錄失敗: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return fmt.Errorf("創建臨時文件失敗: %w", err)
	}
	tmpName := tmpFile.Name()

	// 出錯時清理臨時文件
	writeSuccess := false
	defer func() {
		if !writeSuccess {
			tmpFile.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("寫入數據失敗: %w", err)
	}

	// 強制落盤
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("同步磁盤失敗: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("關閉臨時文件失敗: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("替換文件失敗: %w", err)
	}
	writeSuccess = true

	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("設置文件權限失敗: %w", err)
	}
	return nil
}
