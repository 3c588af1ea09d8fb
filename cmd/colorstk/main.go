package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/pkg/version"
	"github.com/Yat-Muk/colorstk/internal/tui/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app 命令之間共享的參數與懶加載的依賴
type app struct {
	opts options
	deps *AppDependencies
}

func (a *app) load(cmd *cobra.Command) (*AppDependencies, error) {
	if a.deps != nil {
		return a.deps, nil
	}
	deps, err := initializeDependencies(contextOf(cmd), a.opts)
	if err != nil {
		return nil, err
	}
	deps.Log.Debug("colorstk 啟動",
		zap.String("version", version.Version),
		zap.String("command", cmd.CommandPath()),
	)
	a.deps = deps
	return deps, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var showVersion bool

	rootCmd := &cobra.Command{
		Use:   "colorstk",
		Short: "終端取色、色彩空間換算與調色板工具",
		Long: `colorstk 在十種色彩空間之間同步換算當前顏色，生成配色方案，並把顏色保存到調色板。

不帶子命令時啟動交互界面：
  Tab           切換標籤頁
  2r 255        修改第 2 行的 R 分量
  u / r         撤銷 / 重做
  p / a         調色板列表 / 把當前顏色加入調色板
  s             設置`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return nil
			}
			return a.runTUI(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.deps != nil {
				_ = a.deps.Log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.dir, "dir", "", "數據目錄 (默認: $COLORSTK_HOME 或 ~/.colorstk)")
	rootCmd.PersistentFlags().BoolVar(&a.opts.debug, "debug", false, "調試日誌")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "顯示版本")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "啟動交互界面（默認）",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runTUI(cmd)
			},
		},
		newConvertCmd(a),
		newSchemesCmd(a),
		newPaletteCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) runTUI(cmd *cobra.Command) error {
	deps, err := a.load(cmd)
	if err != nil {
		return err
	}
	redirectStdErr(filepath.Join(deps.Paths.LogDir, "stderr.log"))

	handlerCfg, cleanup, err := buildHandlerConfig(deps, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	mainModel := model.NewModel(model.NewRouter(handlerCfg))

	p := tea.NewProgram(
		mainModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(contextOf(cmd)),
	)

	// 崩潰保護
	defer func() {
		if r := recover(); r != nil {
			_ = p.ReleaseTerminal()
			fmt.Printf("\n\n❌ 程序崩潰: %v\n", r)
			deps.Log.Error("Panic", zap.Any("error", r), zap.String("stack", string(debug.Stack())))
			os.Exit(1)
		}
	}()

	deps.Log.Info("交互界面啟動")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("程序運行錯誤: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "顯示版本信息",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

func redirectStdErr(filename string) {
	_ = os.MkdirAll(filepath.Dir(filename), 0755)
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err == nil {
		os.Stderr = f
	}
}

// contextOf 命令沒有上下文時使用 Background
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
