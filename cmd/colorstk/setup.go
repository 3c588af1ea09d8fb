package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	infraConfig "github.com/Yat-Muk/colorstk/internal/infra/config"
	infraPalette "github.com/Yat-Muk/colorstk/internal/infra/palette"
	"github.com/Yat-Muk/colorstk/internal/pkg/appctx"
	"github.com/Yat-Muk/colorstk/internal/pkg/logger"
	"github.com/Yat-Muk/colorstk/internal/tui/handlers"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
)

// 初始顏色
const initialHTML = "#ff0000"

// AppDependencies 命令行與 TUI 共用的依賴
type AppDependencies struct {
	Log       *zap.Logger
	Paths     *appctx.Paths
	Config    *domainConfig.Config
	ConfigSvc *application.ConfigService
	Palettes  *application.PaletteService

	// 調色板文件無法讀取；TUI 以致命狀態顯示，命令行直接返回
	PaletteErr error
}

// options 全局命令行參數
type options struct {
	dir   string
	debug bool

	// 控制台日誌輸出，nil 表示只寫文件
	console io.Writer
}

// newLogger 按配置文件中的日誌設置創建日誌記錄器
func newLogger(paths *appctx.Paths, cfg domainConfig.LogConfig, opts options) (*zap.Logger, error) {
	logCfg := logger.DefaultConfig()
	logCfg.OutputPath = paths.LogFile
	if cfg.Level != "" {
		logCfg.Level = cfg.Level
	}
	if cfg.MaxSize > 0 {
		logCfg.MaxSize = cfg.MaxSize
	}
	if cfg.MaxBackups > 0 {
		logCfg.MaxBackups = cfg.MaxBackups
	}
	if cfg.MaxAge > 0 {
		logCfg.MaxAge = cfg.MaxAge
	}
	logCfg.Compress = cfg.Compress
	if opts.debug {
		logCfg.Level = "debug"
	}
	if opts.console != nil {
		logCfg.Console = true
		logCfg.ConsoleOutput = opts.console
	}
	return logger.New(logCfg)
}

func initializeDependencies(ctx context.Context, opts options) (*AppDependencies, error) {
	// ==========================================
	// 1. 路徑與配置
	// ==========================================
	paths, err := appctx.NewPaths(opts.dir)
	if err != nil {
		return nil, fmt.Errorf("無法初始化路徑: %w", err)
	}

	// 日誌級別來自配置文件，所以先用空日誌加載配置
	configRepo := infraConfig.NewFileRepository(paths.ConfigFile, nil)
	bootstrapSvc := application.NewConfigService(configRepo, nil)
	cfg, err := bootstrapSvc.LoadWithMigration(ctx)
	if err != nil {
		return nil, fmt.Errorf("加載配置失敗: %w", err)
	}

	log, err := newLogger(paths, cfg.Log, opts)
	if err != nil {
		return nil, fmt.Errorf("日誌初始化失敗: %w", err)
	}

	// ==========================================
	// 2. 應用服務層
	// ==========================================
	configSvc := application.NewConfigService(infraConfig.NewFileRepository(paths.ConfigFile, log), log)

	palettes := application.NewPaletteService(infraPalette.NewFileRepository(paths.PaletteFile, log), log)
	paletteErr := palettes.Load(ctx)
	if paletteErr != nil {
		log.Error("調色板文件加載失敗", logger.Error(paletteErr))
	}

	return &AppDependencies{
		Log:        log,
		Paths:      paths,
		Config:     cfg,
		ConfigSvc:  configSvc,
		Palettes:   palettes,
		PaletteErr: paletteErr,
	}, nil
}

// buildHandlerConfig 組裝 TUI 的狀態與處理器配置
func buildHandlerConfig(deps *AppDependencies, rng *rand.Rand) (*handlers.Config, func(), error) {
	cfg := deps.Config
	wref, err := cfg.WhiteRef()
	if err != nil {
		return nil, nil, err
	}
	mode, err := cfg.SchemeMode()
	if err != nil {
		return nil, nil, err
	}
	vrange, err := cfg.ValueRange()
	if err != nil {
		return nil, nil, err
	}
	spaces, err := cfg.Spaces()
	if err != nil {
		return nil, nil, err
	}

	initial, err := colorspace.FromHTML(initialHTML, wref)
	if err != nil {
		return nil, nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// ==========================================
	// 顏色狀態與訂閱者（註冊順序即通知順序）
	// ==========================================
	color := colorstate.New(initial)
	engine := valuesync.NewEngine(color, spaces, vrange, deps.Log)
	lookup := application.NewLookupService(color, wref, mode, rng, deps.Log)

	stateMgr := state.NewManager(&state.Config{
		Log:           deps.Log,
		InitialConfig: cfg,
		Color:         color,
		Engine:        engine,
		Lookup:        lookup,
		Palettes:      deps.Palettes,
	})

	if deps.PaletteErr != nil {
		stateMgr.UI().SetStatus(state.StatusFatal,
			"✗ 調色板文件無法讀取: "+deps.PaletteErr.Error(),
			"請修復或移除 "+deps.Paths.PaletteFile+"，按 Ctrl+C 退出")
	}

	cleanup := func() {
		lookup.Close()
		engine.Close()
	}

	return &handlers.Config{
		Log:       deps.Log,
		StateMgr:  stateMgr,
		ConfigSvc: deps.ConfigSvc,
		Palettes:  deps.Palettes,
	}, cleanup, nil
}
