package constants

const (
	// ==========================================
	// 全局 (Lookup 界面任意標籤頁)
	// ==========================================
	KeyGlobal_Undo     = "u" // 撤銷
	KeyGlobal_Redo     = "r" // 重做
	KeyGlobal_Random   = "x" // 隨機顏色
	KeyGlobal_Palettes = "p" // 調色板列表
	KeyGlobal_AddTo    = "a" // 加入調色板
	KeyGlobal_Settings = "s" // 設置
	KeyGlobal_Quit     = "q" // 退出程序

	// ==========================================
	// 信息頁 (Info)
	// ==========================================
	KeyInfo_Websafe       = "w" // 跳轉到 web 安全色
	KeyInfo_Greyscale     = "g" // 跳轉到灰度
	KeyInfo_Complementary = "c" // 跳轉到互補色
	KeyInfo_Named         = "n" // n <名稱>：按 SVG 顏色名跳轉

	// ==========================================
	// 工具頁 (Tools)
	// ==========================================
	KeyTools_Slot1  = "1" // 存入選色槽 1（單擊）
	KeyTools_Slot2  = "2" // 存入選色槽 2
	KeyTools_Recall = "l" // l1 / l2：取出選色槽（長按）
	KeyTools_Blend  = "b" // 混合兩個選色槽

	// ==========================================
	// 調色板列表 / 顏色列表
	// ==========================================
	KeyPalette_New    = "n" // 新建調色板
	KeyPalette_Select = "v" // 進入選擇模式
	KeyPalette_Delete = "d" // 刪除已選項目
	KeyPalette_All    = "*" // 全選 / 全不選

	// ==========================================
	// 設置
	// ==========================================
	KeySettings_WhitePoint = "1" // 白點
	KeySettings_Observer   = "2" // 觀察者視角
	KeySettings_SchemeMode = "3" // 色輪模式
	KeySettings_ValueRange = "4" // sRGB 數值範圍
	KeySettings_Detach     = "5" // 數值面板獨立顯示

	// 色彩空間開關從此序號開始依次排列
	SettingsSpaceOffset = 6
)
