package palette

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	domainPalette "github.com/Yat-Muk/colorstk/internal/domain/palette"
	"github.com/Yat-Muk/colorstk/internal/infra/fileutil"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
)

// fileSchema palettes.json 的結構：{"<name>": {"colors": [[r,g,b], ...]}}
const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["colors"],
    "properties": {
      "colors": {
        "type": "array",
        "items": {
          "type": "array",
          "minItems": 3,
          "maxItems": 3,
          "items": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(fileSchema)

// record 文件中單個調色板的值
type record struct {
	Colors []domainPalette.RGB `json:"colors"`
}

// FileRepository 基於 JSON 文件的調色板倉庫，每次寫入都重寫整個文件
type FileRepository struct {
	filePath string
	mu       sync.Mutex
	logger   *zap.Logger

	// 磁盤內容的鏡像，按文件順序
	names   []string
	records map[string]record
}

func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{
		filePath: path,
		logger:   logger,
		records:  make(map[string]record),
	}
}

// Path 文件路徑
func (r *FileRepository) Path() string {
	return r.filePath
}

// LoadAll 讀取整個文件；文件不存在或為空時返回空列表
func (r *FileRepository) LoadAll(ctx context.Context) ([]domainPalette.Palette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.filePath)
	if os.IsNotExist(err) {
		r.logger.Info("調色板文件不存在，從空列表開始", zap.String("path", r.filePath))
		r.names, r.records = nil, make(map[string]record)
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrPersistence, errors.CodePersistence,
			fmt.Sprintf("讀取調色板文件失敗: %v", err))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		r.names, r.records = nil, make(map[string]record)
		return nil, nil
	}

	if err := validate(data); err != nil {
		return nil, errors.Wrap(errors.ErrPersistence, errors.CodePersistence,
			fmt.Sprintf("調色板文件 %s 已損壞: %v", r.filePath, err))
	}

	names, records, err := decodeOrdered(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrPersistence, errors.CodePersistence,
			fmt.Sprintf("解析調色板文件失敗: %v", err))
	}
	r.names, r.records = names, records

	out := make([]domainPalette.Palette, 0, len(names))
	for _, name := range names {
		out = append(out, domainPalette.Palette{
			Name:   name,
			Colors: append([]domainPalette.RGB(nil), records[name].Colors...),
		})
	}

	r.logger.Debug("調色板已加載", zap.String("path", r.filePath), zap.Int("count", len(out)))
	return out, nil
}

// Put 新建或覆蓋一個調色板並寫盤
func (r *FileRepository) Put(ctx context.Context, p domainPalette.Palette) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, records := r.snapshot()
	if _, ok := records[p.Name]; !ok {
		names = append(names, p.Name)
	}
	colors := append([]domainPalette.RGB{}, p.Colors...)
	records[p.Name] = record{Colors: colors}

	return r.commit(names, records)
}

// Remove 刪除一個調色板並寫盤
func (r *FileRepository) Remove(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[name]; !ok {
		return nil
	}

	names, records := r.snapshot()
	delete(records, name)
	for i, n := range names {
		if n == name {
			names = append(names[:i], names[i+1:]...)
			break
		}
	}

	return r.commit(names, records)
}

// snapshot 複製當前鏡像，寫盤失敗時鏡像保持不變
func (r *FileRepository) snapshot() ([]string, map[string]record) {
	names := append([]string(nil), r.names...)
	records := make(map[string]record, len(r.records))
	for k, v := range r.records {
		records[k] = v
	}
	return names, records
}

func (r *FileRepository) commit(names []string, records map[string]record) error {
	data, err := encodeOrdered(names, records)
	if err != nil {
		return errors.Wrap(errors.ErrPersistence, errors.CodePersistence,
			fmt.Sprintf("序列化調色板失敗: %v", err))
	}

	if err := fileutil.WriteAtomic(r.filePath, data, "palettes.*.json.tmp", 0600); err != nil {
		r.logger.Error("寫入調色板文件失敗", zap.String("path", r.filePath), zap.Error(err))
		return errors.Wrap(errors.ErrPersistence, errors.CodePersistence, err.Error())
	}

	r.names, r.records = names, records
	return nil
}

// validate 用 JSON Schema 校驗文件結構
func validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// decodeOrdered 逐個讀取頂層鍵，保持文件中的順序
func decodeOrdered(data []byte) ([]string, map[string]record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("頂層必須是對象")
	}

	var names []string
	records := make(map[string]record)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("無效的調色板名稱: %v", tok)
		}

		var rec record
		if err := dec.Decode(&rec); err != nil {
			return nil, nil, fmt.Errorf("調色板 %q: %w", name, err)
		}
		if _, dup := records[name]; !dup {
			names = append(names, name)
		}
		records[name] = rec
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, nil, err
	}
	return names, records, nil
}

// encodeOrdered 按給定順序寫出頂層對象
func encodeOrdered(names []string, records map[string]record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, name := range names {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		rec := records[name]
		if rec.Colors == nil {
			rec.Colors = []domainPalette.RGB{}
		}
		val, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(names) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
