package const_data

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"go-splendor/utils"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// 标准 90 张发展卡 + 10 位贵族
//
//go:embed stats.csv
var statsCSV []byte

var csvColumns = []string{"tier", "diamond", "sapphire", "emerald", "ruby", "onyx", "points", "type"}

// Default 返回内置的标准卡牌数据
func Default() ([]Record, error) {
	return LoadCSV(bytes.NewReader(statsCSV))
}

// LoadFile 按扩展名选择 CSV 或 YAML 解析
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: 打开数据文件失败: %v", ErrConfiguration, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return nil, fmt.Errorf("%w: 不支持的数据文件格式: %s", ErrConfiguration, path)
	}
}

// LoadCSV 解析带表头的 CSV：tier,diamond,sapphire,emerald,ruby,onyx,points,type
func LoadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: 缺少表头", ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: 读取表头失败: %v", ErrConfiguration, err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	for _, col := range csvColumns[:len(csvColumns)-1] {
		if !utils.StringInSlice(col, header) {
			return nil, fmt.Errorf("%w: 表头缺少列 %q", ErrConfiguration, col)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: 第 %d 行解析失败: %v", ErrConfiguration, line, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}

		fields := make(map[string]interface{}, len(header))
		for i, col := range header {
			if i < len(row) {
				fields[col] = row[i]
			}
		}
		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: 第 %d 行: %v", ErrConfiguration, line, err)
		}
		records = append(records, rec)
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadYAML 解析 YAML 数组，每个元素字段与 CSV 列一致
func LoadYAML(r io.Reader) ([]Record, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: 数据为空", ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: YAML 解析失败: %v", ErrConfiguration, err)
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeRecord(fields map[string]interface{}) (Record, error) {
	var rec Record
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: stringToIntHookFunc(),
		Result:     &rec,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return rec, err
	}
	if err := decoder.Decode(fields); err != nil {
		return rec, err
	}
	return rec, nil
}

// 自定义 HookFunc，把字符串转换成 int，空字符串视为 0
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			s := strings.TrimSpace(data.(string))
			if s == "" {
				return 0, nil
			}
			return strconv.Atoi(s)
		}
		return data, nil
	}
}
