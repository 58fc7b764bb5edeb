// Package importer は単語リストのファイル (.xlsx / .csv) を読み込みます。
// 列は term, meaning, phonetic, part_of_speech, example の順で、1行目はヘッダーとして読み飛ばします。
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat は拡張子が .xlsx / .csv 以外の場合に返します
var ErrUnsupportedFormat = errors.New("unsupported file format")

// 列の位置
const (
	colTerm = iota
	colMeaning
	colPhonetic
	colPartOfSpeech
	colExample
)

// Row はファイルの1行分です。Line は1始まりの行番号です。
type Row struct {
	Line         int
	Term         string
	Meaning      string
	Phonetic     string
	PartOfSpeech string
	Example      string
}

// Read はファイル名の拡張子で形式を判断して行を読み込みます
func Read(r io.Reader, filename string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readExcel(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// readExcel は最初のシートを読み込みます
func readExcel(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	// GetRows は空行も含めて返すので添字がそのまま行番号になる
	lines := make([]int, len(records))
	for i := range records {
		lines[i] = i + 1
	}
	return toRows(records, lines), nil
}

func readCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 列数が行ごとに違ってもよい
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	// encoding/csv は空行を読み飛ばすので、行番号は FieldPos から取る
	var records [][]string
	var lines []int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}
	return toRows(records, lines), nil
}

// toRows は先頭のレコードをヘッダーとして除き、空行を飛ばして Row に変換します
func toRows(records [][]string, lines []int) []Row {
	rows := make([]Row, 0, len(records))
	for i, record := range records {
		if i == 0 || isBlank(record) {
			continue
		}
		rows = append(rows, Row{
			Line:         lines[i],
			Term:         cell(record, colTerm),
			Meaning:      cell(record, colMeaning),
			Phonetic:     cell(record, colPhonetic),
			PartOfSpeech: cell(record, colPartOfSpeech),
			Example:      cell(record, colExample),
		})
	}
	return rows
}

func cell(record []string, idx int) string {
	if idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
