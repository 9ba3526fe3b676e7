package parser

import (
	"errors"
	"fmt"
)

// ErrMissingHeader 上传表缺少必需的表头
var ErrMissingHeader = errors.New("missing required header")

// ErrInvalidQuantity 数量不是整数
var ErrInvalidQuantity = errors.New("quantity is not an integer")

// ErrInvalidWorkbook 上传文件无法作为 xlsx 读取
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// HeaderError 缺失表头
type HeaderError struct {
	Header string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingHeader, e.Header)
}

func (e *HeaderError) Unwrap() error {
	return ErrMissingHeader
}

// CellError 单元格取值错误
type CellError struct {
	Row    int    // 1 起，含表头
	Column string // 输入表头
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v (value %q)", e.Row, e.Column, e.Err, e.Value)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
