package types

import (
	"errors"
	"fmt"
)

// 错误类型
var (
	// ErrParse 输入文本不是有限数值
	ErrParse = errors.New("invalid number")
	// ErrDomain 输入超出模型定义域
	ErrDomain = errors.New("value out of range")
	// ErrUnimplemented 模型尚未实现
	ErrUnimplemented = errors.New("model not yet available")
	// ErrUnknownModel 未注册的模型
	ErrUnknownModel = errors.New("unknown circuit model")
	// ErrNoWaveform 模型没有波形
	ErrNoWaveform = errors.New("model has no waveform")
	// ErrUnknownParam 模型没有该输入参数
	ErrUnknownParam = errors.New("unknown parameter")
)

// ParseError 文本解析错误
type ParseError struct {
	Param string // 参数名称
	Text  string // 原始文本
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid number", e.Param, e.Text)
}

// Unwrap 错误链
func (e *ParseError) Unwrap() error { return ErrParse }

// UnknownParamError 输入中出现了模型未定义的参数名
type UnknownParamError struct {
	Param string // 参数名称
	ID    string // 模型标识
}

func (e *UnknownParamError) Error() string {
	return fmt.Sprintf("%s: %s has no parameter %q", ErrUnknownParam, e.ID, e.Param)
}

// Unwrap 错误链
func (e *UnknownParamError) Unwrap() error { return ErrUnknownParam }

// DomainError 定义域错误
type DomainError struct {
	Param      string  // 参数名称，模型级约束时为空
	Constraint string  // 被违反的约束
	Value      float64 // 输入值
}

func (e *DomainError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s (got %g)", e.Constraint, e.Value)
	}
	return fmt.Sprintf("%s must satisfy %s (got %g)", e.Param, e.Constraint, e.Value)
}

// Unwrap 错误链
func (e *DomainError) Unwrap() error { return ErrDomain }

// UnimplementedError 模型尚未实现，属于提示而不是失败
type UnimplementedError struct {
	ID   string // 模型标识
	Name string // 模型名称
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s (%s) is not yet available", e.Name, e.ID)
}

// Unwrap 错误链
func (e *UnimplementedError) Unwrap() error { return ErrUnimplemented }

// NewDomainError 创建定义域错误
func NewDomainError(param, constraint string, value float64) error {
	return &DomainError{Param: param, Constraint: constraint, Value: value}
}

// NonFiniteError 计算结果溢出为非有限数值
func NonFiniteError(name string, value float64) error {
	return &DomainError{Param: name, Constraint: "a finite result", Value: value}
}
