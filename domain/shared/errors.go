/*
Package shared - 领域层共享错误定义

设计原则:
1. 领域层定义哨兵错误(sentinel errors)，用于 errors.Is() 类型安全判断
2. DomainError 在创建时捕获堆栈，但延迟格式化（按需打印）
3. 领域错误不包含 HTTP 状态码等传输层概念
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrNotFound 请求的记录不存在
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput 参数前置条件不满足
	ErrInvalidInput = errors.New("invalid input")
)

// DomainError 领域错误 - 携带业务上下文和发生点堆栈
type DomainError struct {
	// Err 哨兵错误，供 errors.Is 判断
	Err error

	// Entity 涉及的实体名称，如 "song"
	Entity string

	// Message 可读的错误描述
	Message string

	// Field 可选的参数或字段名
	Field string

	// Key 失败的查询键或操作，如 "id=7"；只写日志，不返回给客户端
	Key string

	stack []uintptr
}

// Error 实现 error 接口
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap 实现错误链，支持 errors.Is() 和 errors.As()
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Detail 返回用于日志输出的查询键
func (e *DomainError) Detail() string {
	return e.Key
}

// Stack 按需格式化堆栈（只在打印日志时调用）
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack 捕获当前调用栈
// skip: 跳过的帧数（通常为 3：Callers, CaptureStack, NewXxxError）
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack 将堆栈帧格式化为 "file:line function"，过滤 runtime 内部帧
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewNotFoundError 创建"未找到"领域错误
func NewNotFoundError(entity, message, key string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: message,
		Key:     key,
		stack:   CaptureStack(3),
	}
}

// NewInvalidArgumentError 创建"参数非法"领域错误
func NewInvalidArgumentError(entity, field, reason, key string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		Key:     key,
		stack:   CaptureStack(3),
	}
}

// Stacker 能报告发生点堆栈的错误实现此接口
type Stacker interface {
	Stack() []string
}
