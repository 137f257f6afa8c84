package besteffort

// Result 包装一次"尽力而为"读取的返回值。
// 统计类读取在底层存储异常时返回安全的默认值而不是报错，
// 这个包装让调用方（和测试）能区分"结果确实为空"与"失败被吞掉了"。
type Result[T any] struct {
	// Value 是读取结果；降级时为传入的默认值
	Value T
	// Degraded 标记本次读取是否发生了降级
	Degraded bool
	// Err 是降级时被吞掉的底层错误，仅用于诊断
	Err error
}

// Ok 构造一个正常的读取结果
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Degraded 构造一个降级的读取结果，携带默认值和被吞掉的错误
func Degraded[T any](fallback T, err error) Result[T] {
	return Result[T]{Value: fallback, Degraded: true, Err: err}
}
