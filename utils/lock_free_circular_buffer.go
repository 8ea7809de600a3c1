package utils

import (
	"sync/atomic"
)

// LockFreeCircularBuffer 无锁环形缓冲区, 保留最近 size 个元素
type LockFreeCircularBuffer[T any] struct {
	data []atomic.Pointer[T]
	size int64
	head atomic.Int64
}

func NewLockFreeCircularBuffer[T any](size int) *LockFreeCircularBuffer[T] {
	if size < 1 {
		size = 1
	}
	return &LockFreeCircularBuffer[T]{
		data: make([]atomic.Pointer[T], size),
		size: int64(size),
	}
}

// Add 添加元素（无锁）
func (cb *LockFreeCircularBuffer[T]) Add(item *T) {
	pos := cb.head.Add(1) - 1
	cb.data[pos%cb.size].Store(item)
}

func (cb *LockFreeCircularBuffer[T]) Len() int {
	return int(min(cb.head.Load(), cb.size))
}

func (cb *LockFreeCircularBuffer[T]) Cap() int {
	return int(cb.size)
}

// GetAll 获取所有元素, 从旧到新
func (cb *LockFreeCircularBuffer[T]) GetAll() []*T {
	head := cb.head.Load()
	count := min(head, cb.size)
	if count == 0 {
		return nil
	}

	result := make([]*T, 0, count)
	for i := head - count; i < head; i++ {
		if item := cb.data[i%cb.size].Load(); item != nil {
			result = append(result, item)
		}
	}
	return result
}
