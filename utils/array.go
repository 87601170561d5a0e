package utils

import "slices"

// SafeSlice 截取前 max 个元素，不足时原样返回
func SafeSlice[T any](slice []T, max int) []T {
	if len(slice) < max {
		return slice
	}
	return slice[:max]
}

func StringInSlice(target string, list []string) bool {
	return slices.Contains(list, target)
}

// RemoveFirst 删除第一个等于 v 的元素，返回新切片以及是否删除
func RemoveFirst[T comparable](slice []T, v T) ([]T, bool) {
	i := slices.Index(slice, v)
	if i < 0 {
		return slice, false
	}
	return slices.Delete(slice, i, i+1), true
}

// Combinations 返回 items 中所有大小为 k 的组合，保持原有顺序
func Combinations[T any](items []T, k int) [][]T {
	if k <= 0 || k > len(items) {
		return nil
	}
	var res [][]T
	cur := make([]T, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(cur) == k {
			res = append(res, slices.Clone(cur))
			return
		}
		for i := start; i <= len(items)-(k-len(cur)); i++ {
			cur = append(cur, items[i])
			walk(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	walk(0)
	return res
}
