package model

import "sort"

// Index 是 "统计值 -> 文件路径" 的有序映射。
//
// 约束说明：
// - 键唯一，多个文件统计值相同时只保留一个路径
// - 冲突时保留字典序更小的路径，因此结果与插入顺序无关
// - 零值可直接使用
type Index struct {
	entries map[uint64]string
}

// Insert 写入一条记录，冲突时按字典序取较小路径。
func (idx *Index) Insert(key uint64, path string) {
	if idx.entries == nil {
		idx.entries = make(map[uint64]string)
	}
	if existing, ok := idx.entries[key]; ok && existing <= path {
		return
	}
	idx.entries[key] = path
}

// Merge 把另一个索引的全部记录写入当前索引。
func (idx *Index) Merge(other *Index) {
	for key, path := range other.entries {
		idx.Insert(key, path)
	}
}

// Len 返回不同键的数量。
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Lookup 返回指定键对应的路径。
func (idx *Index) Lookup(key uint64) (string, bool) {
	path, ok := idx.entries[key]
	return path, ok
}

// Keys 按升序返回全部键。
func (idx *Index) Keys() []uint64 {
	keys := make([]uint64, 0, len(idx.entries))
	for key := range idx.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// First 返回最小键及其路径。
func (idx *Index) First() (Extremum, error) {
	return idx.pick(func(candidate uint64, current uint64) bool { return candidate < current })
}

// Last 返回最大键及其路径。
func (idx *Index) Last() (Extremum, error) {
	return idx.pick(func(candidate uint64, current uint64) bool { return candidate > current })
}

func (idx *Index) pick(better func(candidate uint64, current uint64) bool) (Extremum, error) {
	if len(idx.entries) == 0 {
		return Extremum{}, ErrEmptyDataset
	}

	var result Extremum
	found := false
	for key, path := range idx.entries {
		if !found || better(key, result.Value) {
			result = Extremum{Value: key, Path: path}
			found = true
		}
	}
	return result, nil
}
