package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Resource 资源种类：五种宝石 + 黄金（万能）
type Resource int

const (
	Diamond Resource = iota
	Sapphire
	Emerald
	Onyx
	Ruby
	Gold

	NumResources = 6
)

// Gems 五种普通宝石，按枚举顺序
var Gems = []Resource{Diamond, Sapphire, Emerald, Onyx, Ruby}

var resourceNames = [NumResources]string{
	Diamond:  "diamond",
	Sapphire: "sapphire",
	Emerald:  "emerald",
	Onyx:     "onyx",
	Ruby:     "ruby",
	Gold:     "gold",
}

func (r Resource) String() string {
	if !r.Valid() {
		return "Resource(" + strconv.Itoa(int(r)) + ")"
	}
	return resourceNames[r]
}

func (r Resource) Valid() bool {
	return r >= Diamond && r <= Gold
}

func (r Resource) IsGold() bool {
	return r == Gold
}

// ParseResource 解析资源名称，不区分大小写
func ParseResource(s string) (Resource, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), nil
		}
	}
	return 0, fmt.Errorf("未知的资源类型: %q", s)
}

// Resources 按资源种类索引的数量表，数量始终 >= 0
type Resources [NumResources]int

// NewResources 创建一个宝石数量表（黄金为 0）
func NewResources(diamond, sapphire, emerald, onyx, ruby int) Resources {
	var r Resources
	r[Diamond] = diamond
	r[Sapphire] = sapphire
	r[Emerald] = emerald
	r[Onyx] = onyx
	r[Ruby] = ruby
	return r
}

func (r Resources) Get(kind Resource) int {
	return r[kind]
}

// Set 直接覆盖数量，只在初始化时使用
func (r *Resources) Set(kind Resource, n int) {
	r[kind] = n
}

// Update 增减数量，结果小于 0 时置为 0。
// 调用方需先用 Can... 系列判断保证不会扣除超过现有数量。
func (r *Resources) Update(kind Resource, delta int) {
	r[kind] = max(0, r[kind]+delta)
}

// Add 逐项累加
func (r *Resources) Add(other Resources) {
	for i := range r {
		r.Update(Resource(i), other[i])
	}
}

// Available 返回数量 > 0 的资源，按枚举顺序
func (r Resources) Available() []Resource {
	res := make([]Resource, 0, NumResources)
	for i, n := range r {
		if n > 0 {
			res = append(res, Resource(i))
		}
	}
	return res
}

func (r Resources) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

func (r Resources) IsZero() bool {
	return r == Resources{}
}

func (r Resources) String() string {
	parts := make([]string, 0, NumResources)
	for i, n := range r {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, Resource(i)))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// Map 转为 name -> count，供 JSON 展示
func (r Resources) Map() map[string]int {
	m := make(map[string]int, NumResources)
	for i, n := range r {
		m[Resource(i).String()] = n
	}
	return m
}
