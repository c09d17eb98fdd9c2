// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// MemoryFootprint describes the memory usage of a component and its
// sub-components. It is a diagnostic aid only; reported values are
// approximations based on static type sizes.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a footprint node covering the given number of
// bytes, not including any children.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{value: value}
}

// AddChild registers the footprint of a named sub-component.
func (m *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if m.children == nil {
		m.children = make(map[string]*MemoryFootprint)
	}
	m.children[name] = child
}

// Total returns the accumulated footprint of this node and all its children.
func (m *MemoryFootprint) Total() uintptr {
	if m == nil {
		return 0
	}
	total := m.value
	for _, child := range m.children {
		total += child.Total()
	}
	return total
}

func (m *MemoryFootprint) String() string {
	var builder strings.Builder
	m.print(&builder, "")
	return builder.String()
}

// FootprintOfMap estimates the footprint of a map based on the static sizes
// of its key and value types.
func FootprintOfMap[K comparable, V any](m map[K]V) *MemoryFootprint {
	entrySize :=
		reflect.TypeFor[K]().Size() +
			reflect.TypeFor[V]().Size()
	return NewMemoryFootprint(uintptr(len(m)) * entrySize)
}

func (m *MemoryFootprint) print(builder *strings.Builder, path string) {
	label := path
	if label == "" {
		label = "."
	}
	fmt.Fprintf(builder, "%d %s\n", m.Total(), label)
	names := make([]string, 0, len(m.children))
	for name := range m.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m.children[name].print(builder, path+"/"+name)
	}
}
