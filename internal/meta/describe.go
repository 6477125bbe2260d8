package meta

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// TypeInfo holds the ordered member descriptors of one struct type.
type TypeInfo struct {
	Type    reflect.Type
	Members []*Member      // visible members sorted by (Order, Index)
	Bases   []reflect.Type // embedded struct types, the inheritance chain
	Editor  string         // named custom editor registered for the type
}

// descCache caches Describe results. The editor runs single-threaded
// inside the frame loop, so a plain map is enough.
var descCache = map[reflect.Type]*TypeInfo{}

// Describe returns the member descriptors for t, which may be a struct
// type or a pointer to one. Non-struct types get an empty descriptor
// rather than an error: the generic editor simply renders no members.
func Describe(t reflect.Type) *TypeInfo {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return &TypeInfo{}
	}
	if info, ok := descCache[t]; ok {
		return info
	}
	info := &TypeInfo{Type: t, Editor: typeEditors[t]}
	if t.Kind() == reflect.Struct {
		collectMembers(info, t, nil)
		sort.SliceStable(info.Members, func(i, j int) bool {
			a, b := info.Members[i], info.Members[j]
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.Index < b.Index
		})
	}
	descCache[t] = info
	return info
}

// collectMembers gathers exported fields of t, flattening embedded
// structs (their fields are promoted, the embedded type is remembered
// as a base for editor-attribute lookup).
func collectMembers(info *TypeInfo, t reflect.Type, prefix []int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		path := append(append([]int(nil), prefix...), i)
		if f.Anonymous && baseType(f.Type) != nil {
			bt := baseType(f.Type)
			info.Bases = append(info.Bases, bt)
			collectMembers(info, bt, path)
			continue
		}
		tag := parseEditTag(f.Tag.Get("edit"))
		if tag.skip || jsonSkipped(f.Tag.Get("json")) {
			continue
		}
		info.Members = append(info.Members, &Member{
			owner:    info.Type,
			Name:     f.Name,
			Order:    tag.order,
			Index:    len(info.Members),
			Type:     f.Type,
			Tooltip:  tag.tooltip,
			Hidden:   tag.hidden,
			ReadOnly: tag.readonly,
			Editor:   tag.editor,
			path:     path,
		})
	}
}

func baseType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		return t
	}
	return nil
}

func jsonSkipped(tag string) bool {
	return tag == "-"
}

type editTag struct {
	order    int
	tooltip  string
	editor   string
	hidden   bool
	readonly bool
	skip     bool
}

// parseEditTag parses `edit:"order=10,tooltip=Mass in kg,readonly"`.
// An edit tag of "-" excludes the field entirely.
func parseEditTag(raw string) editTag {
	var tag editTag
	if raw == "" {
		return tag
	}
	if raw == "-" {
		tag.skip = true
		return tag
	}
	for _, part := range strings.Split(raw, ",") {
		key, val, _ := strings.Cut(part, "=")
		switch strings.TrimSpace(key) {
		case "order":
			if n, err := strconv.Atoi(val); err == nil {
				tag.order = n
			}
		case "tooltip":
			tag.tooltip = val
		case "editor":
			tag.editor = val
		case "hidden":
			tag.hidden = true
		case "readonly":
			tag.readonly = true
		}
	}
	return tag
}
