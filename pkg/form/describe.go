package form

// RuleInfo names a rule and its arguments.
type RuleInfo struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// FieldInfo describes one field or rule-carrying group for a rendering layer.
// Array entries are described once under "<array>.*".
type FieldInfo struct {
	Path  string     `json:"path"`
	Group bool       `json:"group,omitempty"`
	Value any        `json:"value,omitempty"`
	Rules []RuleInfo `json:"rules,omitempty"`
}

// Describe lists the fields of g in declaration order with their current rules.
func Describe(g *Group) []FieldInfo {
	var out []FieldInfo
	if len(g.rules) > 0 {
		out = append(out, groupInfo("", g))
	}
	return describe(g, "", out)
}

func describe(g *Group, prefix string, out []FieldInfo) []FieldInfo {
	for _, c := range g.controls {
		path := joinPath(prefix, c.Name())
		switch v := c.(type) {
		case *Field:
			info := FieldInfo{Path: path, Value: v.initial}
			for _, r := range v.rules {
				info.Rules = append(info.Rules, RuleInfo{Name: r.Name, Params: r.Params()})
			}
			out = append(out, info)
		case *Group:
			if len(v.rules) > 0 {
				out = append(out, groupInfo(path, v))
			}
			out = describe(v, path, out)
		case *Array:
			out = describe(v.Template(), joinPath(path, "*"), out)
		}
	}
	return out
}

func groupInfo(path string, g *Group) FieldInfo {
	info := FieldInfo{Path: path, Group: true}
	for _, r := range g.rules {
		info.Rules = append(info.Rules, RuleInfo{Name: r.Name})
	}
	return info
}
