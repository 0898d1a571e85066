package autosplit

// SettingValueKind tags a setting value's payload.
type SettingValueKind int

const (
	SettingBool SettingValueKind = iota
	SettingString
	SettingFloat
	SettingInt
)

// SettingValue is a dynamically-typed value the settings store exchanges
// with the script, built via typed setting_value_* constructors.
type SettingValue struct {
	Kind SettingValueKind
	Bool bool
	Str  string
	F64  float64
	I64  int64
}

// SettingsMap is an in-memory key-value store of SettingValues, exposed to
// the script through the settings_map_* host imports. It is not written to
// or read from any persistent storage.
type SettingsMap struct {
	values map[string]SettingValue
}

// NewSettingsMap creates an empty map.
func NewSettingsMap() *SettingsMap {
	return &SettingsMap{values: make(map[string]SettingValue)}
}

// Get returns the value stored under key.
func (m *SettingsMap) Get(key string) (SettingValue, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Insert stores v under key, returning the previous value if any.
func (m *SettingsMap) Insert(key string, v SettingValue) (SettingValue, bool) {
	old, ok := m.values[key]
	m.values[key] = v
	return old, ok
}

// Len reports the number of stored keys.
func (m *SettingsMap) Len() int { return len(m.values) }

// Copy returns a copy with its own backing map, so mutating one leaves the
// other unchanged; settings_map_copy hands the script such a copy.
func (m *SettingsMap) Copy() *SettingsMap {
	out := NewSettingsMap()
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// SettingsList is an ordered list of SettingValues, the settings_list_*
// counterpart of SettingsMap.
type SettingsList struct {
	items []SettingValue
}

// NewSettingsList creates an empty list.
func NewSettingsList() *SettingsList { return &SettingsList{} }

// Len reports the number of items.
func (l *SettingsList) Len() int { return len(l.items) }

// Get returns the item at index.
func (l *SettingsList) Get(index int) (SettingValue, bool) {
	if index < 0 || index >= len(l.items) {
		return SettingValue{}, false
	}
	return l.items[index], true
}

// Push appends v.
func (l *SettingsList) Push(v SettingValue) { l.items = append(l.items, v) }

// Insert inserts v at index, shifting later items back.
func (l *SettingsList) Insert(index int, v SettingValue) {
	if index < 0 || index > len(l.items) {
		return
	}
	l.items = append(l.items, SettingValue{})
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = v
}

// Copy returns a deep copy.
func (l *SettingsList) Copy() *SettingsList {
	out := &SettingsList{items: make([]SettingValue, len(l.items))}
	copy(out.items, l.items)
	return out
}

// WidgetKind tags a user settings widget variant.
type WidgetKind int

const (
	WidgetTitle WidgetKind = iota
	WidgetBool
	WidgetChoice
	WidgetFileSelect
)

// Widget describes one entry in the script's declared settings UI. Hosts
// render these to build a configuration screen; values round-trip through
// a SettingsMap keyed by Key.
type Widget struct {
	Kind WidgetKind
	Key  string
	Label string

	// Title: heading level (0 = top-level).
	HeadingLevel int

	// Bool: default value.
	DefaultBool bool

	// Choice: option labels/values and the default index.
	Options      []string
	DefaultIndex int

	// FileSelect: glob/MIME filters the host's file picker applies.
	Filters []string
}
