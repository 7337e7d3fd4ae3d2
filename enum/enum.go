package enum

// Enum is object with relationships of enumerates and strings values.
// Values keep the order they were added in.
type Enum struct {
	mapIndexString map[interface{}]string
	mapStringIndex map[string]interface{}
	order          []string
}

// New creates enumeration
func New() *Enum {
	return &Enum{
		mapIndexString: make(map[interface{}]string),
		mapStringIndex: make(map[string]interface{}),
		order:          make([]string, 0),
	}
}

// Add new relationship of a enumeration and a string value
func (e *Enum) Add(index interface{}, str string) *Enum {
	if _, ok := e.mapStringIndex[str]; !ok {
		e.order = append(e.order, str)
	}
	e.mapIndexString[index] = str
	e.mapStringIndex[str] = index
	return e
}

// GetByString returns a enumeration value by string key
func (e *Enum) GetByString(val string) (interface{}, bool) {
	index, ok := e.mapStringIndex[val]
	return index, ok
}

// GetByIndex returns a string value by a enumeration value
func (e *Enum) GetByIndex(val interface{}) (string, bool) {
	str, ok := e.mapIndexString[val]
	return str, ok
}

// Name returns a string value by a enumeration value or def if it is unknown
func (e *Enum) Name(val interface{}, def string) string {
	if str, ok := e.mapIndexString[val]; ok {
		return str
	}
	return def
}

// StringKeys returns all strings keys of enumeration in insertion order
func (e *Enum) StringKeys() []string {
	list := make([]string, len(e.order))
	copy(list, e.order)
	return list
}
