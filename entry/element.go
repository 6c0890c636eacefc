package entry

import "strings"

// Param is a single NAME="VALUE" pair inside a structured-data element.
type Param struct {
	Name  string
	Value string
}

// Element is an RFC 5424 structured-data element: an SD-ID followed by zero
// or more params, rendered as "[id name=\"value\" ...]".
type Element struct {
	ID     string
	Params []Param
}

// NewElement creates an element with the given SD-ID.
func NewElement(id string) Element {
	return Element{ID: id}
}

// AddParam appends a param to the element and returns it for chaining.
func (el Element) AddParam(name, value string) Element {
	el.Params = append(el.Params, Param{Name: name, Value: value})
	return el
}

// pidElement builds the structured-data element injected when a target has
// OptionPID set: "[pid pid=\"1234\"]".
func pidElement(pid int) Element {
	return NewElement("pid").AddParam("pid", itoa(pid))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}

// escapeParamValue escapes the three characters RFC 5424 requires escaped
// inside a PARAM-VALUE: '"', '\', and ']'.
func escapeParamValue(s string) string {
	if !strings.ContainsAny(s, `"\]`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '"', '\\', ']':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
