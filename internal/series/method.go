package series

import (
	"fmt"
	"strings"
)

// Method selects a summation strategy.
type Method int

const (
	// MethodForward adds terms in ascending index order. Reference behaviour.
	MethodForward Method = iota
	// MethodCompensated adds terms in ascending order with Neumaier compensation.
	MethodCompensated
	// MethodReverse adds terms in descending index order, smallest first.
	MethodReverse
)

var methodNames = map[Method]string{
	MethodForward:     "forward",
	MethodCompensated: "compensated",
	MethodReverse:     "reverse",
}

// Methods lists all methods in declaration order.
func Methods() []Method {
	return []Method{MethodForward, MethodCompensated, MethodReverse}
}

// MethodNames lists the textual names accepted by ParseMethod.
func MethodNames() []string {
	names := make([]string, 0, len(methodNames))
	for _, m := range Methods() {
		names = append(names, m.String())
	}
	return names
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name. Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods() {
		if m.String() == want {
			return m, nil
		}
	}
	return 0, invalid(s, fmt.Sprintf("unknown method, must be one of %v", MethodNames()))
}
