// Copyright 2026 The web3go Authors
// This file is part of web3go.
//
// web3go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// web3go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with web3go. If not, see <http://www.gnu.org/licenses/>.

// Package abi implements the Solidity Contract ABI: type parsing, the
// head-tail binary encoding, function selectors and event topics.
package abi

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindAddress
	KindBool
	KindFixedBytes
	KindBytes
	KindString
	KindArray
	KindTuple
)

// Type is one node of a parsed ABI type tree. Types are immutable after
// construction; whether a type is dynamic and how many bytes its static head
// occupies are computed once, by structural recursion, when the type is built.
type Type struct {
	Kind       Kind
	Bits       int    // uintN/intN width
	Size       int    // bytesN width
	Len        int    // array length, -1 when dynamic
	Elem       *Type  // array element
	Components []Type // tuple components

	dynamic    bool
	staticSize int
	str        string
}

// NewType parses a Solidity type string such as "uint256", "address[]" or
// "(uint256,address)[3]".
func NewType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, fmt.Errorf("%w: empty type string", ErrInvalidType)
	}

	// Array brackets are detected from the end of the string so that the
	// outermost dimension is peeled first: "uint256[2][]" is a dynamic array
	// of fixed arrays.
	if strings.HasSuffix(s, "]") {
		idx := strings.LastIndex(s, "[")
		if idx < 1 {
			return Type{}, fmt.Errorf("%w: malformed array type %q", ErrInvalidType, s)
		}
		elem, err := NewType(s[:idx])
		if err != nil {
			return Type{}, err
		}
		lenStr := s[idx+1 : len(s)-1]
		if lenStr == "" {
			return DynamicArrayType(elem), nil
		}
		n, err := strconv.Atoi(lenStr)
		if err != nil || n < 1 {
			return Type{}, fmt.Errorf("%w: invalid array length %q in %q", ErrInvalidType, lenStr, s)
		}
		return FixedArrayType(elem, n), nil
	}

	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return Type{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidType, s)
		}
		parts, err := splitComponents(s[1 : len(s)-1])
		if err != nil {
			return Type{}, fmt.Errorf("%w: %v in %q", ErrInvalidType, err, s)
		}
		components := make([]Type, len(parts))
		for i, part := range parts {
			components[i], err = NewType(part)
			if err != nil {
				return Type{}, err
			}
		}
		return TupleType(components...), nil
	}

	return newElementaryType(s)
}

// MustNewType is NewType panicking on malformed input, for static type strings.
func MustNewType(s string) Type {
	t, err := NewType(s)
	if err != nil {
		panic(err)
	}
	return t
}

func newElementaryType(s string) (Type, error) {
	switch s {
	case "address":
		return Type{Kind: KindAddress, staticSize: 32, str: "address"}, nil
	case "bool":
		return Type{Kind: KindBool, staticSize: 32, str: "bool"}, nil
	case "bytes":
		return Type{Kind: KindBytes, dynamic: true, staticSize: 32, str: "bytes"}, nil
	case "string":
		return Type{Kind: KindString, dynamic: true, staticSize: 32, str: "string"}, nil
	case "uint":
		return UintType(256), nil
	case "int":
		return IntType(256), nil
	}
	if rest, ok := strings.CutPrefix(s, "uint"); ok {
		bits, err := parseBits(rest)
		if err != nil {
			return Type{}, fmt.Errorf("%w: %q: %v", ErrInvalidType, s, err)
		}
		return UintType(bits), nil
	}
	if rest, ok := strings.CutPrefix(s, "int"); ok {
		bits, err := parseBits(rest)
		if err != nil {
			return Type{}, fmt.Errorf("%w: %q: %v", ErrInvalidType, s, err)
		}
		return IntType(bits), nil
	}
	if rest, ok := strings.CutPrefix(s, "bytes"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > 32 {
			return Type{}, fmt.Errorf("%w: invalid fixed bytes width in %q", ErrInvalidType, s)
		}
		return FixedBytesType(n), nil
	}
	return Type{}, fmt.Errorf("%w: unknown type %q", ErrInvalidType, s)
}

func parseBits(s string) (int, error) {
	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer width %q", s)
	}
	if bits%8 != 0 || bits < 8 || bits > 256 {
		return 0, fmt.Errorf("integer width %d out of range", bits)
	}
	return bits, nil
}

// splitComponents splits a comma-separated tuple component list while
// tracking paren/bracket depth, so nested tuples and arrays stay intact.
func splitComponents(inner string) ([]string, error) {
	if strings.TrimSpace(inner) == "" {
		return nil, nil
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, inner[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets")
	}
	parts = append(parts, inner[start:])
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("empty tuple component")
		}
	}
	return parts, nil
}

// UintType returns the uintN type. bits must be a multiple of 8 in [8, 256].
func UintType(bits int) Type {
	return Type{Kind: KindUint, Bits: bits, staticSize: 32, str: "uint" + strconv.Itoa(bits)}
}

// IntType returns the intN type. bits must be a multiple of 8 in [8, 256].
func IntType(bits int) Type {
	return Type{Kind: KindInt, Bits: bits, staticSize: 32, str: "int" + strconv.Itoa(bits)}
}

// FixedBytesType returns the bytesN type, 1 <= n <= 32.
func FixedBytesType(n int) Type {
	return Type{Kind: KindFixedBytes, Size: n, staticSize: 32, str: "bytes" + strconv.Itoa(n)}
}

// AddressType returns the address type.
func AddressType() Type { return Type{Kind: KindAddress, staticSize: 32, str: "address"} }

// BoolType returns the bool type.
func BoolType() Type { return Type{Kind: KindBool, staticSize: 32, str: "bool"} }

// BytesType returns the dynamic bytes type.
func BytesType() Type {
	return Type{Kind: KindBytes, dynamic: true, staticSize: 32, str: "bytes"}
}

// StringType returns the string type.
func StringType() Type {
	return Type{Kind: KindString, dynamic: true, staticSize: 32, str: "string"}
}

// DynamicArrayType returns the elem[] type.
func DynamicArrayType(elem Type) Type {
	e := elem
	return Type{
		Kind:       KindArray,
		Len:        -1,
		Elem:       &e,
		dynamic:    true,
		staticSize: 32,
		str:        elem.str + "[]",
	}
}

// FixedArrayType returns the elem[n] type. A fixed array is dynamic iff its
// element type is dynamic.
func FixedArrayType(elem Type, n int) Type {
	e := elem
	t := Type{
		Kind: KindArray,
		Len:  n,
		Elem: &e,
		str:  elem.str + "[" + strconv.Itoa(n) + "]",
	}
	if elem.dynamic {
		t.dynamic = true
		t.staticSize = 32
	} else {
		t.staticSize = n * elem.staticSize
	}
	return t
}

// TupleType returns the tuple over the given components. A tuple is dynamic
// iff any component is dynamic; when static, its head size is the sum of the
// component head sizes.
func TupleType(components ...Type) Type {
	t := Type{Kind: KindTuple, Components: components}
	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.str
		if c.dynamic {
			t.dynamic = true
		}
		t.staticSize += c.staticSize
	}
	if t.dynamic {
		t.staticSize = 32
	}
	t.str = "(" + strings.Join(names, ",") + ")"
	return t
}

// IsDynamic reports whether values of this type live in the tail of the
// head-tail encoding.
func (t Type) IsDynamic() bool { return t.dynamic }

// StaticSize returns the number of bytes the type occupies in the head of the
// head-tail encoding: 32 for every dynamic type (the offset slot), otherwise
// the full inline size.
func (t Type) StaticSize() int { return t.staticSize }

// String returns the canonical type string used in signatures.
func (t Type) String() string { return t.str }
