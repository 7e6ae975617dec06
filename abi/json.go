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

package abi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ImL1s/web3go/common"
)

// Argument is a named input or output of a method, event or error.
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // events only
}

type Arguments []Argument

// Pack head-tail-encodes values against the argument types.
func (args Arguments) Pack(values ...interface{}) ([]byte, error) {
	return Encode(args.types(), values)
}

// Unpack decodes a parameter block against the argument types. For call
// results the caller must have stripped any leading selector already.
func (args Arguments) Unpack(data []byte) ([]interface{}, error) {
	return Decode(args.types(), data)
}

func (args Arguments) types() []Type {
	ts := make([]Type, len(args))
	for i, a := range args {
		ts[i] = a.Type
	}
	return ts
}

// typeList renders the canonical comma-separated type list used in
// signatures. Names and indexed flags never participate.
func (args Arguments) typeList() string {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.Type.String()
	}
	return strings.Join(names, ",")
}

// NonIndexed returns the arguments that live in the data section of a log.
func (args Arguments) NonIndexed() Arguments {
	var out Arguments
	for _, a := range args {
		if !a.Indexed {
			out = append(out, a)
		}
	}
	return out
}

// Method is a callable function of a contract.
type Method struct {
	Name            string
	Inputs          Arguments
	Outputs         Arguments
	StateMutability string
}

// Sig returns the canonical signature, e.g. "transfer(address,uint256)".
func (m Method) Sig() string {
	return m.Name + "(" + m.Inputs.typeList() + ")"
}

// ID returns the 4-byte selector of the method.
func (m Method) ID() [SelectorLength]byte {
	return Selector(m.Sig())
}

// IsReadOnly reports whether calling the method cannot modify state.
func (m Method) IsReadOnly() bool {
	return m.StateMutability == "view" || m.StateMutability == "pure"
}

// IsPayable reports whether the method may carry value.
func (m Method) IsPayable() bool {
	return m.StateMutability == "payable"
}

// Event is a log-emitting declaration of a contract.
type Event struct {
	Name      string
	Inputs    Arguments
	Anonymous bool
}

func (e Event) Sig() string {
	return e.Name + "(" + e.Inputs.typeList() + ")"
}

// ID returns topic0 of the event.
func (e Event) ID() common.Hash {
	return EventTopic(e.Sig())
}

// Error is a custom error declaration of a contract.
type Error struct {
	Name   string
	Inputs Arguments
}

func (e Error) Sig() string {
	return e.Name + "(" + e.Inputs.typeList() + ")"
}

func (e Error) ID() [SelectorLength]byte {
	return Selector(e.Sig())
}

// ABI is the parsed interface of a contract.
type ABI struct {
	Constructor *Method
	Methods     map[string]Method
	Events      map[string]Event
	Errors      map[string]Error
	HasFallback bool
	HasReceive  bool
}

// ParseJSON parses a JSON ABI definition (the solc "abi" output array).
func ParseJSON(data []byte) (ABI, error) {
	var a ABI
	if err := a.UnmarshalJSON(data); err != nil {
		return ABI{}, err
	}
	return a, nil
}

type fieldMarshaling struct {
	Type            string             `json:"type"`
	Name            string             `json:"name"`
	Inputs          []argMarshaling    `json:"inputs"`
	Outputs         []argMarshaling    `json:"outputs"`
	StateMutability string             `json:"stateMutability"`
	Anonymous       bool               `json:"anonymous"`
	Constant        bool               `json:"constant"` // pre-0.6 compilers
	Payable         bool               `json:"payable"`  // pre-0.6 compilers
}

type argMarshaling struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Components []argMarshaling `json:"components"`
	Indexed    bool            `json:"indexed"`
}

func (a *ABI) UnmarshalJSON(data []byte) error {
	var fields []fieldMarshaling
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidType, err)
	}
	a.Methods = make(map[string]Method)
	a.Events = make(map[string]Event)
	a.Errors = make(map[string]Error)
	for i, field := range fields {
		switch field.Type {
		case "function", "":
			inputs, err := parseArguments(field.Inputs)
			if err != nil {
				return fmt.Errorf("entry %d (function %q): inputs: %w", i, field.Name, err)
			}
			outputs, err := parseArguments(field.Outputs)
			if err != nil {
				return fmt.Errorf("entry %d (function %q): outputs: %w", i, field.Name, err)
			}
			m := Method{
				Name:            field.Name,
				Inputs:          inputs,
				Outputs:         outputs,
				StateMutability: normalizeStateMutability(field),
			}
			a.Methods[a.overloadedName(field.Name)] = m
		case "constructor":
			inputs, err := parseArguments(field.Inputs)
			if err != nil {
				return fmt.Errorf("entry %d (constructor): inputs: %w", i, err)
			}
			a.Constructor = &Method{Inputs: inputs, StateMutability: normalizeStateMutability(field)}
		case "event":
			inputs, err := parseArguments(field.Inputs)
			if err != nil {
				return fmt.Errorf("entry %d (event %q): inputs: %w", i, field.Name, err)
			}
			a.Events[field.Name] = Event{Name: field.Name, Inputs: inputs, Anonymous: field.Anonymous}
		case "error":
			inputs, err := parseArguments(field.Inputs)
			if err != nil {
				return fmt.Errorf("entry %d (error %q): inputs: %w", i, field.Name, err)
			}
			a.Errors[field.Name] = Error{Name: field.Name, Inputs: inputs}
		case "fallback":
			a.HasFallback = true
		case "receive":
			a.HasReceive = true
		default:
			return fmt.Errorf("%w: entry %d: unknown field type %q", ErrInvalidType, i, field.Type)
		}
	}
	return nil
}

// overloadedName disambiguates overloaded methods the way the ecosystem
// tooling does: the first keeps its name, later ones get a numeric suffix.
func (a *ABI) overloadedName(name string) string {
	if _, ok := a.Methods[name]; !ok {
		return name
	}
	for i := 0; ; i++ {
		candidate := name + strconv.Itoa(i)
		if _, ok := a.Methods[candidate]; !ok {
			return candidate
		}
	}
}

func normalizeStateMutability(f fieldMarshaling) string {
	if f.StateMutability != "" {
		return f.StateMutability
	}
	switch {
	case f.Constant:
		return "view"
	case f.Payable:
		return "payable"
	default:
		return "nonpayable"
	}
}

func parseArguments(raw []argMarshaling) (Arguments, error) {
	args := make(Arguments, len(raw))
	for i, r := range raw {
		t, err := typeFromJSON(r.Type, r.Components)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i, r.Name, err)
		}
		args[i] = Argument{Name: r.Name, Type: t, Indexed: r.Indexed}
	}
	return args, nil
}

// typeFromJSON resolves a JSON type string, expanding "tuple" (optionally
// with array suffixes, e.g. "tuple[2][]") against its components.
func typeFromJSON(typeStr string, components []argMarshaling) (Type, error) {
	if !strings.HasPrefix(typeStr, "tuple") {
		return NewType(typeStr)
	}
	comps := make([]Type, len(components))
	for i, c := range components {
		t, err := typeFromJSON(c.Type, c.Components)
		if err != nil {
			return Type{}, fmt.Errorf("component %d (%q): %w", i, c.Name, err)
		}
		comps[i] = t
	}
	t := TupleType(comps...)

	// apply array dimensions appearing after the "tuple" keyword, innermost first
	suffix := typeStr[len("tuple"):]
	for suffix != "" {
		if suffix[0] != '[' {
			return Type{}, fmt.Errorf("%w: malformed tuple type %q", ErrInvalidType, typeStr)
		}
		end := strings.IndexByte(suffix, ']')
		if end < 0 {
			return Type{}, fmt.Errorf("%w: malformed tuple type %q", ErrInvalidType, typeStr)
		}
		inner := suffix[1:end]
		if inner == "" {
			t = DynamicArrayType(t)
		} else {
			n, err := strconv.Atoi(inner)
			if err != nil || n < 1 {
				return Type{}, fmt.Errorf("%w: invalid array length in %q", ErrInvalidType, typeStr)
			}
			t = FixedArrayType(t, n)
		}
		suffix = suffix[end+1:]
	}
	return t, nil
}

// Pack encodes a call to the named method: selector followed by the head-tail
// encoded arguments.
func (a ABI) Pack(name string, values ...interface{}) ([]byte, error) {
	m, ok := a.Methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: method %q not found", ErrEncode, name)
	}
	enc, err := m.Inputs.Pack(values...)
	if err != nil {
		return nil, err
	}
	id := m.ID()
	return append(id[:], enc...), nil
}

// Unpack decodes the return data of the named method.
func (a ABI) Unpack(name string, data []byte) ([]interface{}, error) {
	m, ok := a.Methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: method %q not found", ErrDecode, name)
	}
	return m.Outputs.Unpack(data)
}

// UnpackLogData decodes the data section of a log against the named event's
// non-indexed inputs.
func (a ABI) UnpackLogData(name string, data []byte) ([]interface{}, error) {
	e, ok := a.Events[name]
	if !ok {
		return nil, fmt.Errorf("%w: event %q not found", ErrDecode, name)
	}
	return e.Inputs.NonIndexed().Unpack(data)
}

// UnpackError decodes revert data against the named custom error. The 4-byte
// selector must already be stripped.
func (a ABI) UnpackError(name string, data []byte) ([]interface{}, error) {
	e, ok := a.Errors[name]
	if !ok {
		return nil, fmt.Errorf("%w: error %q not found", ErrDecode, name)
	}
	return e.Inputs.Unpack(data)
}
