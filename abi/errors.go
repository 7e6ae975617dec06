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

import "errors"

var (
	// ErrInvalidType is wrapped by failures to parse a type string or ABI JSON.
	ErrInvalidType = errors.New("invalid abi type")
	// ErrEncode is wrapped by value/type shape mismatches during encoding.
	ErrEncode = errors.New("abi encode error")
	// ErrDecode is wrapped by malformed or truncated input during decoding.
	ErrDecode = errors.New("abi decode error")
)
