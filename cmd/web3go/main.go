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

// web3go is a small command line front end over the codec packages: ABI
// selectors and argument encoding, and raw transaction inspection.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ImL1s/web3go/abi"
	"github.com/ImL1s/web3go/common"
	"github.com/ImL1s/web3go/types"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	app := &cli.App{
		Name:  "web3go",
		Usage: "Ethereum ABI and transaction codec tools",
		Commands: []*cli.Command{
			selectorCommand(),
			topicCommand(),
			abiEncodeCommand(),
			abiDecodeCommand(),
			txDecodeCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func selectorCommand() *cli.Command {
	return &cli.Command{
		Name:      "selector",
		Usage:     "print the 4-byte function selector of a canonical signature",
		ArgsUsage: "<signature>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected one signature argument")
			}
			sel := abi.Selector(c.Args().First())
			fmt.Printf("0x%s\n", common.Bytes2Hex(sel[:]))
			return nil
		},
	}
}

func topicCommand() *cli.Command {
	return &cli.Command{
		Name:      "topic",
		Usage:     "print the 32-byte event topic of a canonical signature",
		ArgsUsage: "<signature>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected one signature argument")
			}
			topic := abi.EventTopic(c.Args().First())
			fmt.Printf("0x%s\n", common.Bytes2Hex(topic[:]))
			return nil
		},
	}
}

func abiEncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "abi-encode",
		Usage:     "ABI-encode scalar values for a comma separated type list",
		ArgsUsage: "<types> [value...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sig",
				Usage: "prefix the output with the selector of this signature",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("expected a type list")
			}
			typs, err := parseTypeList(c.Args().First())
			if err != nil {
				return err
			}
			args := c.Args().Slice()[1:]
			if len(args) != len(typs) {
				return fmt.Errorf("have %d types but %d values", len(typs), len(args))
			}
			values := make([]interface{}, len(args))
			for i, raw := range args {
				if values[i], err = parseValue(typs[i], raw); err != nil {
					return err
				}
			}
			enc, err := abi.Encode(typs, values)
			if err != nil {
				return err
			}
			if sig := c.String("sig"); sig != "" {
				sel := abi.Selector(sig)
				enc = append(sel[:], enc...)
			}
			fmt.Printf("0x%s\n", common.Bytes2Hex(enc))
			return nil
		},
	}
}

func abiDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "abi-decode",
		Usage:     "decode ABI data for a comma separated type list",
		ArgsUsage: "<types> <hexdata>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("expected a type list and hex data")
			}
			typs, err := parseTypeList(c.Args().First())
			if err != nil {
				return err
			}
			data, err := common.FromHex(c.Args().Get(1))
			if err != nil {
				return err
			}
			values, err := abi.Decode(typs, data)
			if err != nil {
				return err
			}
			for i, v := range values {
				fmt.Printf("%s: %s\n", typs[i].String(), formatValue(v))
			}
			return nil
		},
	}
}

func txDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "tx-decode",
		Usage:     "decode a raw signed transaction and recover its sender",
		ArgsUsage: "<hexdata>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected raw transaction hex")
			}
			raw, err := common.FromHex(c.Args().First())
			if err != nil {
				return err
			}
			txn, err := types.DecodeTransaction(raw)
			if err != nil {
				return err
			}
			printTx(txn)
			return nil
		},
	}
}

func printTx(txn types.Transaction) {
	fmt.Printf("type:     0x%02x\n", txn.Type())
	fmt.Printf("hash:     %s\n", txn.Hash().Hex())
	if chainID := txn.GetChainID(); chainID != nil {
		fmt.Printf("chainId:  %s\n", chainID.Dec())
	}
	fmt.Printf("nonce:    %d\n", txn.GetNonce())
	if to := txn.GetTo(); to != nil {
		fmt.Printf("to:       %s\n", to.Hex())
	} else {
		fmt.Printf("to:       (contract creation)\n")
	}
	fmt.Printf("value:    %s\n", txn.GetValue().Dec())
	fmt.Printf("gasLimit: %d\n", txn.GetGasLimit())
	fmt.Printf("tip:      %s\n", txn.GetTip().Dec())
	fmt.Printf("feeCap:   %s\n", txn.GetFeeCap().Dec())
	if len(txn.GetData()) > 0 {
		fmt.Printf("data:     0x%s\n", common.Bytes2Hex(txn.GetData()))
	}
	for _, h := range txn.GetBlobHashes() {
		fmt.Printf("blobHash: %s\n", h.Hex())
	}
	for _, a := range txn.GetAuthorizations() {
		fmt.Printf("auth:     %s nonce=%d\n", a.Address.Hex(), a.Nonce)
	}
	if from, err := types.Sender(txn); err == nil {
		fmt.Printf("from:     %s\n", from.Hex())
	}
}

// parseTypeList parses a comma separated list of scalar ABI types. Tuples
// are left to the library API.
func parseTypeList(s string) ([]abi.Type, error) {
	if strings.Contains(s, "(") {
		return nil, fmt.Errorf("tuple types are not supported on the command line")
	}
	var typs []abi.Type
	for _, part := range strings.Split(s, ",") {
		typ, err := abi.NewType(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		typs = append(typs, typ)
	}
	return typs, nil
}

func parseValue(typ abi.Type, raw string) (interface{}, error) {
	switch typ.Kind {
	case abi.KindUint, abi.KindInt:
		n, ok := new(big.Int).SetString(strings.TrimPrefix(raw, "0x"),
			numberBase(raw))
		if !ok {
			return nil, fmt.Errorf("bad integer %q", raw)
		}
		return n, nil
	case abi.KindBool:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("bad bool %q", raw)
	case abi.KindAddress:
		return common.HexToAddress(raw)
	case abi.KindBytes, abi.KindFixedBytes:
		return common.FromHex(raw)
	case abi.KindString:
		return raw, nil
	default:
		return nil, fmt.Errorf("type %s is not supported on the command line", typ.String())
	}
}

func numberBase(raw string) int {
	if strings.HasPrefix(raw, "0x") {
		return 16
	}
	return 10
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case *big.Int:
		return val.String()
	case common.Address:
		return val.Hex()
	case []byte:
		return "0x" + common.Bytes2Hex(val)
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
