package abiargs

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// Parser converts command line strings into the Go values the ABI encoder
// expects for each constructor input
type Parser struct{}

// NewParser creates a new argument parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts raw against inputs. Values beyond the number of inputs are
// passed through as strings so the encoder reports the count mismatch.
func (p *Parser) Parse(inputs abi.Arguments, raw []string) ([]any, error) {
	return Parse(inputs, raw)
}

// Parse converts raw against inputs, see Parser.Parse.
func Parse(inputs abi.Arguments, raw []string) ([]any, error) {
	values := make([]any, len(raw))
	for i, s := range raw {
		if i >= len(inputs) {
			values[i] = s
			continue
		}

		v, err := Convert(inputs[i].Type, s)
		if err != nil {
			name := inputs[i].Name
			if name == "" {
				name = "#" + strconv.Itoa(i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, inputs[i].Type.String(), err)
		}
		values[i] = v
	}
	return values, nil
}

// Convert parses s as a value of type t.
//
// Integers are decimal or 0x-prefixed hex; bytes are 0x-prefixed hex; arrays
// and slices are JSON lists whose elements follow the same rules.
func Convert(t abi.Type, s string) (any, error) {
	v, err := convert(t, s)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func convert(t abi.Type, s string) (reflect.Value, error) {
	s = strings.TrimSpace(s)

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return reflect.Value{}, fmt.Errorf("invalid address %q", s)
		}
		return reflect.ValueOf(common.HexToAddress(s)), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid bool %q", s)
		}
		return reflect.ValueOf(b), nil

	case abi.StringTy:
		return reflect.ValueOf(s), nil

	case abi.BytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid bytes %q: %w", s, err)
		}
		return reflect.ValueOf(b), nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid bytes%d %q: %w", t.Size, s, err)
		}
		if len(b) > t.Size {
			return reflect.Value{}, fmt.Errorf("%d bytes do not fit in bytes%d", len(b), t.Size)
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr, nil

	case abi.IntTy, abi.UintTy:
		return convertInt(t, s)

	case abi.SliceTy, abi.ArrayTy:
		return convertList(t, s)

	default:
		return reflect.Value{}, fmt.Errorf("unsupported argument type %s", t.String())
	}
}

func convertInt(t abi.Type, s string) (reflect.Value, error) {
	if s == "" {
		return reflect.Value{}, fmt.Errorf("empty integer")
	}
	n, ok := math.ParseBig256(s)
	if !ok {
		return reflect.Value{}, fmt.Errorf("invalid integer %q", s)
	}
	if !fits(t, n) {
		return reflect.Value{}, fmt.Errorf("%s out of range for %s", s, t.String())
	}

	typ := t.GetType()
	switch typ.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := reflect.New(typ).Elem()
		v.SetInt(n.Int64())
		return v, nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := reflect.New(typ).Elem()
		v.SetUint(n.Uint64())
		return v, nil
	default:
		return reflect.ValueOf(n), nil
	}
}

// fits reports whether n is representable in t's bit size
func fits(t abi.Type, n *big.Int) bool {
	if t.T == abi.UintTy {
		return n.Sign() >= 0 && n.BitLen() <= t.Size
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if n.Sign() >= 0 {
		return n.Cmp(limit) < 0
	}
	return n.Cmp(new(big.Int).Neg(limit)) >= 0
}

func convertList(t abi.Type, s string) (reflect.Value, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return reflect.Value{}, fmt.Errorf("expected a JSON list for %s, got %q", t.String(), s)
	}
	if t.T == abi.ArrayTy && len(items) != t.Size {
		return reflect.Value{}, fmt.Errorf("expected %d elements for %s, got %d", t.Size, t.String(), len(items))
	}

	var out reflect.Value
	if t.T == abi.SliceTy {
		out = reflect.MakeSlice(t.GetType(), len(items), len(items))
	} else {
		out = reflect.New(t.GetType()).Elem()
	}

	for i, item := range items {
		elem, err := convert(*t.Elem, element(item))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(elem)
	}
	return out, nil
}

// element unquotes JSON strings and keeps numbers, bools and nested lists
// in their literal form
func element(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

var _ usecase.ArgumentParser = (*Parser)(nil)
