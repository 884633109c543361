package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool"
	"github.com/holiman/uint256"
)

// fixtureTick is one initialized tick in a sparse tick array file.
// Amounts are decimal strings since they do not fit in a JSON number.
type fixtureTick struct {
	Offset         int    `json:"offset"`
	LiquidityNet   string `json:"liquidityNet"`
	LiquidityGross string `json:"liquidityGross,omitempty"`
}

type fixtureTickArray struct {
	StartTickIndex int32         `json:"startTickIndex"`
	Ticks          []fixtureTick `json:"ticks"`
}

// loadTickArrays reads a sparse tick array file. Ticks not listed are uninitialized.
func loadTickArrays(path string) ([]whirlpool.TickArray, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tick arrays file %s: %w", path, err)
	}
	return decodeTickArrays(data)
}

func decodeTickArrays(data []byte) ([]whirlpool.TickArray, error) {
	var raw []fixtureTickArray
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tick arrays: %w", err)
	}

	arrays := make([]whirlpool.TickArray, 0, len(raw))
	for _, r := range raw {
		ta := whirlpool.NewEmptyTickArray(r.StartTickIndex)
		for _, ft := range r.Ticks {
			if ft.Offset < 0 || ft.Offset >= whirlpool.TickArraySize {
				return nil, fmt.Errorf("tick array %d: offset %d out of range", r.StartTickIndex, ft.Offset)
			}

			liquidityNet, ok := new(big.Int).SetString(ft.LiquidityNet, 10)
			if !ok {
				return nil, fmt.Errorf("tick array %d offset %d: invalid liquidityNet %q", r.StartTickIndex, ft.Offset, ft.LiquidityNet)
			}

			tick := whirlpool.Tick{Initialized: true, LiquidityNet: liquidityNet}
			if ft.LiquidityGross != "" {
				gross, err := uint256.FromDecimal(ft.LiquidityGross)
				if err != nil {
					return nil, fmt.Errorf("tick array %d offset %d: invalid liquidityGross: %w", r.StartTickIndex, ft.Offset, err)
				}
				tick.LiquidityGross = gross
			}
			ta.Ticks[ft.Offset] = tick
		}
		arrays = append(arrays, ta)
	}
	return arrays, nil
}
