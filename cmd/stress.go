package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"skabillium/dlist/cmd/dll"
)

const (
	drainFront = "front"
	drainBack  = "back"
	drainClear = "clear"
)

var ErrUnknownDrain = errors.New("ERR unknown drain method")

type stressResult struct {
	Built    int
	Released int
	FinalLen int
}

// runStress builds a list of size ints and releases it with the given
// drain method.
func runStress(ctx *DemoContext, size int, drain string) (stressResult, error) {
	if size < 0 {
		return stressResult{}, errors.Errorf("size must not be negative, got %d", size)
	}
	if drain != drainFront && drain != drainBack && drain != drainClear {
		return stressResult{}, errors.Wrapf(ErrUnknownDrain, "%#v", drain)
	}

	list := dll.NewList[int]()
	start := time.Now()
	for i := 0; i < size; i++ {
		list.PushBack(i)
	}
	ctx.log.Info().
		Int("size", list.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("[stress] list built")

	res := stressResult{Built: list.Len()}
	start = time.Now()
	switch drain {
	case drainFront:
		for _, ok := list.PopFront(); ok; _, ok = list.PopFront() {
			res.Released++
		}
	case drainBack:
		for _, ok := list.PopBack(); ok; _, ok = list.PopBack() {
			res.Released++
		}
	case drainClear:
		res.Released = list.Len()
		list.Clear()
	}
	res.FinalLen = list.Len()

	ctx.log.Info().
		Str("drain", drain).
		Int("released", res.Released).
		Dur("elapsed", time.Since(start)).
		Msg("[stress] list released")

	ctx.Writeln(fmt.Sprintf("built %d, released %d, final length %d", res.Built, res.Released, res.FinalLen))
	return res, nil
}
