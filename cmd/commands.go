package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"skabillium/dlist/cmd/dll"
)

const nilReply = "<nil>"

type DemoContext struct {
	out io.Writer
	log zerolog.Logger
}

func NewDemoContext(out io.Writer, log zerolog.Logger) *DemoContext {
	return &DemoContext{out: out, log: log}
}

func (c *DemoContext) Writeln(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *DemoContext) WriteValue(value string, ok bool) {
	if !ok {
		c.Writeln(nilReply)
		return
	}
	c.Writeln(value)
}

func execute(ctx *DemoContext, list *dll.List[string], cmd *Command) {
	switch cmd.Kind {
	case CmdPushFront:
		for _, v := range cmd.Values {
			list.PushFront(v)
		}
		ctx.Writeln(strconv.Itoa(list.Len()))
	case CmdPushBack:
		for _, v := range cmd.Values {
			list.PushBack(v)
		}
		ctx.Writeln(strconv.Itoa(list.Len()))
	case CmdPopFront:
		ctx.WriteValue(list.PopFront())
	case CmdPopBack:
		ctx.WriteValue(list.PopBack())
	case CmdClear:
		list.Clear()
		ctx.Writeln("OK")
	case CmdFront:
		ctx.WriteValue(list.Front())
	case CmdBack:
		ctx.WriteValue(list.Back())
	case CmdLen:
		ctx.Writeln(strconv.Itoa(list.Len()))
	case CmdEmpty:
		ctx.Writeln(strconv.FormatBool(list.IsEmpty()))
	case CmdPrint:
		ctx.Writeln(list.String())
	}

	ctx.log.Debug().
		Str("command", cmd.Name()).
		Int("len", list.Len()).
		Msg("[exec] applied")
}

// runScript executes cmds in order against a fresh list and tears the list
// down afterwards.
func runScript(ctx *DemoContext, cmds []*Command) {
	list := dll.NewList[string]()
	for _, cmd := range cmds {
		execute(ctx, list, cmd)
	}

	ctx.log.Info().
		Int("commands", len(cmds)).
		Int("len", list.Len()).
		Msg("[exec] script finished")
	list.Clear()
}

// runDemo plays the fixed push/pop sequence the binary runs by default.
func runDemo(ctx *DemoContext) {
	list := dll.NewList[string]()

	list.PushBack("World")
	list.PushFront("Hello")
	list.PushBack("!")

	ctx.Writeln(fmt.Sprintf("Current list length: %d", list.Len()))

	ctx.Writeln("Popped from front: " + display(list.PopFront()))
	ctx.Writeln("Popped from back: " + display(list.PopBack()))
	ctx.Writeln("Popped from front: " + display(list.PopFront()))
	ctx.Writeln("Popped from front: " + display(list.PopFront()))

	ctx.Writeln(fmt.Sprintf("Final list length: %d", list.Len()))
}

func display(value string, ok bool) string {
	if !ok {
		return nilReply
	}
	return value
}
