package main

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

func ErrUnknownCmd(cmd string) error {
	return errors.Errorf("ERR unknown command '%s'", cmd)
}

func ErrInvalidNArg(cmd string) error {
	return errors.Errorf("invalid number of arguments for command '%s'", cmd)
}

var ErrUnbalancedQuotes = errors.New("ERR unbalanced quotes")
var ErrEmptyCommand = errors.New("ERR empty command")

type CommandType = byte

const (
	// Insertion
	CmdPushFront CommandType = iota
	CmdPushBack
	// Removal
	CmdPopFront
	CmdPopBack
	CmdClear
	// Inspection
	CmdFront
	CmdBack
	CmdLen
	CmdEmpty
	CmdPrint
)

var commandNames = map[CommandType]string{
	CmdPushFront: "pushfront",
	CmdPushBack:  "pushback",
	CmdPopFront:  "popfront",
	CmdPopBack:   "popback",
	CmdClear:     "clear",
	CmdFront:     "front",
	CmdBack:      "back",
	CmdLen:       "len",
	CmdEmpty:     "empty",
	CmdPrint:     "print",
}

type Command struct {
	Kind   CommandType
	Values []string // pushfront, pushback
}

func (c *Command) Name() string {
	return commandNames[c.Kind]
}

// ParseCommand turns one statement into a Command. The Redis list command
// names are accepted as aliases.
func ParseCommand(split []string) (*Command, error) {
	argc := len(split)
	if argc == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := strings.ToLower(split[0])
	switch cmd {
	case "pushfront", "lpush":
		if argc < 2 {
			return nil, ErrInvalidNArg(cmd)
		}
		push := &Command{Kind: CmdPushFront, Values: []string{}}
		push.Values = append(push.Values, split[1:]...)
		return push, nil
	case "pushback", "rpush":
		if argc < 2 {
			return nil, ErrInvalidNArg(cmd)
		}
		push := &Command{Kind: CmdPushBack, Values: []string{}}
		push.Values = append(push.Values, split[1:]...)
		return push, nil
	case "popfront", "lpop":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdPopFront}, nil
	case "popback", "rpop":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdPopBack}, nil
	case "clear":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdClear}, nil
	case "front":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdFront}, nil
	case "back":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdBack}, nil
	case "len", "llen":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdLen}, nil
	case "empty":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdEmpty}, nil
	case "print":
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdPrint}, nil
	}

	return nil, ErrUnknownCmd(cmd)
}

// ParseScript parses every statement of script. Statements end at a
// newline or an unquoted ';'.
func ParseScript(script string) ([]*Command, error) {
	statements, err := sanitize(script)
	if err != nil {
		return nil, err
	}

	cmds := make([]*Command, 0, len(statements))
	for i, split := range statements {
		cmd, err := ParseCommand(split)
		if err != nil {
			return nil, errors.Wrapf(err, "statement %d", i+1)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func isWhitespace(b byte) bool {
	return unicode.IsSpace(rune(b))
}

func isTerminator(b byte) bool {
	return b == '\n' || b == ';'
}

// sanitize splits a script into statements of words. Quoted words may hold
// whitespace and ';'.
func sanitize(script string) ([][]string, error) {
	out := [][]string{}
	statement := []string{}
	flush := func() {
		if len(statement) > 0 {
			out = append(out, statement)
			statement = []string{}
		}
	}

	i := 0
	for i < len(script) {
		c := script[i]
		switch {
		case isTerminator(c):
			flush()
			i++
		case isWhitespace(c):
			i++
		case c == '"' || c == '\'':
			end := strings.IndexByte(script[i+1:], c)
			if end < 0 {
				return nil, ErrUnbalancedQuotes
			}
			statement = append(statement, script[i+1:i+1+end])
			i += end + 2
		default:
			start := i
			for i < len(script) && !isWhitespace(script[i]) && !isTerminator(script[i]) {
				i++
			}
			statement = append(statement, script[start:i])
		}
	}
	flush()

	return out, nil
}
