package command

import (
	"strconv"

	"github.com/akashmaji946/redikv/internal/glob"
	"github.com/akashmaji946/redikv/internal/resp"
	"github.com/akashmaji946/redikv/internal/store"
)

func cmdDel(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) < 1 {
		return resp.Reply{}, errWrongArgs("`del` command needs at least 1 argument")
	}
	return resp.Int(int64(d.Store.Delete(args))), nil
}

func cmdKeys(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 1 {
		return resp.Reply{}, errWrongArgs("`keys` command needs 1 argument, found " + strconv.Itoa(len(args)))
	}
	pattern := args[0]
	var patternErr error
	matched := d.Store.Keys(func(k string) bool {
		ok, err := glob.Match(k, pattern)
		if err != nil {
			patternErr = err
			return false
		}
		return ok
	})
	if patternErr != nil {
		return resp.Reply{}, errSyntax("error in pattern")
	}
	if matched == nil {
		matched = []string{}
	}
	return resp.Array(matched), nil
}

func cmdExpire(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 2 {
		return resp.Reply{}, errWrongArgs("`expire` command needs 2 arguments, found " + strconv.Itoa(len(args)))
	}
	seconds, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return resp.Reply{}, errSyntax("seconds must be an integer")
	}
	deadline := d.Clock.Now() + float64(seconds)
	if setErr := d.Store.SetDeadline(args[0], deadline, true); setErr == store.ErrKeyError {
		return resp.Int(0), nil
	}
	return resp.Int(1), nil
}

func cmdPersist(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 1 {
		return resp.Reply{}, errWrongArgs("`persist` command needs 1 argument, found " + strconv.Itoa(len(args)))
	}
	_, _, hasDeadline, err := d.Store.GetValAndDeadline(args[0])
	if err == store.ErrKeyError {
		return resp.Int(0), nil
	}
	if !hasDeadline {
		return resp.Int(0), nil
	}
	_ = d.Store.SetDeadline(args[0], 0, false)
	return resp.Int(1), nil
}
