package command

import (
	"strconv"

	"github.com/akashmaji946/redikv/internal/resp"
	"github.com/akashmaji946/redikv/internal/store"
)

// normalizeIndex maps a (possibly negative) index onto [0, length],
// per the resolved open question: negative indices mean len+i, clamped
// into range, with an inclusive stop applied uniformly by the caller
// (rather than the original's ad-hoc "stop == -1 means to the end"
// special case).
func normalizeIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i
}

func cmdLRange(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 3 {
		return resp.Reply{}, errWrongArgs("`lrange` command needs 3 arguments, found " + strconv.Itoa(len(args)))
	}
	v, err := d.Store.Get(args[0])
	if err == store.ErrKeyError {
		return resp.NilArray(), nil
	}
	if v.Typ != store.ListType {
		return resp.Reply{}, errWrongType("`lrange` command only operates with keys holding list values")
	}
	start, errStart := strconv.Atoi(args[1])
	stop, errStop := strconv.Atoi(args[2])
	if errStart != nil || errStop != nil {
		return resp.Reply{}, errSyntax("start and stop must be integers")
	}

	length := len(v.List)
	startIdx := normalizeIndex(start, length)
	stopIdx := normalizeIndex(stop, length)
	end := stopIdx + 1
	if end > length {
		end = length
	}
	if startIdx >= end {
		return resp.Array([]string{}), nil
	}
	return resp.Array(append([]string{}, v.List[startIdx:end]...)), nil
}

func cmdLPush(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) < 2 {
		return resp.Reply{}, errWrongArgs("`lpush` command needs at least 2 arguments, found " + strconv.Itoa(len(args)))
	}
	key := args[0]
	toPrepend := reverseStrings(args[1:])

	v, err := d.Store.Get(key)
	if err == store.ErrKeyError {
		d.Store.Set(key, store.NewList(toPrepend), store.SetOpts{})
		return resp.Int(int64(len(toPrepend))), nil
	}
	if v.Typ != store.ListType {
		return resp.Reply{}, errWrongType("`lpush` command only operates with keys holding list values")
	}
	newList := append(toPrepend, v.List...)
	d.Store.Set(key, store.NewList(newList), store.SetOpts{KeepDeadline: true})
	return resp.Int(int64(len(newList))), nil
}

func cmdRPush(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) < 2 {
		return resp.Reply{}, errWrongArgs("`rpush` command needs at least 2 arguments, found " + strconv.Itoa(len(args)))
	}
	key := args[0]
	toAppend := args[1:]

	v, err := d.Store.Get(key)
	if err == store.ErrKeyError {
		d.Store.Set(key, store.NewList(append([]string{}, toAppend...)), store.SetOpts{})
		return resp.Int(int64(len(toAppend))), nil
	}
	if v.Typ != store.ListType {
		return resp.Reply{}, errWrongType("`rpush` command only operates with keys holding list values")
	}
	newList := append(v.List, toAppend...)
	d.Store.Set(key, store.NewList(newList), store.SetOpts{KeepDeadline: true})
	return resp.Int(int64(len(newList))), nil
}

func cmdLSet(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 3 {
		return resp.Reply{}, errWrongArgs("`lset` command needs 3 arguments, found " + strconv.Itoa(len(args)))
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return resp.Reply{}, errSyntax("index must be integer")
	}
	key := args[0]
	v, getErr := d.Store.Get(key)
	if getErr == store.ErrKeyError {
		return resp.Reply{}, errKey("no such key")
	}
	if v.Typ != store.ListType {
		return resp.Reply{}, errWrongType("`lset` command only operates with keys holding list values")
	}
	i := index
	if i < 0 {
		i += len(v.List)
	}
	if i < 0 || i >= len(v.List) {
		return resp.Reply{}, errOutOfRange("index " + strconv.Itoa(index) + " is out of range, array of size " + strconv.Itoa(len(v.List)))
	}
	newList := append([]string{}, v.List...)
	newList[i] = args[2]
	d.Store.Set(key, store.NewList(newList), store.SetOpts{KeepDeadline: true})
	return resp.OK(), nil
}

func cmdLGet(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 2 {
		return resp.Reply{}, errWrongArgs("`lget` command needs 2 arguments, found " + strconv.Itoa(len(args)))
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return resp.Reply{}, errSyntax("index must be integer")
	}
	v, getErr := d.Store.Get(args[0])
	if getErr == store.ErrKeyError {
		return resp.Reply{}, errKey("no such key")
	}
	if v.Typ != store.ListType {
		return resp.Reply{}, errWrongType("`lget` command only operates with keys holding list values")
	}
	i := index
	if i < 0 {
		i += len(v.List)
	}
	if i < 0 || i >= len(v.List) {
		return resp.Reply{}, errOutOfRange("index " + strconv.Itoa(index) + " is out of range of array size " + strconv.Itoa(len(v.List)))
	}
	return resp.Bulk(v.List[i]), nil
}

func reverseStrings(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[len(ss)-1-i] = s
	}
	return out
}
