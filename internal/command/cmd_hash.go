package command

import (
	"strconv"

	"github.com/akashmaji946/redikv/internal/resp"
	"github.com/akashmaji946/redikv/internal/store"
)

func cmdHSet(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) < 3 {
		return resp.Reply{}, errWrongArgs("`hset` command needs at least 3 arguments, found " + strconv.Itoa(len(args)))
	}
	if len(args)%2 != 1 {
		return resp.Reply{}, errWrongArgs("`hset` command needs an odd number of arguments (key + field-value pairs), found " + strconv.Itoa(len(args)))
	}
	key := args[0]
	newFields := make(map[string]string, (len(args)-1)/2)
	for i := 1; i+1 < len(args); i += 2 {
		newFields[args[i]] = args[i+1]
	}

	v, err := d.Store.Get(key)
	if err == store.ErrKeyError {
		d.Store.Set(key, store.NewHash(newFields), store.SetOpts{})
		return resp.Int(int64(len(newFields))), nil
	}
	if v.Typ != store.HashType {
		return resp.Reply{}, errWrongType("`hset` command only operates with keys holding hash values")
	}

	merged := make(map[string]string, len(v.Hash)+len(newFields))
	for k, val := range v.Hash {
		merged[k] = val
	}
	count := 0
	for k := range newFields {
		if _, exists := merged[k]; !exists {
			count++
		}
	}
	for k, val := range newFields {
		merged[k] = val
	}
	d.Store.Set(key, store.NewHash(merged), store.SetOpts{KeepDeadline: true})
	return resp.Int(int64(count)), nil
}

func cmdHGet(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 2 {
		return resp.Reply{}, errWrongArgs("`hget` command needs 2 arguments, found " + strconv.Itoa(len(args)))
	}
	v, err := d.Store.Get(args[0])
	if err == store.ErrKeyError {
		return resp.NilBulk(), nil
	}
	if v.Typ != store.HashType {
		return resp.Reply{}, errWrongType("`hget` command only operates with keys holding hash values")
	}
	val, ok := v.Hash[args[1]]
	if !ok {
		return resp.NilBulk(), nil
	}
	return resp.Bulk(val), nil
}
