package command

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/redikv/internal/resp"
	"github.com/akashmaji946/redikv/internal/store"
)

func cmdGet(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) != 1 {
		return resp.Reply{}, errWrongArgs("`get` command needs 1 argument, found " + strconv.Itoa(len(args)))
	}
	v, err := d.Store.Get(args[0])
	if err == store.ErrKeyError {
		return resp.NilBulk(), nil
	}
	if v.Typ != store.StrType {
		return resp.Reply{}, errWrongType("`get` command only operates with keys holding string values")
	}
	return resp.Bulk(v.Str), nil
}

func cmdSet(d *Dispatcher, args []string) (resp.Reply, error) {
	if len(args) < 2 {
		return resp.Reply{}, errWrongArgs("`set` command needs 2 arguments, found " + strconv.Itoa(len(args)))
	}
	key, value := args[0], args[1]

	var (
		hasDeadline bool
		deadline    float64
		keepTTL     bool
		existence   int // 0 none, 1 NX, 2 XX
		getFlag     bool
	)

	now := d.Clock.Now()
	for pos := 2; pos < len(args); pos++ {
		opt := strings.ToUpper(args[pos])
		switch opt {
		case "EX", "PX", "EXAT", "PXAT":
			if hasDeadline {
				return resp.Reply{}, errSyntax("only one of EX, PX, EXAT, PXAT options may be present")
			}
			if keepTTL {
				return resp.Reply{}, errSyntax("KEEPTTL option may not be present with EX, PX, EXAT, PXAT options")
			}
			if pos+1 >= len(args) {
				return resp.Reply{}, errSyntax(opt + " option takes 1 int argument, none found")
			}
			n, parseErr := strconv.ParseInt(args[pos+1], 10, 64)
			if parseErr != nil {
				return resp.Reply{}, errSyntax(opt + " option takes 1 int argument, `" + args[pos+1] + "` found instead")
			}
			switch opt {
			case "EX":
				deadline = now + float64(n)
			case "PX":
				deadline = now + float64(n)/1000
			case "EXAT":
				deadline = float64(n)
			case "PXAT":
				deadline = float64(n) / 1000
			}
			hasDeadline = true
			pos++

		case "NX", "XX":
			if existence != 0 {
				return resp.Reply{}, errSyntax("only one of XX, NX options may be present")
			}
			if opt == "NX" {
				existence = 1
			} else {
				existence = 2
			}

		case "KEEPTTL":
			if hasDeadline {
				return resp.Reply{}, errSyntax("KEEPTTL option may not be present with EX, PX, EXAT, PXAT options")
			}
			keepTTL = true

		case "GET":
			getFlag = true

		default:
			return resp.Reply{}, errSyntax(strings.ToLower(opt) + " option not found")
		}
	}

	doSet := true
	var prevVal store.Value
	prevFound := false
	suppressed := false
	if existence != 0 || getFlag {
		v, err := d.Store.Get(key)
		if err == store.ErrKeyError {
			if existence == 2 {
				doSet = false
				suppressed = true
			}
		} else {
			prevVal = v
			prevFound = true
			if existence == 1 {
				doSet = false
				suppressed = true
			}
		}
	}

	if doSet {
		opts := store.SetOpts{}
		if keepTTL {
			opts.KeepDeadline = true
		} else if hasDeadline {
			opts.HasDeadline = true
			opts.Deadline = deadline
		}
		d.Store.Set(key, store.NewStr(value), opts)
	}

	if getFlag {
		if !prevFound {
			return resp.NilBulk(), nil
		}
		if prevVal.Typ != store.StrType {
			return resp.Reply{}, errWrongType("`set` command's GET option only operates with keys holding string values")
		}
		return resp.Bulk(prevVal.Str), nil
	}
	if suppressed {
		return resp.NilBulk(), nil
	}
	return resp.OK(), nil
}
