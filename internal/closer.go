package internal

import (
	"reflect"
	"sync"

	"github.com/srlehn/dghost/internal/errors"
)

// Closer runs registered close functions in reverse order of registration.
type Closer interface {
	Close() error
	OnClose(onClose func() error)
	AddClosers(closers ...interface{ Close() error })
}

var _ Closer = (*lifoCloser)(nil)

type lifoCloser struct {
	mu           sync.Mutex
	onCloseFuncs []func() error
	initObjs     map[initObjKey]struct{}
}

type initObjKey struct {
	p uintptr
	t string
}

func NewCloser() Closer { return &lifoCloser{} }

// Close is idempotent. Functions registered after Close run on the next Close.
func (c *lifoCloser) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	fns := c.onCloseFuncs
	c.onCloseFuncs = nil
	c.initObjs = nil
	c.mu.Unlock()

	var errs []error
	for i := len(fns) - 1; i > -1; i-- {
		if fns[i] == nil {
			continue
		}
		if err := fns[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *lifoCloser) OnClose(onClose func() error) {
	if c == nil || onClose == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCloseFuncs = append(c.onCloseFuncs, onClose)
}

func (c *lifoCloser) AddClosers(closers ...interface{ Close() error }) {
	if c == nil || len(closers) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initObjs == nil {
		c.initObjs = make(map[initObjKey]struct{})
	}
	for _, cl := range closers {
		if cl == nil {
			continue
		}
		objType := reflect.TypeOf(cl)
		var ptr any = cl
		switch objType.Kind() {
		// don't use slice, map, func as map keys
		case reflect.Slice, reflect.Map, reflect.Func:
			ptr = &cl
		case reflect.Struct:
			// value types can't be deduplicated by address
			c.onCloseFuncs = append(c.onCloseFuncs, wrapClose(cl))
			continue
		}
		key := initObjKey{p: reflect.ValueOf(ptr).Pointer(), t: objType.String()}
		if _, alreadyAdded := c.initObjs[key]; alreadyAdded {
			continue
		}
		c.onCloseFuncs = append(c.onCloseFuncs, wrapClose(cl))
		c.initObjs[key] = struct{}{}
	}
}

func wrapClose(cl interface{ Close() error }) func() error {
	return func() error {
		if err := cl.Close(); err != nil {
			return errors.New(err)
		}
		return nil
	}
}
