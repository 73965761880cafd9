//go:build cgo && !windows

// Package hunspell wraps the system libhunspell library. The affix-checking
// algorithm itself lives in the C library; this package only marshals words
// and suggestion lists across the boundary.
package hunspell

/*
#cgo LDFLAGS: -lhunspell
#cgo CFLAGS: -I/usr/include/hunspell
#include <stdlib.h>
#include <hunspell.h>
*/
import "C"

import (
	"fmt"
	"os"
	"sync"
	"unsafe"
)

// Checker is one loaded affix ruleset plus word list. Hunspell handles are
// not thread-safe, so every call is serialized on an internal mutex.
type Checker struct {
	mu     sync.Mutex
	handle *C.Hunhandle
}

// New loads the affix/word-list file pair at affpath and dicpath.
func New(affpath, dicpath string) (*Checker, error) {
	// Hunspell_create silently yields an empty dictionary for missing
	// files, so check for them up front.
	for _, p := range []string{affpath, dicpath} {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("hunspell: %w", err)
		}
	}
	cAff := C.CString(affpath)
	defer C.free(unsafe.Pointer(cAff))
	cDic := C.CString(dicpath)
	defer C.free(unsafe.Pointer(cDic))

	h := C.Hunspell_create(cAff, cDic)
	if h == nil {
		return nil, fmt.Errorf("hunspell: create %s / %s failed", affpath, dicpath)
	}
	return &Checker{handle: h}, nil
}

// Spell reports whether word is in the dictionary.
func (c *Checker) Spell(word string) bool {
	cWord := C.CString(word)
	defer C.free(unsafe.Pointer(cWord))

	c.mu.Lock()
	defer c.mu.Unlock()
	return C.Hunspell_spell(c.handle, cWord) != 0
}

// Suggest returns ranked corrections for word, best first, in the order the
// library produced them.
func (c *Checker) Suggest(word string) []string {
	cWord := C.CString(word)
	defer C.free(unsafe.Pointer(cWord))

	var list **C.char
	c.mu.Lock()
	n := int(C.Hunspell_suggest(c.handle, &list, cWord))
	c.mu.Unlock()
	if n <= 0 {
		return nil
	}
	defer C.Hunspell_free_list(c.handle, &list, C.int(n))

	entries := (*[1 << 20]*C.char)(unsafe.Pointer(list))[:n:n]
	out := make([]string, n)
	for i, e := range entries {
		out[i] = C.GoString(e)
	}
	return out
}

// Add inserts word into the runtime vocabulary. Adding a word that is
// already known is harmless.
func (c *Checker) Add(word string) {
	cWord := C.CString(word)
	defer C.free(unsafe.Pointer(cWord))

	c.mu.Lock()
	defer c.mu.Unlock()
	C.Hunspell_add(c.handle, cWord)
}

// Remove deletes word from the runtime vocabulary. Removing an absent word
// is harmless.
func (c *Checker) Remove(word string) {
	cWord := C.CString(word)
	defer C.free(unsafe.Pointer(cWord))

	c.mu.Lock()
	defer c.mu.Unlock()
	C.Hunspell_remove(c.handle, cWord)
}

// Close releases the underlying handle. The Checker must not be used after
// Close.
func (c *Checker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle != nil {
		C.Hunspell_destroy(c.handle)
		c.handle = nil
	}
}
