// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package extract pulls scalar values out of line-oriented key/value dumps,
// such as the YAML-ish text printed by consul-dump-yaml.
//
// The parsing contract is deliberately narrow: a value is found on a single
// line of the form
//
//	<key>:<spaces or tabs><value>
//
// where <key> is not preceded by a letter, digit or underscore, and <value> is
// a run of characters from the key's value class. Only the first such line
// counts. Anything else, including a key whose value sits on the next line, is
// treated as absent rather than an error.
package extract

import (
	"fmt"
	"regexp"
)

// Key describes one extractable key and the shape of its value.
type Key struct {
	Name string
	re   *regexp.Regexp
}

// NewKey compiles a Key. valueClass is a regexp fragment matching one value
// character run, e.g. `\S+`. When foldCase is set the key and value class
// match case-insensitively.
func NewKey(name, valueClass string, foldCase bool) Key {
	flags := "(?m)"
	if foldCase {
		flags = "(?mi)"
	}
	pattern := fmt.Sprintf(`%s(?:^|[^A-Za-z0-9_])%s:[ \t]*(%s)`, flags, regexp.QuoteMeta(name), valueClass)
	return Key{Name: name, re: regexp.MustCompile(pattern)}
}

var (
	// DBServer is the database server identifier in a customer's region db listing.
	DBServer = NewKey("dbserver", `[a-f0-9-]+`, true)
	// AdminPass is the administrative database password of a dbserver record.
	AdminPass = NewKey("admin_pass", `\S+`, false)
)

// Extract returns the value of the first line in dump matching k.
// ok is false when no line matches.
func Extract(dump string, k Key) (value string, ok bool) {
	if k.re == nil {
		return "", false
	}
	m := k.re.FindStringSubmatch(dump)
	if m == nil {
		return "", false
	}
	return m[1], true
}
