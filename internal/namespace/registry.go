// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package namespace

import (
	"math"

	"github.com/mia-platform/pype/internal/namespace/functions"
)

// registry holds the constructor of every importable namespace by name.
var registry = map[string]func() *Namespace{
	"builtins": builtins,
	"strings": func() *Namespace {
		return New("strings", map[string]any{
			"upper":       functions.Upper,
			"lower":       functions.Lower,
			"title":       functions.Title,
			"strip":       functions.Strip,
			"lstrip":      functions.LStrip,
			"rstrip":      functions.RStrip,
			"trim_prefix": functions.TrimPrefix,
			"trim_suffix": functions.TrimSuffix,
			"replace":     functions.Replace,
			"split":       functions.Split,
			"join":        functions.Join,
			"contains":    functions.Contains,
			"startswith":  functions.StartsWith,
			"endswith":    functions.EndsWith,
			"count":       functions.Count,
			"index":       functions.Index,
			"repeat":      functions.Repeat,
			"truncate":    functions.Truncate,
			"quote":       functions.Quote,
			"fields":      functions.Fields,
		})
	},
	"lists": func() *Namespace {
		return New("lists", map[string]any{
			"list":    functions.List,
			"append":  functions.Append,
			"prepend": functions.Prepend,
			"first":   functions.First,
			"last":    functions.Last,
			"at":      functions.At,
			"reverse": functions.Reverse,
			"sort":    functions.Sort,
			"uniq":    functions.Uniq,
		})
	},
	"objects": func() *Namespace {
		return New("objects", map[string]any{
			"object": functions.Object,
			"pick":   functions.Pick,
			"get":    functions.Get,
			"set":    functions.Set,
			"keys":   functions.Keys,
			"values": functions.Values,
		})
	},
	"math": func() *Namespace {
		return New("math", map[string]any{
			"abs":   functions.Abs,
			"ceil":  functions.Ceil,
			"floor": functions.Floor,
			"round": functions.Round,
			"sqrt":  functions.Sqrt,
			"pow":   functions.Pow,
			"max":   functions.Max,
			"min":   functions.Min,
			"sum":   functions.Sum,
			"pi":    math.Pi,
			"e":     math.E,
		})
	},
	"json": func() *Namespace {
		return New("json", map[string]any{
			"dumps": functions.ToJSON,
			"loads": functions.FromJSON,
		})
	},
	"yaml": func() *Namespace {
		return New("yaml", map[string]any{
			"dumps": functions.ToYAML,
			"loads": functions.FromYAML,
		})
	},
	"base64": func() *Namespace {
		return New("base64", map[string]any{
			"encode": functions.EncodeBase64,
			"decode": functions.DecodeBase64,
		})
	},
	"hashlib": func() *Namespace {
		return New("hashlib", map[string]any{
			"md5":    functions.Md5Sum,
			"sha256": functions.Sha256Sum,
			"sha512": functions.Sha512Sum,
		})
	},
	"uuid": func() *Namespace {
		return New("uuid", map[string]any{
			"v4":      functions.UUIDV4,
			"v6":      functions.UUIDV6,
			"v7":      functions.UUIDV7,
			"parse":   functions.UUIDParse,
			"version": functions.UUIDVersion,
		})
	},
	"re": func() *Namespace {
		return New("re", map[string]any{
			"match":   functions.Match,
			"find":    functions.Find,
			"findall": functions.FindAll,
			"sub":     functions.Sub,
			"split":   functions.SplitPattern,
		})
	},
	"time": func() *Namespace {
		return New("time", map[string]any{
			"now":       functions.Now,
			"unix":      functions.Unix,
			"format":    functions.FormatTime,
			"from_unix": functions.FromUnix,
		})
	},
	"path": func() *Namespace {
		return New("path", map[string]any{
			"base":  functions.Base,
			"dir":   functions.Dir,
			"ext":   functions.Ext,
			"join":  functions.JoinPath,
			"clean": functions.Clean,
		})
	},
}

// builtins returns the members visible to every expression without an import.
func builtins() *Namespace {
	return New("builtins", map[string]any{
		"len":      functions.Len,
		"str":      functions.Str,
		"int":      functions.Int,
		"float":    functions.Float,
		"bool":     functions.Bool,
		"repr":     functions.Repr,
		"type":     functions.Type,
		"upper":    functions.Upper,
		"lower":    functions.Lower,
		"strip":    functions.Strip,
		"split":    functions.Split,
		"join":     functions.Join,
		"abs":      functions.Abs,
		"min":      functions.Min,
		"max":      functions.Max,
		"sum":      functions.Sum,
		"sorted":   functions.Sort,
		"reversed": functions.Reverse,
		"range":    functions.Range,
		"any":      functions.Any,
		"all":      functions.All,
	})
}

// descriptions holds a one line summary of every importable namespace.
var descriptions = map[string]string{
	"builtins": "functions available without any import",
	"strings":  "string manipulation",
	"lists":    "list construction and manipulation",
	"objects":  "object construction and manipulation",
	"math":     "numeric functions and constants",
	"json":     "JSON encoding and decoding",
	"yaml":     "YAML encoding and decoding",
	"base64":   "standard base64 encoding and decoding",
	"hashlib":  "hex encoded message digests",
	"uuid":     "UUID generation and parsing",
	"re":       "regular expressions",
	"time":     "current time and time formatting",
	"path":     "file path manipulation",
}

// Description returns the one line summary of the namespace called name.
func Description(name string) string {
	return descriptions[name]
}
