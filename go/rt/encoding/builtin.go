/*
Copyright 2025 The Emerald Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package encoding

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/emeraldlang/emerald/go/rt/encoding/charset"
)

type builtinDef struct {
	name            string
	cs              charset.Charset
	asciiCompatible bool
	dummy           bool
	aliases         []string
}

// builtins is the bootstrap table. Order matters: it fixes the index of
// every built-in encoding, so entries are only ever appended.
var builtins = []builtinDef{
	{name: "ASCII-8BIT", cs: charset.Binary{}, asciiCompatible: true,
		aliases: []string{"BINARY"}},
	{name: "UTF-8", cs: charset.UTF8{}, asciiCompatible: true,
		aliases: []string{"CP65001"}},
	{name: "US-ASCII", cs: charset.ASCII{}, asciiCompatible: true,
		aliases: []string{"ASCII", "ANSI_X3.4-1968", "646"}},

	{name: "ISO-8859-1", cs: charset.NewEightBit("ISO-8859-1", charmap.ISO8859_1), asciiCompatible: true,
		aliases: []string{"ISO8859-1"}},
	{name: "ISO-8859-2", cs: charset.NewEightBit("ISO-8859-2", charmap.ISO8859_2), asciiCompatible: true,
		aliases: []string{"ISO8859-2"}},
	{name: "ISO-8859-3", cs: charset.NewEightBit("ISO-8859-3", charmap.ISO8859_3), asciiCompatible: true,
		aliases: []string{"ISO8859-3"}},
	{name: "ISO-8859-4", cs: charset.NewEightBit("ISO-8859-4", charmap.ISO8859_4), asciiCompatible: true,
		aliases: []string{"ISO8859-4"}},
	{name: "ISO-8859-5", cs: charset.NewEightBit("ISO-8859-5", charmap.ISO8859_5), asciiCompatible: true,
		aliases: []string{"ISO8859-5"}},
	{name: "ISO-8859-6", cs: charset.NewEightBit("ISO-8859-6", charmap.ISO8859_6), asciiCompatible: true,
		aliases: []string{"ISO8859-6"}},
	{name: "ISO-8859-7", cs: charset.NewEightBit("ISO-8859-7", charmap.ISO8859_7), asciiCompatible: true,
		aliases: []string{"ISO8859-7"}},
	{name: "ISO-8859-8", cs: charset.NewEightBit("ISO-8859-8", charmap.ISO8859_8), asciiCompatible: true,
		aliases: []string{"ISO8859-8"}},
	{name: "ISO-8859-9", cs: charset.NewEightBit("ISO-8859-9", charmap.ISO8859_9), asciiCompatible: true,
		aliases: []string{"ISO8859-9"}},
	{name: "ISO-8859-10", cs: charset.NewEightBit("ISO-8859-10", charmap.ISO8859_10), asciiCompatible: true,
		aliases: []string{"ISO8859-10"}},
	{name: "ISO-8859-13", cs: charset.NewEightBit("ISO-8859-13", charmap.ISO8859_13), asciiCompatible: true,
		aliases: []string{"ISO8859-13"}},
	{name: "ISO-8859-14", cs: charset.NewEightBit("ISO-8859-14", charmap.ISO8859_14), asciiCompatible: true,
		aliases: []string{"ISO8859-14"}},
	{name: "ISO-8859-15", cs: charset.NewEightBit("ISO-8859-15", charmap.ISO8859_15), asciiCompatible: true,
		aliases: []string{"ISO8859-15"}},
	{name: "ISO-8859-16", cs: charset.NewEightBit("ISO-8859-16", charmap.ISO8859_16), asciiCompatible: true,
		aliases: []string{"ISO8859-16"}},

	{name: "KOI8-R", cs: charset.NewEightBit("KOI8-R", charmap.KOI8R), asciiCompatible: true,
		aliases: []string{"CP878"}},
	{name: "KOI8-U", cs: charset.NewEightBit("KOI8-U", charmap.KOI8U), asciiCompatible: true},

	{name: "Windows-1250", cs: charset.NewEightBit("Windows-1250", charmap.Windows1250), asciiCompatible: true,
		aliases: []string{"CP1250"}},
	{name: "Windows-1251", cs: charset.NewEightBit("Windows-1251", charmap.Windows1251), asciiCompatible: true,
		aliases: []string{"CP1251"}},
	{name: "Windows-1252", cs: charset.NewEightBit("Windows-1252", charmap.Windows1252), asciiCompatible: true,
		aliases: []string{"CP1252"}},
	{name: "Windows-1253", cs: charset.NewEightBit("Windows-1253", charmap.Windows1253), asciiCompatible: true,
		aliases: []string{"CP1253"}},
	{name: "Windows-1254", cs: charset.NewEightBit("Windows-1254", charmap.Windows1254), asciiCompatible: true,
		aliases: []string{"CP1254"}},
	{name: "Windows-1255", cs: charset.NewEightBit("Windows-1255", charmap.Windows1255), asciiCompatible: true,
		aliases: []string{"CP1255"}},
	{name: "Windows-1256", cs: charset.NewEightBit("Windows-1256", charmap.Windows1256), asciiCompatible: true,
		aliases: []string{"CP1256"}},
	{name: "Windows-1257", cs: charset.NewEightBit("Windows-1257", charmap.Windows1257), asciiCompatible: true,
		aliases: []string{"CP1257"}},
	{name: "Windows-1258", cs: charset.NewEightBit("Windows-1258", charmap.Windows1258), asciiCompatible: true,
		aliases: []string{"CP1258"}},
	{name: "Windows-874", cs: charset.NewEightBit("Windows-874", charmap.Windows874), asciiCompatible: true,
		aliases: []string{"CP874"}},

	{name: "Shift_JIS", cs: charset.ShiftJIS{}, asciiCompatible: true,
		aliases: []string{"SJIS"}},
	{name: "Windows-31J", cs: charset.ShiftJIS{}, asciiCompatible: true,
		aliases: []string{"CP932"}},
	{name: "EUC-JP", cs: charset.EUCJP{}, asciiCompatible: true,
		aliases: []string{"eucJP"}},

	{name: "UTF-16BE", cs: charset.UTF16BE{}},
	{name: "UTF-16LE", cs: charset.UTF16LE{}},
	{name: "UTF-32BE", cs: charset.UTF32BE{}},
	{name: "UTF-32LE", cs: charset.UTF32LE{}},

	// Dummy encodings: declared so values can carry the tag, but with no
	// character boundary rules of their own.
	{name: "UTF-16", cs: charset.NewDummy("UTF-16"), dummy: true},
	{name: "UTF-32", cs: charset.NewDummy("UTF-32"), dummy: true},
	{name: "ISO-2022-JP", cs: charset.NewDummy("ISO-2022-JP"), dummy: true,
		aliases: []string{"ISO2022-JP"}},
	{name: "UTF-7", cs: charset.NewDummy("UTF-7"), dummy: true,
		aliases: []string{"CP65000"}},
}

// NewRegistry returns a registry populated with the built-in encoding
// table. The external and locale defaults start as UTF-8; the internal
// default starts unset.
func NewRegistry() *Registry {
	r := newEmptyRegistry(compatQueryCacheSize, encodingPairCacheSize)

	for _, def := range builtins {
		enc, err := r.Register(def.name, def.cs, def.asciiCompatible, def.dummy)
		if err != nil {
			// The table is static; a collision here is a programming error.
			panic(fmt.Sprintf("builtin encoding table: %v", err))
		}
		for _, alias := range def.aliases {
			if err := r.AddAlias(alias, enc); err != nil {
				panic(fmt.Sprintf("builtin encoding table: %v", err))
			}
		}
	}

	r.mu.Lock()
	r.usASCII = r.byName[normalizeName("US-ASCII")]
	utf8 := r.byName[normalizeName("UTF-8")]
	r.external = utf8
	r.locale = utf8
	r.mu.Unlock()

	return r
}
