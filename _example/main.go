// Command example walks through a host table whose hostnames are
// case-folded and whose addresses are parsed into netip.Addr values on
// the way in.
//
// Run:
//
//	go run ./_example
package main

import (
	"fmt"
	"log"

	"github.com/Gobd/modmap"
	"github.com/Gobd/modmap/modifiers"
)

func main() {
	hosts, err := modmap.Define(modmap.Config[string, any]{
		KeyModifiers:   []modmap.Modifier[string]{modifiers.TrimSpace, modifiers.Casefold},
		ValueModifiers: modmap.Modifier[any](modifiers.ToIPAddr),
	})
	if err != nil {
		log.Fatal(err)
	}

	table, err := hosts.From(map[string]any{
		"  GooGle.com  ": "142.250.69.206",
		"CisCO":          "72.163.4.185",
	})
	if err != nil {
		log.Fatal(err)
	}

	// Lookups run through the same key chain, so any spelling of the
	// hostname finds the entry.
	addr, err := table.Get("GOOGLE.COM ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("google.com -> %v\n", addr) // 142.250.69.206 as a netip.Addr

	if err := table.Set(" LocalHost ", "127.0.0.1"); err != nil {
		log.Fatal(err)
	}
	fmt.Println(table) // keys are case-folded, values parsed

	// Attribute-style access over the same modified key space.
	attrs := modmap.AsAttrs[any](table)
	cisco, err := attrs.GetAttr("CISCO")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("cisco -> %v\n", cisco)

	if err := attrs.DelAttr("localhost"); err != nil {
		log.Fatal(err)
	}
	if _, err := attrs.GetAttr("localhost"); err != nil {
		fmt.Println(err) // attribute not found: ...
	}

	// Bulk merges can run the chains across a worker pool.
	bulk, err := modmap.Define(modmap.Config[string, any]{
		KeyModifiers:   modmap.Modifier[string](modifiers.Casefold),
		ValueModifiers: modmap.Modifier[any](modifiers.ToIPAddr),
		Strategy:       modmap.ParallelOrdered,
		Workers:        4,
	})
	if err != nil {
		log.Fatal(err)
	}
	big, err := bulk.From([]modmap.Pair[string, any]{
		{Key: "Example.ORG", Value: "93.184.216.34"},
		{Key: "Example.NET", Value: "2606:2800:220:1:248:1893:25c8:1946"},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(big)
}
